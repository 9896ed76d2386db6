// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/databases"
	billingService "sekolahku_backend/internals/features/finance/billing/service"
	"sekolahku_backend/internals/route/details"
)

// SetupRoutes: semua endpoint aplikasi. Grup admin di belakang JWT,
// endpoint publik (health sudah di main) tidak ada di sini.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	drafts := billingService.NewDraftCache(database.RDB)

	details.SchoolRoutes(api, db)
	details.FinanceRoutes(api, db, drafts)
}
