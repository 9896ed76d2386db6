// file: internals/route/details/finance_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	billingController "sekolahku_backend/internals/features/finance/billing/controller"
	billingService "sekolahku_backend/internals/features/finance/billing/service"
	feeController "sekolahku_backend/internals/features/finance/fee_settings/controller"
	"sekolahku_backend/internals/middlewares"
	"sekolahku_backend/internals/middlewares/auth"
)

func FinanceRoutes(api fiber.Router, db *gorm.DB, drafts *billingService.DraftCache) {
	feeSettings := &feeController.FeeSettingsHandler{DB: db}
	billing := &billingController.BillingHandler{DB: db, Drafts: drafts}

	staff := api.Group("/", auth.AuthMiddleware(),
		auth.OnlyRolesSlice(constants.RoleErrorStaff("keuangan"), constants.FinanceRoles))
	adminOnly := api.Group("/", auth.AuthMiddleware(),
		auth.OnlyRolesSlice(constants.RoleErrorAdmin("master data keuangan"), constants.AdminOnly))

	// 💰 Fee plans (struktur biaya per kelas)
	staff.Get("/fee-plans", feeSettings.ListPlans)
	staff.Get("/fee-plans/:class_name", feeSettings.GetPlanByClass)
	adminOnly.Put("/fee-plans", feeSettings.UpsertPlan)
	adminOnly.Delete("/fee-plans/:class_name", feeSettings.DeletePlan)

	// 📅 Fee master (item -> bulan berlaku)
	staff.Get("/fee-master", feeSettings.ListScheduleItems)
	adminOnly.Put("/fee-master", feeSettings.UpsertScheduleItem)
	adminOnly.Delete("/fee-master/:id", feeSettings.DeleteScheduleItem)

	// 🧾 Billing
	staff.Post("/billing/preview", billing.Preview)
	staff.Post("/billing/pay", middlewares.PaymentRateLimiter(), billing.Pay)
	staff.Get("/billing/:student_id/draft", billing.GetDraft)
	staff.Put("/billing/:student_id/draft", billing.SaveDraft)
	staff.Get("/billing/:student_id/history", billing.History)
	staff.Get("/billing/:student_id/history/export", billing.ExportHistory)
}
