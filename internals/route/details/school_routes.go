// file: internals/route/details/school_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	examController "sekolahku_backend/internals/features/school/exams/controller"
	profileController "sekolahku_backend/internals/features/school/profile/controller"
	studentController "sekolahku_backend/internals/features/school/students/controller"
	"sekolahku_backend/internals/middlewares/auth"
)

func SchoolRoutes(api fiber.Router, db *gorm.DB) {
	students := &studentController.StudentHandler{DB: db}
	schoolCfg := &profileController.SchoolConfigHandler{DB: db}
	exams := &examController.ExamResultHandler{DB: db}

	admin := api.Group("/", auth.AuthMiddleware())

	// 👨‍🎓 Students
	admin.Get("/students", students.List)
	admin.Post("/students", students.Create)
	admin.Get("/students/:id", students.GetByID)
	admin.Get("/students/:id/family", students.Family)
	admin.Patch("/students/:id", students.Update)
	admin.Delete("/students/:id", students.Delete)

	// 🏫 School config (ubah = admin saja)
	admin.Get("/school-config", schoolCfg.Get)
	admin.Put("/school-config",
		auth.OnlyRolesSlice(constants.RoleErrorAdmin("config sekolah"), constants.AdminOnly),
		schoolCfg.Upsert)

	// 📝 Exam results
	admin.Get("/exam-results/:student_id", exams.ListByStudent)
	admin.Post("/exam-results", exams.Create)
	admin.Delete("/exam-results/:id", exams.Delete)
}
