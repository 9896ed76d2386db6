// file: internals/features/school/students/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/students/dto"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	studentService "sekolahku_backend/internals/features/school/students/service"
	helper "sekolahku_backend/internals/helpers"
)

type StudentHandler struct {
	DB *gorm.DB
}

// -----------------------------------------
// List (GET /students)
// Query filters (opsional):
// - session, class_name, guardian_id
// - search (nama / no. absen)
// - page, per_page
// -----------------------------------------
func (h *StudentHandler) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := h.DB.WithContext(c.Context()).Model(&studentModel.Student{})

	if v := c.Query("session"); v != "" {
		q = q.Where("student_session = ?", v)
	}
	if v := c.Query("class_name"); v != "" {
		q = q.Where("student_class_name = ?", v)
	}
	if v := c.Query("guardian_id"); v != "" {
		q = q.Where("student_guardian_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("search")); v != "" {
		like := "%" + strings.ToLower(v) + "%"
		q = q.Where("LOWER(student_name) LIKE ? OR LOWER(COALESCE(student_roll_no,'')) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []studentModel.Student
	if err := q.
		Order("student_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	pagination := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", dto.ToStudentResponses(list), &pagination)
}

// -----------------------------------------
// Detail (GET /students/:id)
// -----------------------------------------
func (h *StudentHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student id tidak valid")
	}

	var m studentModel.Student
	if err := h.DB.WithContext(c.Context()).First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToStudentResponse(m))
}

// -----------------------------------------
// Family (GET /students/:id/family)
// Semua siswa dengan wali + session yang sama (keluarga satu tagihan).
// -----------------------------------------
func (h *StudentHandler) Family(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student id tidak valid")
	}

	_, members, err := studentService.FindFamily(c.Context(), h.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToStudentResponses(members))
}

// -----------------------------------------
// Create (POST /students)
// -----------------------------------------
func (h *StudentHandler) Create(c *fiber.Ctx) error {
	var in dto.StudentCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validator.New().Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fieldErrs := map[string][]string{}
			for _, fe := range verrs {
				fieldErrs[fe.Field()] = append(fieldErrs[fe.Field()], fe.Tag())
			}
			return helper.JsonValidationError(c, fieldErrs)
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := dto.StudentCreateDTOToModel(in)
	if err := h.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "created", dto.ToStudentResponse(m))
}

// -----------------------------------------
// Update (PATCH /students/:id) — partial, tidak menyentuh saldo/bulan
// -----------------------------------------
func (h *StudentHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student id tidak valid")
	}

	var in dto.StudentUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}

	var m studentModel.Student
	if err := h.DB.WithContext(c.Context()).First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyStudentUpdate(&m, in)
	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "updated", dto.ToStudentResponse(m))
}

// -----------------------------------------
// Delete (DELETE /students/:id) — arsip (soft delete), tidak pernah hard delete
// -----------------------------------------
func (h *StudentHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student id tidak valid")
	}

	res := h.DB.WithContext(c.Context()).Delete(&studentModel.Student{}, "student_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "record not found")
	}
	return helper.JsonDeleted(c, "deleted", fiber.Map{"student_id": id})
}
