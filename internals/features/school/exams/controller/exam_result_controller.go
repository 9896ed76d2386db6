// file: internals/features/school/exams/controller/exam_result_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/exams/dto"
	examModel "sekolahku_backend/internals/features/school/exams/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	helper "sekolahku_backend/internals/helpers"
)

type ExamResultHandler struct {
	DB *gorm.DB
}

// ListByStudent (GET /exam-results/:student_id?session=)
func (h *ExamResultHandler) ListByStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student id tidak valid")
	}

	q := h.DB.WithContext(c.Context()).
		Where("exam_result_student_id = ?", id)
	if session := c.Query("session"); session != "" {
		q = q.Where("exam_result_session = ?", session)
	}

	var rows []examModel.ExamResult
	if err := q.Order("exam_result_created_at ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.ExamResultResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToExamResultResponse(r))
	}
	return helper.JsonOK(c, "ok", out)
}

// Create (POST /exam-results)
func (h *ExamResultHandler) Create(c *fiber.Ctx) error {
	var in dto.ExamResultCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validator.New().Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// siswa harus ada
	var st studentModel.Student
	if err := h.DB.WithContext(c.Context()).
		First(&st, "student_id = ?", in.ExamResultStudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	m := dto.ExamResultCreateDTOToModel(in)
	if err := h.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "exam result created", dto.ToExamResultResponse(m))
}

// Delete (DELETE /exam-results/:id) — soft delete
func (h *ExamResultHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	res := h.DB.WithContext(c.Context()).
		Delete(&examModel.ExamResult{}, "exam_result_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "record not found")
	}
	return helper.JsonDeleted(c, "exam result deleted", fiber.Map{"exam_result_id": id})
}
