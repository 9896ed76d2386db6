// file: internals/features/school/exams/dto/exam_result_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	examModel "sekolahku_backend/internals/features/school/exams/model"
)

type ExamResultCreateDTO struct {
	ExamResultStudentID uuid.UUID          `json:"exam_result_student_id" validate:"required"`
	ExamResultSession   string             `json:"exam_result_session" validate:"required,max=10"`
	ExamResultTerm      string             `json:"exam_result_term" validate:"required,max=40"`
	ExamResultClassName string             `json:"exam_result_class_name" validate:"required,max=50"`
	ExamResultScores    map[string]float64 `json:"exam_result_scores" validate:"required,min=1"`
	ExamResultRemark    *string            `json:"exam_result_remark,omitempty" validate:"omitempty,max=255"`
}

type ExamResultResponse struct {
	ExamResultID        uuid.UUID          `json:"exam_result_id"`
	ExamResultStudentID uuid.UUID          `json:"exam_result_student_id"`
	ExamResultSession   string             `json:"exam_result_session"`
	ExamResultTerm      string             `json:"exam_result_term"`
	ExamResultClassName string             `json:"exam_result_class_name"`
	ExamResultScores    map[string]float64 `json:"exam_result_scores"`
	ExamResultRemark    *string            `json:"exam_result_remark,omitempty"`
	ExamResultCreatedAt time.Time          `json:"exam_result_created_at"`
}

func ExamResultCreateDTOToModel(in ExamResultCreateDTO) examModel.ExamResult {
	scores := datatypes.JSONMap{}
	for k, v := range in.ExamResultScores {
		scores[k] = v
	}
	return examModel.ExamResult{
		ExamResultStudentID: in.ExamResultStudentID,
		ExamResultSession:   in.ExamResultSession,
		ExamResultTerm:      in.ExamResultTerm,
		ExamResultClassName: in.ExamResultClassName,
		ExamResultScores:    scores,
		ExamResultRemark:    in.ExamResultRemark,
	}
}

func ToExamResultResponse(m examModel.ExamResult) ExamResultResponse {
	scores := make(map[string]float64, len(m.ExamResultScores))
	for k, v := range m.ExamResultScores {
		if f, ok := v.(float64); ok {
			scores[k] = f
		}
	}
	return ExamResultResponse{
		ExamResultID:        m.ExamResultID,
		ExamResultStudentID: m.ExamResultStudentID,
		ExamResultSession:   m.ExamResultSession,
		ExamResultTerm:      m.ExamResultTerm,
		ExamResultClassName: m.ExamResultClassName,
		ExamResultScores:    scores,
		ExamResultRemark:    m.ExamResultRemark,
		ExamResultCreatedAt: m.ExamResultCreatedAt,
	}
}
