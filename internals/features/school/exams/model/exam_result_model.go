// file: internals/features/school/exams/model/exam_result_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ExamResult: satu baris per (siswa, session, term). Nilai per mapel
// disimpan sebagai JSONB map mapel -> skor.
type ExamResult struct {
	ExamResultID uuid.UUID `gorm:"column:exam_result_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"exam_result_id"`

	ExamResultStudentID uuid.UUID `gorm:"column:exam_result_student_id;type:uuid;not null;index:ix_exam_results_student_session" json:"exam_result_student_id"`
	ExamResultSession   string    `gorm:"column:exam_result_session;type:varchar(10);not null;index:ix_exam_results_student_session" json:"exam_result_session"`
	ExamResultTerm      string    `gorm:"column:exam_result_term;type:varchar(40);not null" json:"exam_result_term"`

	ExamResultClassName string `gorm:"column:exam_result_class_name;type:varchar(50);not null" json:"exam_result_class_name"`

	// mapel -> skor
	ExamResultScores datatypes.JSONMap `gorm:"column:exam_result_scores;type:jsonb;not null;default:'{}'" json:"exam_result_scores"`

	ExamResultRemark *string `gorm:"column:exam_result_remark;type:varchar(255)" json:"exam_result_remark,omitempty"`

	ExamResultCreatedAt time.Time      `gorm:"column:exam_result_created_at;not null;default:now()" json:"exam_result_created_at"`
	ExamResultUpdatedAt time.Time      `gorm:"column:exam_result_updated_at;not null;default:now()" json:"exam_result_updated_at"`
	ExamResultDeletedAt gorm.DeletedAt `gorm:"column:exam_result_deleted_at;index" json:"-"`
}

func (ExamResult) TableName() string {
	return "exam_results"
}

func (m *ExamResult) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.ExamResultCreatedAt.IsZero() {
		m.ExamResultCreatedAt = now
	}
	m.ExamResultUpdatedAt = now
	return nil
}

func (m *ExamResult) BeforeUpdate(tx *gorm.DB) (err error) {
	m.ExamResultUpdatedAt = time.Now()
	return nil
}
