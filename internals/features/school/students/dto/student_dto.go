// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	studentModel "sekolahku_backend/internals/features/school/students/model"
)

////////////////////////////////////////////////////////////////////////////////
// STUDENTS — DTO
////////////////////////////////////////////////////////////////////////////////

type StudentCreateDTO struct {
	StudentName         string  `json:"student_name" validate:"required,min=2,max=120"`
	StudentRollNo       *string `json:"student_roll_no,omitempty"`
	StudentGuardian     *string `json:"student_guardian,omitempty"`
	StudentGuardianID   string  `json:"student_guardian_id" validate:"required,max=40"`
	StudentSession      string  `json:"student_session" validate:"required,max=10"`
	StudentClassName    string  `json:"student_class_name" validate:"required,max=40"`
	StudentBalance      float64 `json:"student_balance"`
	StudentTransportFee float64 `json:"student_transport_fee" validate:"gte=0"`
}

// Update (partial) — saldo & status bulan TIDAK bisa diubah lewat sini;
// keduanya hanya dimutasi committer pembayaran.
type StudentUpdateDTO struct {
	StudentName         *string  `json:"student_name,omitempty"`
	StudentRollNo       *string  `json:"student_roll_no,omitempty"`
	StudentGuardian     *string  `json:"student_guardian,omitempty"`
	StudentGuardianID   *string  `json:"student_guardian_id,omitempty"`
	StudentSession      *string  `json:"student_session,omitempty"`
	StudentClassName    *string  `json:"student_class_name,omitempty"`
	StudentTransportFee *float64 `json:"student_transport_fee,omitempty"`
}

type StudentResponse struct {
	StudentID           uuid.UUID         `json:"student_id"`
	StudentName         string            `json:"student_name"`
	StudentRollNo       *string           `json:"student_roll_no,omitempty"`
	StudentGuardian     *string           `json:"student_guardian,omitempty"`
	StudentGuardianID   string            `json:"student_guardian_id"`
	StudentSession      string            `json:"student_session"`
	StudentClassName    string            `json:"student_class_name"`
	StudentBalance      float64           `json:"student_balance"`
	StudentTransportFee float64           `json:"student_transport_fee"`
	StudentFeeMonthPaid datatypes.JSONMap `json:"student_fee_month_paid"`
	StudentCreatedAt    time.Time         `json:"student_created_at"`
	StudentUpdatedAt    time.Time         `json:"student_updated_at"`
	StudentDeletedAt    *time.Time        `json:"student_deleted_at,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS — Model <-> DTO
////////////////////////////////////////////////////////////////////////////////

func ToStudentResponse(m studentModel.Student) StudentResponse {
	return StudentResponse{
		StudentID:           m.StudentID,
		StudentName:         m.StudentName,
		StudentRollNo:       m.StudentRollNo,
		StudentGuardian:     m.StudentGuardian,
		StudentGuardianID:   m.StudentGuardianID,
		StudentSession:      m.StudentSession,
		StudentClassName:    m.StudentClassName,
		StudentBalance:      m.StudentBalance,
		StudentTransportFee: m.StudentTransportFee,
		StudentFeeMonthPaid: m.StudentFeeMonthPaid,
		StudentCreatedAt:    m.StudentCreatedAt,
		StudentUpdatedAt:    m.StudentUpdatedAt,
		StudentDeletedAt:    toPtrTimeFromDeletedAt(m.StudentDeletedAt),
	}
}

func ToStudentResponses(list []studentModel.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToStudentResponse(v))
	}
	return out
}

func StudentCreateDTOToModel(d StudentCreateDTO) studentModel.Student {
	return studentModel.Student{
		StudentName:         d.StudentName,
		StudentRollNo:       d.StudentRollNo,
		StudentGuardian:     d.StudentGuardian,
		StudentGuardianID:   d.StudentGuardianID,
		StudentSession:      d.StudentSession,
		StudentClassName:    d.StudentClassName,
		StudentBalance:      d.StudentBalance,
		StudentTransportFee: d.StudentTransportFee,
		StudentFeeMonthPaid: datatypes.JSONMap{},
	}
}

// ApplyStudentUpdate menerapkan partial update (tidak menyentuh saldo/bulan)
func ApplyStudentUpdate(m *studentModel.Student, d StudentUpdateDTO) {
	if d.StudentName != nil {
		m.StudentName = *d.StudentName
	}
	if d.StudentRollNo != nil {
		m.StudentRollNo = d.StudentRollNo
	}
	if d.StudentGuardian != nil {
		m.StudentGuardian = d.StudentGuardian
	}
	if d.StudentGuardianID != nil {
		m.StudentGuardianID = *d.StudentGuardianID
	}
	if d.StudentSession != nil {
		m.StudentSession = *d.StudentSession
	}
	if d.StudentClassName != nil {
		m.StudentClassName = *d.StudentClassName
	}
	if d.StudentTransportFee != nil {
		m.StudentTransportFee = *d.StudentTransportFee
	}
}

////////////////////////////////////////////////////////////////////////////////
// SMALL UTILS
////////////////////////////////////////////////////////////////////////////////

func toPtrTimeFromDeletedAt(d gorm.DeletedAt) *time.Time {
	if d.Valid {
		return &d.Time
	}
	return nil
}
