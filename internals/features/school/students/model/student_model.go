// file: internals/features/school/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// =========================================================
// MODEL — students
// =========================================================

// Student adalah dokumen siswa. Saldo (student_balance) hanya boleh
// dimutasi oleh committer pembayaran; positif = masih menunggak.
// student_fee_month_paid: map session -> bulan -> {receipt_no, paid_at}.
type Student struct {
	// PK
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`

	StudentName     string  `gorm:"column:student_name;type:varchar(120);not null" json:"student_name"`
	StudentRollNo   *string `gorm:"column:student_roll_no;type:varchar(30)" json:"student_roll_no,omitempty"`
	StudentGuardian *string `gorm:"column:student_guardian;type:varchar(120)" json:"student_guardian,omitempty"`

	// Pengikat keluarga: nomor wali + session (satu keluarga = wali sama, session sama)
	StudentGuardianID string `gorm:"column:student_guardian_id;type:varchar(40);not null;index:ix_students_guardian_session,priority:1" json:"student_guardian_id"`
	StudentSession    string `gorm:"column:student_session;type:varchar(10);not null;index:ix_students_guardian_session,priority:2" json:"student_session"`

	StudentClassName string `gorm:"column:student_class_name;type:varchar(40);not null;index" json:"student_class_name"`

	// Saldo berjalan (positif = tunggakan, negatif = kelebihan bayar)
	StudentBalance float64 `gorm:"column:student_balance;not null;default:0" json:"student_balance"`

	// Tarif transport per bulan (0 = tidak ikut antar-jemput)
	StudentTransportFee float64 `gorm:"column:student_transport_fee;not null;default:0" json:"student_transport_fee"`

	// session -> month -> {receipt_no, paid_at}
	StudentFeeMonthPaid datatypes.JSONMap `gorm:"column:student_fee_month_paid;type:jsonb;not null;default:'{}'" json:"student_fee_month_paid"`

	// Timestamps (eksplisit)
	StudentCreatedAt time.Time      `gorm:"column:student_created_at;not null;default:now()" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;not null;default:now()" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"-"`
}

func (Student) TableName() string {
	return "students"
}

// =========================================================
// HOOKS — set timestamps eksplisit
// =========================================================

func (m *Student) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.StudentCreatedAt.IsZero() {
		m.StudentCreatedAt = now
	}
	m.StudentUpdatedAt = now
	return nil
}

func (m *Student) BeforeUpdate(tx *gorm.DB) (err error) {
	m.StudentUpdatedAt = time.Now()
	return nil
}
