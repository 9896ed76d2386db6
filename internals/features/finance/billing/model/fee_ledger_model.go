// file: internals/features/finance/billing/model/fee_ledger_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// =========================================================
// MODEL — fees_manage (buku kas per siswa)
// =========================================================

// FeeLedger: satu baris per siswa. fees_manage_history adalah array JSONB
// append-only berisi HistoryEntry; entri lama tidak pernah ditulis ulang.
// Append dilakukan committer lewat operator || (lihat service/committer.go),
// bukan lewat Save model, supaya entri lama tidak tersentuh.
type FeeLedger struct {
	FeesManageID uuid.UUID `gorm:"column:fees_manage_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"fees_manage_id"`

	FeesManageStudentID uuid.UUID `gorm:"column:fees_manage_student_id;type:uuid;not null;uniqueIndex:uniq_fees_manage_student" json:"fees_manage_student_id"`

	// Snapshot identitas (biar kwitansi lama tetap benar walau siswa diedit)
	FeesManageStudentName string `gorm:"column:fees_manage_student_name;type:varchar(120);not null" json:"fees_manage_student_name"`
	FeesManageClassName   string `gorm:"column:fees_manage_class_name;type:varchar(40);not null" json:"fees_manage_class_name"`

	FeesManageHistory datatypes.JSON `gorm:"column:fees_manage_history;type:jsonb;not null;default:'[]'" json:"fees_manage_history"`

	FeesManageCreatedAt time.Time `gorm:"column:fees_manage_created_at;not null;default:now()" json:"fees_manage_created_at"`
	FeesManageUpdatedAt time.Time `gorm:"column:fees_manage_updated_at;not null;default:now()" json:"fees_manage_updated_at"`
}

func (FeeLedger) TableName() string {
	return "fees_manage"
}

func (m *FeeLedger) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.FeesManageCreatedAt.IsZero() {
		m.FeesManageCreatedAt = now
	}
	m.FeesManageUpdatedAt = now
	return nil
}
