// file: internals/features/finance/fee_settings/model/fee_schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// =========================================================
// MODEL — fee_master (jadwal bulan per item biaya, global)
// =========================================================

// FeeScheduleItem memetakan nama item biaya ke bulan yang kena tagih.
// Daftar bulan kosong = berlaku tiap bulan.
type FeeScheduleItem struct {
	FeeMasterID uuid.UUID `gorm:"column:fee_master_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"fee_master_id"`

	FeeMasterName string `gorm:"column:fee_master_name;type:varchar(60);not null;uniqueIndex:uniq_fee_master_name" json:"fee_master_name"`

	// mis. {"April","October"} untuk biaya per semester; kosong = semua bulan
	FeeMasterMonths pq.StringArray `gorm:"column:fee_master_months;type:text[];not null;default:'{}'" json:"fee_master_months"`

	FeeMasterCreatedAt time.Time      `gorm:"column:fee_master_created_at;not null;default:now()" json:"fee_master_created_at"`
	FeeMasterUpdatedAt time.Time      `gorm:"column:fee_master_updated_at;not null;default:now()" json:"fee_master_updated_at"`
	FeeMasterDeletedAt gorm.DeletedAt `gorm:"column:fee_master_deleted_at;index" json:"-"`
}

func (FeeScheduleItem) TableName() string {
	return "fee_master"
}

func (m *FeeScheduleItem) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.FeeMasterCreatedAt.IsZero() {
		m.FeeMasterCreatedAt = now
	}
	m.FeeMasterUpdatedAt = now
	return nil
}

func (m *FeeScheduleItem) BeforeUpdate(tx *gorm.DB) (err error) {
	m.FeeMasterUpdatedAt = time.Now()
	return nil
}
