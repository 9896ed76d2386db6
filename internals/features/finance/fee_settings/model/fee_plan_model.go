// file: internals/features/finance/fee_settings/model/fee_plan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// =========================================================
// MODEL — fee_plans (tarif per kelas)
// =========================================================

// FeePlan: satu baris per kelas. fee_plan_items: map nama item -> tarif
// per kemunculan (per bulan). Read-only bagi proses billing.
type FeePlan struct {
	FeePlanID uuid.UUID `gorm:"column:fee_plan_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"fee_plan_id"`

	FeePlanClassName string `gorm:"column:fee_plan_class_name;type:varchar(40);not null;uniqueIndex:uniq_fee_plan_class" json:"fee_plan_class_name"`

	// item -> tarif, mis. {"Tuition Fees": 500, "Computer Fees": 150}
	FeePlanItems datatypes.JSONMap `gorm:"column:fee_plan_items;type:jsonb;not null;default:'{}'" json:"fee_plan_items"`

	FeePlanCreatedAt time.Time      `gorm:"column:fee_plan_created_at;not null;default:now()" json:"fee_plan_created_at"`
	FeePlanUpdatedAt time.Time      `gorm:"column:fee_plan_updated_at;not null;default:now()" json:"fee_plan_updated_at"`
	FeePlanDeletedAt gorm.DeletedAt `gorm:"column:fee_plan_deleted_at;index" json:"-"`
}

func (FeePlan) TableName() string {
	return "fee_plans"
}

func (m *FeePlan) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.FeePlanCreatedAt.IsZero() {
		m.FeePlanCreatedAt = now
	}
	m.FeePlanUpdatedAt = now
	return nil
}

func (m *FeePlan) BeforeUpdate(tx *gorm.DB) (err error) {
	m.FeePlanUpdatedAt = time.Now()
	return nil
}
