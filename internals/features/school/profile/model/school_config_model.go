// file: internals/features/school/profile/model/school_config_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SchoolConfig: dokumen master tunggal — identitas sekolah untuk kop
// kwitansi/rapor + pemetaan kelas -> daftar mapel (dipakai presenter rapor).
type SchoolConfig struct {
	SchoolConfigID uuid.UUID `gorm:"column:school_config_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"school_config_id"`

	SchoolConfigName    string  `gorm:"column:school_config_name;type:varchar(120);not null" json:"school_config_name"`
	SchoolConfigAddress *string `gorm:"column:school_config_address;type:varchar(255)" json:"school_config_address,omitempty"`
	SchoolConfigPhone   *string `gorm:"column:school_config_phone;type:varchar(30)" json:"school_config_phone,omitempty"`
	SchoolConfigEmail   *string `gorm:"column:school_config_email;type:varchar(120)" json:"school_config_email,omitempty"`
	SchoolConfigLogoURL *string `gorm:"column:school_config_logo_url;type:varchar(255)" json:"school_config_logo_url,omitempty"`

	// session berjalan, mis. "2025-26"
	SchoolConfigSession string `gorm:"column:school_config_session;type:varchar(10);not null" json:"school_config_session"`

	// kelas -> []mapel
	SchoolConfigClassSubjects datatypes.JSONMap `gorm:"column:school_config_class_subjects;type:jsonb;not null;default:'{}'" json:"school_config_class_subjects"`

	SchoolConfigCreatedAt time.Time `gorm:"column:school_config_created_at;not null;default:now()" json:"school_config_created_at"`
	SchoolConfigUpdatedAt time.Time `gorm:"column:school_config_updated_at;not null;default:now()" json:"school_config_updated_at"`
}

func (SchoolConfig) TableName() string {
	return "school_config"
}

func (m *SchoolConfig) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.SchoolConfigCreatedAt.IsZero() {
		m.SchoolConfigCreatedAt = now
	}
	m.SchoolConfigUpdatedAt = now
	return nil
}

func (m *SchoolConfig) BeforeUpdate(tx *gorm.DB) (err error) {
	m.SchoolConfigUpdatedAt = time.Now()
	return nil
}
