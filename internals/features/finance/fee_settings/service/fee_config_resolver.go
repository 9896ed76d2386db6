// file: internals/features/finance/fee_settings/service/fee_config_resolver.go
package service

import (
	"context"

	"gorm.io/gorm"

	feeModel "sekolahku_backend/internals/features/finance/fee_settings/model"
)

// FeeConfig: hasil resolve sekali fetch untuk satu keluarga.
// Plans: kelas -> (item -> tarif). Kelas tanpa plan TIDAK muncul di map;
// billing memperlakukannya sebagai nol item, bukan error.
// Schedule: nama item -> bulan berlaku (kosong = semua bulan).
type FeeConfig struct {
	Plans    map[string]map[string]float64
	Schedule map[string][]string
}

// ResolveFeeConfig mengambil fee plan tiap kelas (sekali query, IN-clause)
// plus seluruh fee_master.
func ResolveFeeConfig(ctx context.Context, db *gorm.DB, classNames []string) (FeeConfig, error) {
	cfg := FeeConfig{
		Plans:    make(map[string]map[string]float64, len(classNames)),
		Schedule: make(map[string][]string),
	}

	if len(classNames) > 0 {
		var plans []feeModel.FeePlan
		if err := db.WithContext(ctx).
			Where("fee_plan_class_name IN ?", classNames).
			Find(&plans).Error; err != nil {
			return cfg, err
		}
		for _, p := range plans {
			rates := make(map[string]float64, len(p.FeePlanItems))
			for item, v := range p.FeePlanItems {
				switch n := v.(type) {
				case float64:
					rates[item] = n
				case int:
					rates[item] = float64(n)
				}
			}
			cfg.Plans[p.FeePlanClassName] = rates
		}
	}

	var schedule []feeModel.FeeScheduleItem
	if err := db.WithContext(ctx).Find(&schedule).Error; err != nil {
		return cfg, err
	}
	for _, s := range schedule {
		cfg.Schedule[s.FeeMasterName] = append([]string(nil), s.FeeMasterMonths...)
	}

	return cfg, nil
}
