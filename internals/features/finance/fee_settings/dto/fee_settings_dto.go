// file: internals/features/finance/fee_settings/dto/fee_settings_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	feeModel "sekolahku_backend/internals/features/finance/fee_settings/model"
)

////////////////////////////////////////////////////////////////////////////////
// FEE PLANS — DTO
////////////////////////////////////////////////////////////////////////////////

type FeePlanUpsertDTO struct {
	FeePlanClassName string             `json:"fee_plan_class_name" validate:"required,max=40"`
	FeePlanItems     map[string]float64 `json:"fee_plan_items" validate:"required"`
}

type FeePlanResponse struct {
	FeePlanID        uuid.UUID          `json:"fee_plan_id"`
	FeePlanClassName string             `json:"fee_plan_class_name"`
	FeePlanItems     map[string]float64 `json:"fee_plan_items"`
	FeePlanCreatedAt time.Time          `json:"fee_plan_created_at"`
	FeePlanUpdatedAt time.Time          `json:"fee_plan_updated_at"`
}

func ToFeePlanResponse(m feeModel.FeePlan) FeePlanResponse {
	return FeePlanResponse{
		FeePlanID:        m.FeePlanID,
		FeePlanClassName: m.FeePlanClassName,
		FeePlanItems:     jsonMapToRates(m.FeePlanItems),
		FeePlanCreatedAt: m.FeePlanCreatedAt,
		FeePlanUpdatedAt: m.FeePlanUpdatedAt,
	}
}

func ToFeePlanResponses(list []feeModel.FeePlan) []FeePlanResponse {
	out := make([]FeePlanResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToFeePlanResponse(v))
	}
	return out
}

// jsonMapToRates menyaring nilai non-numerik dari JSONB (hasil input bebas).
func jsonMapToRates(m map[string]interface{}) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		switch n := v.(type) {
		case float64:
			out[k] = n
		case int:
			out[k] = float64(n)
		}
	}
	return out
}

////////////////////////////////////////////////////////////////////////////////
// FEE MASTER (jadwal bulan) — DTO
////////////////////////////////////////////////////////////////////////////////

type FeeScheduleItemUpsertDTO struct {
	FeeMasterName   string   `json:"fee_master_name" validate:"required,max=60"`
	FeeMasterMonths []string `json:"fee_master_months"`
}

type FeeScheduleItemResponse struct {
	FeeMasterID        uuid.UUID `json:"fee_master_id"`
	FeeMasterName      string    `json:"fee_master_name"`
	FeeMasterMonths    []string  `json:"fee_master_months"`
	FeeMasterCreatedAt time.Time `json:"fee_master_created_at"`
	FeeMasterUpdatedAt time.Time `json:"fee_master_updated_at"`
}

func ToFeeScheduleItemResponse(m feeModel.FeeScheduleItem) FeeScheduleItemResponse {
	return FeeScheduleItemResponse{
		FeeMasterID:        m.FeeMasterID,
		FeeMasterName:      m.FeeMasterName,
		FeeMasterMonths:    append([]string(nil), m.FeeMasterMonths...),
		FeeMasterCreatedAt: m.FeeMasterCreatedAt,
		FeeMasterUpdatedAt: m.FeeMasterUpdatedAt,
	}
}

func ToFeeScheduleItemResponses(list []feeModel.FeeScheduleItem) []FeeScheduleItemResponse {
	out := make([]FeeScheduleItemResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToFeeScheduleItemResponse(v))
	}
	return out
}
