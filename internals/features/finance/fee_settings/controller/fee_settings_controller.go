// file: internals/features/finance/fee_settings/controller/fee_settings_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sekolahku_backend/internals/features/finance/fee_settings/dto"
	feeModel "sekolahku_backend/internals/features/finance/fee_settings/model"
	helper "sekolahku_backend/internals/helpers"
)

type FeeSettingsHandler struct {
	DB *gorm.DB
}

// =========================================================
// FEE PLANS (tarif per kelas)
// =========================================================

// List (GET /fee-plans)
func (h *FeeSettingsHandler) ListPlans(c *fiber.Ctx) error {
	var list []feeModel.FeePlan
	if err := h.DB.WithContext(c.Context()).
		Order("fee_plan_class_name ASC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToFeePlanResponses(list))
}

// Detail by class (GET /fee-plans/:class_name)
func (h *FeeSettingsHandler) GetPlanByClass(c *fiber.Ctx) error {
	className := c.Params("class_name")

	var m feeModel.FeePlan
	if err := h.DB.WithContext(c.Context()).
		First(&m, "fee_plan_class_name = ?", className).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// kelas tanpa plan = nol item billable, bukan error
			return helper.JsonOK(c, "ok", dto.FeePlanResponse{
				FeePlanClassName: className,
				FeePlanItems:     map[string]float64{},
			})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToFeePlanResponse(m))
}

// Upsert (PUT /fee-plans) — satu plan per kelas
func (h *FeeSettingsHandler) UpsertPlan(c *fiber.Ctx) error {
	var in dto.FeePlanUpsertDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validator.New().Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	items := datatypes.JSONMap{}
	for k, v := range in.FeePlanItems {
		if v < 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "tarif tidak boleh negatif")
		}
		items[k] = v
	}

	m := feeModel.FeePlan{
		FeePlanClassName: in.FeePlanClassName,
		FeePlanItems:     items,
	}
	if err := h.DB.WithContext(c.Context()).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "fee_plan_class_name"}},
			DoUpdates: clause.AssignmentColumns([]string{"fee_plan_items", "fee_plan_updated_at"}),
		}).
		Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "saved", dto.ToFeePlanResponse(m))
}

// Delete (DELETE /fee-plans/:class_name)
func (h *FeeSettingsHandler) DeletePlan(c *fiber.Ctx) error {
	res := h.DB.WithContext(c.Context()).
		Delete(&feeModel.FeePlan{}, "fee_plan_class_name = ?", c.Params("class_name"))
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "record not found")
	}
	return helper.JsonDeleted(c, "deleted", fiber.Map{"fee_plan_class_name": c.Params("class_name")})
}

// =========================================================
// FEE MASTER (jadwal bulan per item)
// =========================================================

// List (GET /fee-master)
func (h *FeeSettingsHandler) ListScheduleItems(c *fiber.Ctx) error {
	var list []feeModel.FeeScheduleItem
	if err := h.DB.WithContext(c.Context()).
		Order("fee_master_name ASC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToFeeScheduleItemResponses(list))
}

// Upsert (PUT /fee-master)
func (h *FeeSettingsHandler) UpsertScheduleItem(c *fiber.Ctx) error {
	var in dto.FeeScheduleItemUpsertDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validator.New().Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	for _, mo := range in.FeeMasterMonths {
		if !helper.IsAcademicMonth(mo) {
			return helper.JsonError(c, fiber.StatusBadRequest, "bulan tidak dikenal: "+mo)
		}
	}

	m := feeModel.FeeScheduleItem{
		FeeMasterName:   in.FeeMasterName,
		FeeMasterMonths: pq.StringArray(helper.SortAcademicMonths(in.FeeMasterMonths)),
	}
	if err := h.DB.WithContext(c.Context()).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "fee_master_name"}},
			DoUpdates: clause.AssignmentColumns([]string{"fee_master_months", "fee_master_updated_at"}),
		}).
		Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "saved", dto.ToFeeScheduleItemResponse(m))
}

// Delete (DELETE /fee-master/:id)
func (h *FeeSettingsHandler) DeleteScheduleItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "fee master id tidak valid")
	}

	res := h.DB.WithContext(c.Context()).
		Delete(&feeModel.FeeScheduleItem{}, "fee_master_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "record not found")
	}
	return helper.JsonDeleted(c, "deleted", fiber.Map{"fee_master_id": id})
}
