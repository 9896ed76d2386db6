// file: internals/features/school/profile/controller/school_config_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	profileModel "sekolahku_backend/internals/features/school/profile/model"
	helper "sekolahku_backend/internals/helpers"
)

type SchoolConfigHandler struct {
	DB *gorm.DB
}

// Get (GET /school-config) — dokumen master tunggal; belum ada = default kosong
func (h *SchoolConfigHandler) Get(c *fiber.Ctx) error {
	var m profileModel.SchoolConfig
	if err := h.DB.WithContext(c.Context()).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, "ok", profileModel.SchoolConfig{})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", m)
}

// Upsert (PUT /school-config)
func (h *SchoolConfigHandler) Upsert(c *fiber.Ctx) error {
	var in profileModel.SchoolConfig
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if in.SchoolConfigName == "" || in.SchoolConfigSession == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "required field missing: name/session")
	}

	var existing profileModel.SchoolConfig
	err := h.DB.WithContext(c.Context()).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := h.DB.WithContext(c.Context()).Create(&in).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonCreated(c, "created", in)
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	default:
		in.SchoolConfigID = existing.SchoolConfigID
		in.SchoolConfigCreatedAt = existing.SchoolConfigCreatedAt
		if err := h.DB.WithContext(c.Context()).Save(&in).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonUpdated(c, "updated", in)
	}
}
