package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Candratama/four-best-website-sub000/internals/features/sections/dto"
	"github.com/Candratama/four-best-website-sub000/internals/features/sections/model"
	helper "github.com/Candratama/four-best-website-sub000/internals/helpers"
)

var validateSection = validator.New()

type SectionController struct {
	DB *gorm.DB
}

func NewSectionController(db *gorm.DB) *SectionController {
	return &SectionController{DB: db}
}

// =======================
// 📄 Semua section milik satu halaman (public)
// GET /sections/:page
// =======================
func (ctrl *SectionController) ListByPage(c *fiber.Ctx) error {
	page := c.Params("page")

	var sections []model.SectionModel
	if err := ctrl.DB.
		Where("section_page = ?", page).
		Order("section_order ASC, section_key ASC").
		Find(&sections).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil konten halaman")
	}

	resp := make([]dto.SectionDTO, 0, len(sections))
	for _, s := range sections {
		resp = append(resp, dto.ToSectionDTO(s))
	}
	return helper.JsonOK(c, "ok", resp)
}

// =======================
// 🔍 Satu section (public)
// GET /sections/:page/:key
// =======================
func (ctrl *SectionController) Detail(c *fiber.Ctx) error {
	page := c.Params("page")
	key := c.Params("key")

	var section model.SectionModel
	if err := ctrl.DB.First(&section, "section_page = ? AND section_key = ?", page, key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Section tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil section")
	}
	return helper.JsonOK(c, "ok", dto.ToSectionDTO(section))
}

// =======================
// 📝 Upsert section (admin) — insert baru atau timpa konten page+key
// =======================
func (ctrl *SectionController) Upsert(c *fiber.Ctx) error {
	var body dto.UpsertSectionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSection.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	section := model.SectionModel{
		SectionPage:    body.Page,
		SectionKey:     body.Key,
		SectionContent: body.Content,
		SectionOrder:   body.Order,
	}
	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "section_page"}, {Name: "section_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"section_content", "section_order", "section_updated_at"}),
	}).Create(&section).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan section")
	}

	// Ambil ulang supaya ID dan timestamp hasil upsert ikut terkirim
	if err := ctrl.DB.First(&section, "section_page = ? AND section_key = ?", body.Page, body.Key).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil section")
	}
	return helper.JsonUpdated(c, "Section disimpan", dto.ToSectionDTO(section))
}

// =======================
// 🗑️ Delete section (admin)
// =======================
func (ctrl *SectionController) Delete(c *fiber.Ctx) error {
	page := c.Params("page")
	key := c.Params("key")

	res := ctrl.DB.Delete(&model.SectionModel{}, "section_page = ? AND section_key = ?", page, key)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus section")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Section tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Section dihapus", fiber.Map{"page": page, "key": key})
}
