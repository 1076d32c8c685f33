package controller

import (
	"errors"
	"io"
	"mime/multipart"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assetService "github.com/Candratama/four-best-website-sub000/internals/features/assets/service"
	"github.com/Candratama/four-best-website-sub000/internals/features/partners/dto"
	"github.com/Candratama/four-best-website-sub000/internals/features/partners/model"
	helper "github.com/Candratama/four-best-website-sub000/internals/helpers"
)

var validatePartner = validator.New()

type PartnerController struct {
	DB       *gorm.DB
	Ingestor *assetService.Ingestor
}

func NewPartnerController(db *gorm.DB, ing *assetService.Ingestor) *PartnerController {
	return &PartnerController{DB: db, Ingestor: ing}
}

// =======================
// 📄 List partners (public)
// =======================
func (ctrl *PartnerController) List(c *fiber.Ctx) error {
	var partners []model.PartnerModel
	if err := ctrl.DB.Order("partner_order ASC, partner_created_at ASC").Find(&partners).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data partner")
	}
	resp := make([]dto.PartnerDTO, 0, len(partners))
	for _, p := range partners {
		resp = append(resp, dto.ToPartnerDTO(p))
	}
	return helper.JsonOK(c, "ok", resp)
}

// =======================
// ➕ Create partner (admin, multipart: fields + optional logo)
// =======================
func (ctrl *PartnerController) Create(c *fiber.Ctx) error {
	var body dto.CreatePartnerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePartner.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	partner := model.PartnerModel{
		PartnerName:    body.Name,
		PartnerWebsite: body.Website,
		PartnerOrder:   body.Order,
	}

	if fh, err := c.FormFile("logo"); err == nil && fh != nil {
		res, err := ctrl.ingestLogo(c, fh, "")
		if err != nil {
			return logoErrorResponse(c, err)
		}
		partner.PartnerLogoURL = res.URL
		partner.PartnerLogoKey = res.Key
	}

	if err := ctrl.DB.Create(&partner).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat partner")
	}
	return helper.JsonCreated(c, "Partner dibuat", dto.ToPartnerDTO(partner))
}

// =======================
// 📝 Update partner (admin; logo baru menggantikan yang lama)
// =======================
func (ctrl *PartnerController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var partner model.PartnerModel
	if err := ctrl.DB.First(&partner, "partner_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Partner tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil partner")
	}

	var body dto.UpdatePartnerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePartner.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if body.Name != nil {
		partner.PartnerName = *body.Name
	}
	if body.Website != nil {
		partner.PartnerWebsite = *body.Website
	}
	if body.Order != nil {
		partner.PartnerOrder = *body.Order
	}

	if fh, err := c.FormFile("logo"); err == nil && fh != nil {
		res, err := ctrl.ingestLogo(c, fh, partner.PartnerLogoKey)
		if err != nil {
			return logoErrorResponse(c, err)
		}
		partner.PartnerLogoURL = res.URL
		partner.PartnerLogoKey = res.Key
	}

	if err := ctrl.DB.Save(&partner).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update partner")
	}
	return helper.JsonUpdated(c, "Partner diperbarui", dto.ToPartnerDTO(partner))
}

// =======================
// 🗑️ Delete partner (admin)
// =======================
func (ctrl *PartnerController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	var partner model.PartnerModel
	if err := ctrl.DB.First(&partner, "partner_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Partner tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil partner")
	}

	if err := ctrl.DB.Delete(&model.PartnerModel{}, "partner_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus partner")
	}
	ctrl.Ingestor.Remove(c.UserContext(), partner.PartnerLogoKey)

	return helper.JsonDeleted(c, "Partner dihapus", fiber.Map{"partner_id": id})
}

func (ctrl *PartnerController) ingestLogo(c *fiber.Ctx, fh *multipart.FileHeader, oldKey string) (*assetService.IngestResult, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	buf, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	return ctrl.Ingestor.Replace(c.UserContext(), buf, fh.Filename, assetService.CategoryPartners, "", oldKey, "")
}

func logoErrorResponse(c *fiber.Ctx, err error) error {
	var imgErr *assetService.ImageProcessingError
	if errors.As(err, &imgErr) {
		return helper.JsonError(c, fiber.StatusUnsupportedMediaType, "Format logo tidak didukung")
	}
	var stErr *assetService.StorageError
	if errors.As(err, &stErr) {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal upload logo ke storage")
	}
	return helper.JsonError(c, fiber.StatusBadRequest, "Gagal memproses file logo")
}
