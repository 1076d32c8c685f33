package controller

import (
	"errors"
	"io"
	"mime/multipart"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assetService "github.com/Candratama/four-best-website-sub000/internals/features/assets/service"
	"github.com/Candratama/four-best-website-sub000/internals/features/slides/dto"
	"github.com/Candratama/four-best-website-sub000/internals/features/slides/model"
	helper "github.com/Candratama/four-best-website-sub000/internals/helpers"
)

var validateSlide = validator.New()

type SlideController struct {
	DB       *gorm.DB
	Ingestor *assetService.Ingestor
}

func NewSlideController(db *gorm.DB, ing *assetService.Ingestor) *SlideController {
	return &SlideController{DB: db, Ingestor: ing}
}

// =======================
// 📄 List slides aktif (public, urut slide_order)
// =======================
func (ctrl *SlideController) List(c *fiber.Ctx) error {
	var slides []model.SlideModel
	if err := ctrl.DB.
		Where("slide_is_active = TRUE").
		Order("slide_order ASC, slide_created_at ASC").
		Find(&slides).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil slide")
	}

	resp := make([]dto.SlideDTO, 0, len(slides))
	for _, s := range slides {
		resp = append(resp, dto.ToSlideDTO(s))
	}
	return helper.JsonOK(c, "ok", resp)
}

// =======================
// 📄 List semua slide (admin)
// =======================
func (ctrl *SlideController) AdminList(c *fiber.Ctx) error {
	var slides []model.SlideModel
	if err := ctrl.DB.
		Order("slide_order ASC, slide_created_at ASC").
		Find(&slides).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil slide")
	}

	resp := make([]dto.SlideDTO, 0, len(slides))
	for _, s := range slides {
		resp = append(resp, dto.ToSlideDTO(s))
	}
	return helper.JsonOK(c, "ok", resp)
}

// =======================
// ➕ Create slide (admin, multipart: fields + optional image)
// =======================
func (ctrl *SlideController) Create(c *fiber.Ctx) error {
	var body dto.CreateSlideRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSlide.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	active := true
	if body.Active != nil {
		active = *body.Active
	}

	slide := model.SlideModel{
		SlideTitle:    body.Title,
		SlideSubtitle: body.Subtitle,
		SlideCTALabel: body.CTALabel,
		SlideCTALink:  body.CTALink,
		SlideOrder:    body.Order,
		SlideActive:   active,
	}

	if fh, ferr := c.FormFile("image"); ferr == nil && fh != nil {
		res, ierr := ctrl.ingestImage(c, fh, "", "")
		if ierr != nil {
			return slideImageErrorResponse(c, ierr)
		}
		slide.SlideImageURL = res.URL
		slide.SlideImageKey = res.Key
	}

	if err := ctrl.DB.Create(&slide).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slide")
	}
	return helper.JsonCreated(c, "Slide dibuat", dto.ToSlideDTO(slide))
}

// =======================
// 📝 Update slide (admin)
// =======================
func (ctrl *SlideController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var slide model.SlideModel
	if err := ctrl.DB.First(&slide, "slide_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Slide tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil slide")
	}

	var body dto.UpdateSlideRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSlide.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if body.Title != nil {
		slide.SlideTitle = *body.Title
	}
	if body.Subtitle != nil {
		slide.SlideSubtitle = *body.Subtitle
	}
	if body.CTALabel != nil {
		slide.SlideCTALabel = *body.CTALabel
	}
	if body.CTALink != nil {
		slide.SlideCTALink = *body.CTALink
	}
	if body.Order != nil {
		slide.SlideOrder = *body.Order
	}
	if body.Active != nil {
		slide.SlideActive = *body.Active
	}

	if fh, ferr := c.FormFile("image"); ferr == nil && fh != nil {
		res, ierr := ctrl.ingestImage(c, fh, slide.SlideImageKey, "")
		if ierr != nil {
			return slideImageErrorResponse(c, ierr)
		}
		slide.SlideImageURL = res.URL
		slide.SlideImageKey = res.Key
	}

	if err := ctrl.DB.Save(&slide).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update slide")
	}
	return helper.JsonUpdated(c, "Slide diperbarui", dto.ToSlideDTO(slide))
}

// =======================
// 🔀 Reorder slides (admin, body: {"order": ["id1","id2",...]})
// =======================
func (ctrl *SlideController) Reorder(c *fiber.Ctx) error {
	var body struct {
		Order []string `json:"order" validate:"required,min=1"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSlide.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		for i, id := range body.Order {
			if err := tx.Model(&model.SlideModel{}).
				Where("slide_id = ?", id).
				Update("slide_order", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan urutan slide")
	}
	return helper.JsonUpdated(c, "Urutan slide disimpan", fiber.Map{"count": len(body.Order)})
}

// =======================
// 🗑️ Delete slide (admin)
// =======================
func (ctrl *SlideController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	var slide model.SlideModel
	if err := ctrl.DB.First(&slide, "slide_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Slide tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil slide")
	}

	if err := ctrl.DB.Delete(&model.SlideModel{}, "slide_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus slide")
	}
	ctrl.Ingestor.Remove(c.UserContext(), slide.SlideImageKey)

	return helper.JsonDeleted(c, "Slide dihapus", fiber.Map{"slide_id": id})
}

func (ctrl *SlideController) ingestImage(c *fiber.Ctx, fh *multipart.FileHeader, oldKey, oldThumbKey string) (*assetService.IngestResult, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	buf, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	return ctrl.Ingestor.Replace(c.UserContext(), buf, fh.Filename, assetService.CategorySlider, "", oldKey, oldThumbKey)
}

func slideImageErrorResponse(c *fiber.Ctx, err error) error {
	var imgErr *assetService.ImageProcessingError
	if errors.As(err, &imgErr) {
		return helper.JsonError(c, fiber.StatusUnsupportedMediaType, "Format gambar tidak didukung (pakai jpg/png/webp)")
	}
	var stErr *assetService.StorageError
	if errors.As(err, &stErr) {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal upload gambar ke storage")
	}
	return helper.JsonError(c, fiber.StatusBadRequest, "Gagal memproses gambar")
}
