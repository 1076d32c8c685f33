package controller

import (
	"errors"
	"io"
	"mime/multipart"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assetService "github.com/Candratama/four-best-website-sub000/internals/features/assets/service"
	"github.com/Candratama/four-best-website-sub000/internals/features/properties/dto"
	"github.com/Candratama/four-best-website-sub000/internals/features/properties/model"
	helper "github.com/Candratama/four-best-website-sub000/internals/helpers"
)

var validateProperty = validator.New()

type PropertyController struct {
	DB       *gorm.DB
	Ingestor *assetService.Ingestor
}

func NewPropertyController(db *gorm.DB, ing *assetService.Ingestor) *PropertyController {
	return &PropertyController{DB: db, Ingestor: ing}
}

// =======================
// 📄 List properties (public, paginated)
// Query: ?page=&per_page=&featured=
// =======================
func (ctrl *PropertyController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 12, 50)

	q := ctrl.DB.Model(&model.PropertyModel{}).Where("property_is_published = TRUE")
	if c.Query("featured") == "true" {
		q = q.Where("property_is_featured = TRUE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung listing")
	}

	var props []model.PropertyModel
	if err := q.
		Order("property_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&props).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil listing")
	}

	resp := make([]dto.PropertyDTO, 0, len(props))
	for _, p := range props {
		resp = append(resp, dto.ToPropertyDTO(p))
	}
	return helper.JsonList(c, "ok", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =======================
// 🔍 Detail by slug (public)
// =======================
func (ctrl *PropertyController) DetailBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var prop model.PropertyModel
	if err := ctrl.DB.First(&prop, "property_slug = ? AND property_is_published = TRUE", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Listing tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil listing")
	}
	return helper.JsonOK(c, "ok", dto.ToPropertyDTO(prop))
}

// =======================
// 📄 List all (admin — termasuk unpublished)
// =======================
func (ctrl *PropertyController) AdminList(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.PropertyModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung listing")
	}

	var props []model.PropertyModel
	if err := ctrl.DB.
		Order("property_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&props).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil listing")
	}

	resp := make([]dto.PropertyDTO, 0, len(props))
	for _, p := range props {
		resp = append(resp, dto.ToPropertyDTO(p))
	}
	return helper.JsonList(c, "ok", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =======================
// ➕ Create property (admin, multipart: fields + optional image)
// =======================
func (ctrl *PropertyController) Create(c *fiber.Ctx) error {
	var body dto.CreatePropertyRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProperty.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	slug, err := helper.EnsureUniqueSlug(ctrl.DB, "properties", "property_slug", body.Title)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
	}

	published := true
	if body.Published != nil {
		published = *body.Published
	}

	prop := model.PropertyModel{
		PropertyTitle:       body.Title,
		PropertySlug:        slug,
		PropertyDescription: body.Description,
		PropertyPrice:       body.Price,
		PropertyLocation:    body.Location,
		PropertyBedrooms:    body.Bedrooms,
		PropertyBathrooms:   body.Bathrooms,
		PropertyAreaM2:      body.AreaM2,
		PropertyFeatured:    body.Featured,
		PropertyPublished:   published,
	}

	if fh, ferr := c.FormFile("image"); ferr == nil && fh != nil {
		res, ierr := ctrl.ingestImage(c, fh, slug, "", "")
		if ierr != nil {
			return imageErrorResponse(c, ierr)
		}
		applyImage(&prop, res)
	}

	if err := ctrl.DB.Create(&prop).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat listing")
	}
	return helper.JsonCreated(c, "Listing dibuat", dto.ToPropertyDTO(prop))
}

// =======================
// 📝 Update property (admin)
// =======================
func (ctrl *PropertyController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var prop model.PropertyModel
	if err := ctrl.DB.First(&prop, "property_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Listing tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil listing")
	}

	var body dto.UpdatePropertyRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProperty.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if body.Title != nil {
		prop.PropertyTitle = *body.Title
	}
	if body.Description != nil {
		prop.PropertyDescription = *body.Description
	}
	if body.Price != nil {
		prop.PropertyPrice = *body.Price
	}
	if body.Location != nil {
		prop.PropertyLocation = *body.Location
	}
	if body.Bedrooms != nil {
		prop.PropertyBedrooms = *body.Bedrooms
	}
	if body.Bathrooms != nil {
		prop.PropertyBathrooms = *body.Bathrooms
	}
	if body.AreaM2 != nil {
		prop.PropertyAreaM2 = *body.AreaM2
	}
	if body.Featured != nil {
		prop.PropertyFeatured = *body.Featured
	}
	if body.Published != nil {
		prop.PropertyPublished = *body.Published
	}

	if fh, ferr := c.FormFile("image"); ferr == nil && fh != nil {
		res, ierr := ctrl.ingestImage(c, fh, prop.PropertySlug, prop.PropertyImageKey, prop.PropertyThumbKey)
		if ierr != nil {
			return imageErrorResponse(c, ierr)
		}
		applyImage(&prop, res)
	}

	if err := ctrl.DB.Save(&prop).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update listing")
	}
	return helper.JsonUpdated(c, "Listing diperbarui", dto.ToPropertyDTO(prop))
}

// =======================
// 🖼️ Add gallery image (admin)
// =======================
func (ctrl *PropertyController) AddGalleryImage(c *fiber.Ctx) error {
	id := c.Params("id")

	var prop model.PropertyModel
	if err := ctrl.DB.First(&prop, "property_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Listing tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil listing")
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File tidak ditemukan")
	}

	res, ierr := ctrl.ingestImage(c, fh, "", "", "")
	if ierr != nil {
		return imageErrorResponse(c, ierr)
	}

	prop.PropertyGallery = append(prop.PropertyGallery, res.URL)
	if err := ctrl.DB.Model(&prop).
		Update("property_gallery", prop.PropertyGallery).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan galeri")
	}
	return helper.JsonUpdated(c, "Foto galeri ditambahkan", dto.ToPropertyDTO(prop))
}

// =======================
// 🗑️ Delete property (admin)
// =======================
func (ctrl *PropertyController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	var prop model.PropertyModel
	if err := ctrl.DB.First(&prop, "property_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Listing tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil listing")
	}

	if err := ctrl.DB.Delete(&model.PropertyModel{}, "property_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus listing")
	}
	ctrl.Ingestor.Remove(c.UserContext(), prop.PropertyImageKey, prop.PropertyThumbKey)

	return helper.JsonDeleted(c, "Listing dihapus", fiber.Map{"property_id": id})
}

func (ctrl *PropertyController) ingestImage(c *fiber.Ctx, fh *multipart.FileHeader, slug, oldKey, oldThumbKey string) (*assetService.IngestResult, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	buf, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	return ctrl.Ingestor.Replace(c.UserContext(), buf, fh.Filename, assetService.CategoryProperties, slug, oldKey, oldThumbKey)
}

func applyImage(prop *model.PropertyModel, res *assetService.IngestResult) {
	prop.PropertyImageURL = res.URL
	prop.PropertyImageKey = res.Key
	prop.PropertyThumbURL = res.ThumbnailURL
	prop.PropertyThumbKey = res.ThumbnailKey
}

func imageErrorResponse(c *fiber.Ctx, err error) error {
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
