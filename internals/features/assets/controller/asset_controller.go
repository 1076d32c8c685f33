package controller

import (
	"errors"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Candratama/four-best-website-sub000/internals/features/assets/service"
	helper "github.com/Candratama/four-best-website-sub000/internals/helpers"
)

const maxUploadSize = 10 * 1024 * 1024 // 10MB

type AssetController struct {
	Ingestor *service.Ingestor
}

func NewAssetController(ing *service.Ingestor) *AssetController {
	return &AssetController{Ingestor: ing}
}

// =======================
// ⬆️ Upload asset (admin)
// multipart: file + category + optional slug
// =======================
func (ctrl *AssetController) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File tidak ditemukan")
	}
	if fh.Size > maxUploadSize {
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "Ukuran file maksimal 10MB")
	}

	category, err := service.ParseCategory(c.FormValue("category"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	slug := strings.TrimSpace(c.FormValue("slug"))

	src, err := fh.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal membuka file")
	}
	defer src.Close()
	buf, err := io.ReadAll(src)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal membaca file")
	}

	res, err := ctrl.Ingestor.Ingest(c.UserContext(), buf, fh.Filename, category, slug)
	if err != nil {
		var imgErr *service.ImageProcessingError
		if errors.As(err, &imgErr) {
			return helper.JsonError(c, fiber.StatusUnsupportedMediaType, "Unsupported image format (pakai jpg/png/webp/svg)")
		}
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal upload ke storage")
	}

	return helper.JsonCreated(c, "Asset berhasil diupload", res)
}
