package route

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Candratama/four-best-website-sub000/internals/features/assets/controller"
	"github.com/Candratama/four-best-website-sub000/internals/features/assets/service"
)

func AssetAdminRoutes(api fiber.Router, ing *service.Ingestor) {
	assetCtrl := controller.NewAssetController(ing)

	admin := api.Group("/assets")
	admin.Post("/upload", assetCtrl.Upload)
}
