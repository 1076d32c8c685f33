package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assetService "github.com/Candratama/four-best-website-sub000/internals/features/assets/service"
	"github.com/Candratama/four-best-website-sub000/internals/features/properties/controller"
)

func PropertyPublicRoutes(api fiber.Router, db *gorm.DB, ing *assetService.Ingestor) {
	propCtrl := controller.NewPropertyController(db, ing)

	public := api.Group("/properties")
	public.Get("/", propCtrl.List)
	public.Get("/:slug", propCtrl.DetailBySlug)
}

func PropertyAdminRoutes(api fiber.Router, db *gorm.DB, ing *assetService.Ingestor) {
	propCtrl := controller.NewPropertyController(db, ing)

	admin := api.Group("/properties")
	admin.Get("/", propCtrl.AdminList)
	admin.Post("/", propCtrl.Create)
	admin.Patch("/:id", propCtrl.Update)
	admin.Post("/:id/gallery", propCtrl.AddGalleryImage)
	admin.Delete("/:id", propCtrl.Delete)
}
