package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assetService "github.com/Candratama/four-best-website-sub000/internals/features/assets/service"
	"github.com/Candratama/four-best-website-sub000/internals/features/slides/controller"
)

func SlidePublicRoutes(api fiber.Router, db *gorm.DB, ing *assetService.Ingestor) {
	slideCtrl := controller.NewSlideController(db, ing)

	public := api.Group("/slides")
	public.Get("/", slideCtrl.List)
}

func SlideAdminRoutes(api fiber.Router, db *gorm.DB, ing *assetService.Ingestor) {
	slideCtrl := controller.NewSlideController(db, ing)

	admin := api.Group("/slides")
	admin.Get("/", slideCtrl.AdminList)
	admin.Post("/", slideCtrl.Create)
	admin.Put("/reorder", slideCtrl.Reorder)
	admin.Patch("/:id", slideCtrl.Update)
	admin.Delete("/:id", slideCtrl.Delete)
}
