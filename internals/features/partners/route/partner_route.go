package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assetService "github.com/Candratama/four-best-website-sub000/internals/features/assets/service"
	"github.com/Candratama/four-best-website-sub000/internals/features/partners/controller"
)

func PartnerPublicRoutes(api fiber.Router, db *gorm.DB, ing *assetService.Ingestor) {
	partnerCtrl := controller.NewPartnerController(db, ing)

	api.Get("/partners", partnerCtrl.List)
}

func PartnerAdminRoutes(api fiber.Router, db *gorm.DB, ing *assetService.Ingestor) {
	partnerCtrl := controller.NewPartnerController(db, ing)

	admin := api.Group("/partners")
	admin.Get("/", partnerCtrl.List)
	admin.Post("/", partnerCtrl.Create)
	admin.Patch("/:id", partnerCtrl.Update)
	admin.Delete("/:id", partnerCtrl.Delete)
}
