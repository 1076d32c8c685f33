package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Candratama/four-best-website-sub000/internals/features/sections/controller"
)

func SectionPublicRoutes(api fiber.Router, db *gorm.DB) {
	sectionCtrl := controller.NewSectionController(db)

	public := api.Group("/sections")
	public.Get("/:page", sectionCtrl.ListByPage)
	public.Get("/:page/:key", sectionCtrl.Detail)
}

func SectionAdminRoutes(api fiber.Router, db *gorm.DB) {
	sectionCtrl := controller.NewSectionController(db)

	admin := api.Group("/sections")
	admin.Put("/", sectionCtrl.Upsert)
	admin.Delete("/:page/:key", sectionCtrl.Delete)
}
