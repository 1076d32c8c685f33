package route

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Candratama/four-best-website-sub000/internals/features/submissions/controller"
	"github.com/Candratama/four-best-website-sub000/internals/features/submissions/service"
)

func SubmissionAdminRoutes(api fiber.Router, lc *service.Lifecycle) {
	subCtrl := controller.NewSubmissionController(lc)

	admin := api.Group("/submissions")
	admin.Get("/", subCtrl.List)
	admin.Get("/stats", subCtrl.Stats)
	admin.Get("/export", subCtrl.Export)
	admin.Get("/:id", subCtrl.Detail)
	admin.Patch("/:id", subCtrl.Update)
	admin.Post("/:id/resend-email", subCtrl.ResendEmail)
}
