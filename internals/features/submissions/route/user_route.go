package route

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Candratama/four-best-website-sub000/internals/features/submissions/controller"
	"github.com/Candratama/four-best-website-sub000/internals/features/submissions/service"
	"github.com/Candratama/four-best-website-sub000/internals/middlewares"
)

func SubmissionPublicRoutes(api fiber.Router, lc *service.Lifecycle) {
	subCtrl := controller.NewSubmissionController(lc)

	api.Post("/contact", middlewares.ContactFormRateLimiter(), subCtrl.Create)
}
