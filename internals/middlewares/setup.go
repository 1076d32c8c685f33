package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Candratama/four-best-website-sub000/internals/middlewares/logger"
)

func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
