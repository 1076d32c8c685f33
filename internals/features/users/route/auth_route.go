package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Candratama/four-best-website-sub000/internals/features/users/controller"
	"github.com/Candratama/four-best-website-sub000/internals/middlewares"
)

func AuthPublicRoutes(api fiber.Router, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), authCtrl.LoginGoogle)
	auth.Post("/logout", authCtrl.Logout)
}

func AuthAdminRoutes(api fiber.Router, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Get("/me", authCtrl.Me)
	auth.Post("/register", authCtrl.Register)
}
