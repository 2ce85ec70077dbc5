// internals/route/details/public_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "musicschool_backend/internals/features/users/auth/controller"
	"musicschool_backend/internals/middlewares"
	authMiddleware "musicschool_backend/internals/middlewares/auth"
)

// PublicRoutes mounts everything reachable without a token.
func PublicRoutes(app *fiber.App, db *gorm.DB) {
	auth := authController.NewAuthController(db)
	forgot := authController.NewForgotPasswordController(db)

	app.Post("/login", middlewares.LoginRateLimiter(), auth.Login)
	app.Post("/logout", authMiddleware.AuthMiddleware(db), auth.Logout)

	forgotGroup := app.Group("/forgot", middlewares.ForgotPasswordRateLimiter())
	forgotGroup.Post("/request-otp", forgot.RequestOTP)
	forgotGroup.Post("/verify-otp", forgot.VerifyOTP)
	forgotGroup.Put("/update-password", forgot.UpdatePassword)
}
