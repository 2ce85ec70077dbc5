// internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"musicschool_backend/internals/constants"
	authMiddleware "musicschool_backend/internals/middlewares/auth"
	"musicschool_backend/internals/route/details"
)

// SetupRoutes wires the public surface and the three role-scoped API groups.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	details.PublicRoutes(app, db)

	api := app.Group("/api", authMiddleware.AuthMiddleware(db))

	adminGroup := api.Group("/a", authMiddleware.RequireRoles(constants.RoleAdmin))
	details.AdminRoutes(adminGroup, db)

	instructorGroup := api.Group("/i", authMiddleware.RequireRoles(constants.RoleInstructor))
	details.InstructorRoutes(instructorGroup, db)

	studentGroup := api.Group("/s", authMiddleware.RequireRoles(constants.RoleStudent))
	details.StudentRoutes(studentGroup, db)
}
