// internals/route/details/instructor_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	announcementController "musicschool_backend/internals/features/school/announcements/controller"
	commentController "musicschool_backend/internals/features/school/comments/controller"
	courseController "musicschool_backend/internals/features/school/courses/controller"
	instructorController "musicschool_backend/internals/features/school/instructors/controller"
	themeController "musicschool_backend/internals/features/users/theme/controller"
)

// InstructorRoutes mounts everything under /api/i.
func InstructorRoutes(api fiber.Router, db *gorm.DB) {
	self := instructorController.NewInstructorUserController(db)
	courses := courseController.NewCourseInstructorController(db)
	announcements := announcementController.NewAnnouncementInstructorController(db)
	comments := commentController.NewCommentController(db)
	theme := themeController.NewThemeController(db)

	// Profile
	api.Get("/instructor-info", self.InstructorInfo)
	api.Get("/name-info", self.NameInfo)
	api.Get("/personal-info", self.PersonalInfo)
	api.Put("/personal-info", self.UpdatePersonalInfo)

	// Own courses
	api.Get("/courses", courses.MyCourses)
	api.Get("/courses/:courseCode", courses.MyCourseDetail)
	api.Get("/courses/:courseCode/students", courses.MyCourseStudents)

	// Course announcements (ownership checked in the controller)
	api.Post("/courses/:courseCode/announcement", announcements.Create)
	api.Get("/courses/:courseCode/announcements", announcements.List)
	api.Patch("/courses/:courseCode/announcement/:announcementId", announcements.Update)
	api.Delete("/courses/:courseCode/announcement/:announcementId", announcements.Delete)

	// Student comments
	api.Post("/courses/:courseCode/student/:studentCode/comments", comments.Create)
	api.Get("/courses/:courseCode/comments", comments.ListForCourse)

	// Theme
	api.Get("/theme", theme.Get)
	api.Put("/theme", theme.Update)
}
