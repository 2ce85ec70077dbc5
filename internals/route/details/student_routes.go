// internals/route/details/student_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	announcementController "musicschool_backend/internals/features/school/announcements/controller"
	commentController "musicschool_backend/internals/features/school/comments/controller"
	feedbackController "musicschool_backend/internals/features/school/feedbacks/controller"
	studentController "musicschool_backend/internals/features/school/students/controller"
	themeController "musicschool_backend/internals/features/users/theme/controller"
)

// StudentRoutes mounts everything under /api/s.
func StudentRoutes(api fiber.Router, db *gorm.DB) {
	self := studentController.NewStudentUserController(db)
	announcements := announcementController.NewAnnouncementStudentController(db)
	comments := commentController.NewCommentController(db)
	feedbacks := feedbackController.NewFeedbackController(db)
	theme := themeController.NewThemeController(db)

	// Profile and schedule
	api.Get("/student-info", self.StudentInfo)
	api.Get("/personal-info", self.PersonalInfo)
	api.Put("/personal-info", self.UpdatePersonalInfo)
	api.Get("/courses", self.MyCourses)
	api.Get("/session-details", self.SessionDetails)

	// Announcements
	api.Get("/announcements", announcements.General)
	api.Get("/allannouncements", announcements.All)
	api.Get("/courses/:courseCode/announcements", announcements.ForCourse)

	// Comments written about the student
	api.Get("/comments", comments.MyComments)

	// Feedback threads
	api.Post("/feedback", feedbacks.Submit)
	api.Get("/feedback", feedbacks.MyFeedbacks)
	api.Post("/feedback/:feedbackId/reply", feedbacks.StudentReply)

	// Theme
	api.Get("/theme", theme.Get)
	api.Put("/theme", theme.Update)
}
