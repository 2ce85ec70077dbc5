// internals/route/details/admin_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	announcementController "musicschool_backend/internals/features/school/announcements/controller"
	commentController "musicschool_backend/internals/features/school/comments/controller"
	courseController "musicschool_backend/internals/features/school/courses/controller"
	feedbackController "musicschool_backend/internals/features/school/feedbacks/controller"
	instructorController "musicschool_backend/internals/features/school/instructors/controller"
	studentController "musicschool_backend/internals/features/school/students/controller"
	authController "musicschool_backend/internals/features/users/auth/controller"
	themeController "musicschool_backend/internals/features/users/theme/controller"
)

// AdminRoutes mounts everything under /api/a. The group already carries the
// auth middleware and the admin role gate.
func AdminRoutes(api fiber.Router, db *gorm.DB) {
	students := studentController.NewStudentAdminController(db)
	instructors := instructorController.NewInstructorAdminController(db)
	courses := courseController.NewCourseAdminController(db)
	assignments := courseController.NewCourseAssignmentController(db)
	announcements := announcementController.NewAnnouncementAdminController(db)
	comments := commentController.NewCommentController(db)
	feedbacks := feedbackController.NewFeedbackController(db)
	accounts := authController.NewAuthController(db)
	theme := themeController.NewThemeController(db)

	// Students
	api.Post("/students", students.Create)
	api.Get("/students", students.List)
	api.Get("/students/:studentCode", students.Detail)
	api.Put("/students/:studentCode", students.Update)
	api.Delete("/students/:studentCode", students.Delete)

	// Instructors
	api.Post("/instructors", instructors.Create)
	api.Get("/instructors", instructors.List)
	api.Get("/instructors/find", instructors.ByInstrument)
	api.Get("/instructors/:instructorCode", instructors.Detail)
	api.Put("/instructors/:instructorCode", instructors.Update)
	api.Delete("/instructors/:instructorCode", instructors.Delete)

	// Courses
	api.Post("/courses", courses.Create)
	api.Get("/courses", courses.List)
	api.Get("/courses/instrument/:instrument", courses.ByInstrument)
	api.Get("/courses/instructor/:instructorCode", courses.ByInstructorDayInstrument)
	api.Get("/courses/students/:studentCode", students.Info)
	api.Get("/courses/:courseCode", courses.Detail)
	api.Put("/courses/:courseCode", courses.Update)
	api.Delete("/courses/:courseCode", courses.Delete)

	// Assignment engine
	api.Post("/courses/assign-student", assignments.AssignStudent)
	api.Post("/courses/assign-student-multiple", assignments.AssignStudentMultiple)
	api.Post("/maintenance/repair-schedules", assignments.RepairSchedules)

	// Announcements
	api.Post("/announcements", announcements.CreateGlobal)
	api.Get("/announcements", announcements.ListGlobal)
	api.Get("/announcements/all", announcements.ListAll)
	api.Put("/announcements/:announcementId", announcements.Update)
	api.Delete("/announcements/:announcementId", announcements.Delete)
	api.Post("/courses/:courseCode/announcement", announcements.CreateForCourse)
	api.Get("/courses/:courseCode/announcements", announcements.ListForCourse)
	api.Patch("/courses/:courseCode/announcement/:announcementId", announcements.UpdateForCourse)
	api.Delete("/courses/:courseCode/announcement/:announcementId", announcements.DeleteForCourse)

	// Comments
	api.Post("/courses/:courseCode/student/:studentCode/comments", comments.Create)
	api.Get("/courses/:courseCode/comments", comments.ListForCourse)

	// Feedback
	api.Get("/feedbacks", feedbacks.ListAll)
	api.Post("/feedbacks/:feedbackId/reply", feedbacks.AdminReply)

	// Account maintenance
	api.Post("/reset-password/:username", accounts.AdminResetPassword)

	// Theme
	api.Get("/theme", theme.Get)
	api.Put("/theme", theme.Update)
}
