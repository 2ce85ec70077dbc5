// internals/features/school/announcements/controller/announcement_student_controller.go
package controller

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"musicschool_backend/internals/features/school/announcements/model"
	courseModel "musicschool_backend/internals/features/school/courses/model"
	helper "musicschool_backend/internals/helpers"
	helperAuth "musicschool_backend/internals/helpers/auth"
)

// AnnouncementStudentController gives students read access: global
// announcements plus those of the courses they are enrolled in.
type AnnouncementStudentController struct{ DB *gorm.DB }

func NewAnnouncementStudentController(db *gorm.DB) *AnnouncementStudentController {
	return &AnnouncementStudentController{DB: db}
}

// GET /api/s/announcements: global announcements only.
func (h *AnnouncementStudentController) General(c *fiber.Ctx) error {
	var announcements []model.AnnouncementModel
	if err := h.DB.
		Where("announcement_type = ?", model.TypeAdmin).
		Order("announcement_created_at desc").
		Find(&announcements).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve announcements")
	}
	return helper.JsonList(c, "Announcements retrieved successfully", announcements)
}

// GET /api/s/allannouncements: global plus all enrolled-course announcements.
func (h *AnnouncementStudentController) All(c *fiber.Ctx) error {
	studentCode, err := helperAuth.GetUserCodeFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	codes, err := h.enrolledCourseCodes(studentCode)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve announcements")
	}

	q := h.DB.Order("announcement_created_at desc")
	if len(codes) > 0 {
		q = q.Where("announcement_type = ? OR announcement_course_code IN ?", model.TypeAdmin, codes)
	} else {
		q = q.Where("announcement_type = ?", model.TypeAdmin)
	}

	var announcements []model.AnnouncementModel
	if err := q.Find(&announcements).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve announcements")
	}
	return helper.JsonList(c, "Announcements retrieved successfully", announcements)
}

// GET /api/s/courses/:courseCode/announcements: enrollment is required.
func (h *AnnouncementStudentController) ForCourse(c *fiber.Ctx) error {
	studentCode, err := helperAuth.GetUserCodeFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	courseCode := c.Params("courseCode")

	var course courseModel.CourseModel
	if err := h.DB.Where("course_code = ?", courseCode).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve course")
	}
	if !course.HasSession(studentCode) {
		return helper.JsonError(c, fiber.StatusForbidden, "You are not enrolled in this course")
	}

	var announcements []model.AnnouncementModel
	if err := h.DB.
		Where("announcement_type = ? AND announcement_course_code = ?", model.TypeCourse, courseCode).
		Order("announcement_created_at desc").
		Find(&announcements).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve announcements")
	}
	return helper.JsonList(c, "Announcements retrieved successfully", announcements)
}

func (h *AnnouncementStudentController) enrolledCourseCodes(studentCode string) ([]string, error) {
	var courses []courseModel.CourseModel
	err := h.DB.
		Select("course_code").
		Where("course_sessions @> ?", fmt.Sprintf(`[{"student_code":%q}]`, studentCode)).
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(courses))
	for _, crs := range courses {
		codes = append(codes, crs.CourseCode)
	}
	return codes, nil
}
