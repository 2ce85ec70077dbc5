// internals/features/school/announcements/controller/announcement_instructor_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"musicschool_backend/internals/features/school/announcements/dto"
	"musicschool_backend/internals/features/school/announcements/model"
	courseModel "musicschool_backend/internals/features/school/courses/model"
	helper "musicschool_backend/internals/helpers"
	helperAuth "musicschool_backend/internals/helpers/auth"
)

// AnnouncementInstructorController lets an instructor manage announcements
// on their own courses only.
type AnnouncementInstructorController struct{ DB *gorm.DB }

func NewAnnouncementInstructorController(db *gorm.DB) *AnnouncementInstructorController {
	return &AnnouncementInstructorController{DB: db}
}

// ownCourse loads the course and rejects instructors who do not teach it.
func (h *AnnouncementInstructorController) ownCourse(c *fiber.Ctx, courseCode string) (*courseModel.CourseModel, string, error) {
	instructorCode, err := helperAuth.GetUserCodeFromToken(c)
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}
	var course courseModel.CourseModel
	if err := h.DB.Where("course_code = ?", courseCode).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", fiber.NewError(fiber.StatusNotFound, "Course not found")
		}
		return nil, "", fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve course")
	}
	if course.CourseInstructorCode != instructorCode {
		return nil, "", fiber.NewError(fiber.StatusForbidden, "You do not teach this course")
	}
	return &course, instructorCode, nil
}

// POST /api/i/courses/:courseCode/announcement
func (h *AnnouncementInstructorController) Create(c *fiber.Ctx) error {
	course, instructorCode, err := h.ownCourse(c, c.Params("courseCode"))
	if err != nil {
		return err
	}

	var req dto.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAnnouncement.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	announcement := req.ToModel(model.TypeCourse, instructorCode, &course.CourseCode)
	if err := h.DB.Create(announcement).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create announcement")
	}
	return helper.JsonCreated(c, "Announcement created successfully", announcement)
}

// GET /api/i/courses/:courseCode/announcements
func (h *AnnouncementInstructorController) List(c *fiber.Ctx) error {
	course, _, err := h.ownCourse(c, c.Params("courseCode"))
	if err != nil {
		return err
	}

	var announcements []model.AnnouncementModel
	if err := h.DB.
		Where("announcement_type = ? AND announcement_course_code = ?", model.TypeCourse, course.CourseCode).
		Order("announcement_created_at desc").
		Find(&announcements).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve announcements")
	}
	return helper.JsonList(c, "Announcements retrieved successfully", announcements)
}

// PATCH /api/i/courses/:courseCode/announcement/:announcementId
func (h *AnnouncementInstructorController) Update(c *fiber.Ctx) error {
	course, _, err := h.ownCourse(c, c.Params("courseCode"))
	if err != nil {
		return err
	}
	announcement, err := findCourseAnnouncement(h.DB, c.Params("announcementId"), course.CourseCode)
	if err != nil {
		return err
	}

	var req dto.UpdateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAnnouncement.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	req.ApplyToModel(announcement)
	if err := h.DB.Save(announcement).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update announcement")
	}
	return helper.JsonUpdated(c, "Announcement updated successfully", announcement)
}

// DELETE /api/i/courses/:courseCode/announcement/:announcementId
func (h *AnnouncementInstructorController) Delete(c *fiber.Ctx) error {
	course, _, err := h.ownCourse(c, c.Params("courseCode"))
	if err != nil {
		return err
	}
	announcement, err := findCourseAnnouncement(h.DB, c.Params("announcementId"), course.CourseCode)
	if err != nil {
		return err
	}
	if err := h.DB.Delete(announcement).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete announcement")
	}
	return helper.JsonDeleted(c, "Announcement deleted successfully", announcement)
}
