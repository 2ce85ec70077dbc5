// internals/features/school/announcements/controller/announcement_admin_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"musicschool_backend/internals/features/school/announcements/dto"
	"musicschool_backend/internals/features/school/announcements/model"
	courseModel "musicschool_backend/internals/features/school/courses/model"
	helper "musicschool_backend/internals/helpers"
	helperAuth "musicschool_backend/internals/helpers/auth"
)

type AnnouncementAdminController struct{ DB *gorm.DB }

func NewAnnouncementAdminController(db *gorm.DB) *AnnouncementAdminController {
	return &AnnouncementAdminController{DB: db}
}

var validateAnnouncement = validator.New()

// POST /api/a/announcements: global announcement visible to everyone.
func (h *AnnouncementAdminController) CreateGlobal(c *fiber.Ctx) error {
	postedBy, err := helperAuth.GetUserCodeFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAnnouncement.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	announcement := req.ToModel(model.TypeAdmin, postedBy, nil)
	if err := h.DB.Create(announcement).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create announcement")
	}
	return helper.JsonCreated(c, "Announcement created successfully", announcement)
}

// GET /api/a/announcements: global announcements only, newest first.
func (h *AnnouncementAdminController) ListGlobal(c *fiber.Ctx) error {
	var announcements []model.AnnouncementModel
	if err := h.DB.
		Where("announcement_type = ?", model.TypeAdmin).
		Order("announcement_created_at desc").
		Find(&announcements).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve announcements")
	}
	return helper.JsonList(c, "Announcements retrieved successfully", announcements)
}

// GET /api/a/announcements/all: global and course-scoped, newest first.
func (h *AnnouncementAdminController) ListAll(c *fiber.Ctx) error {
	var announcements []model.AnnouncementModel
	if err := h.DB.
		Order("announcement_created_at desc").
		Find(&announcements).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve announcements")
	}
	return helper.JsonList(c, "Announcements retrieved successfully", announcements)
}

// POST /api/a/courses/:courseCode/announcement
func (h *AnnouncementAdminController) CreateForCourse(c *fiber.Ctx) error {
	courseCode := c.Params("courseCode")
	postedBy, err := helperAuth.GetUserCodeFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var course courseModel.CourseModel
	if err := h.DB.Where("course_code = ?", courseCode).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve course")
	}

	var req dto.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAnnouncement.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	announcement := req.ToModel(model.TypeCourse, postedBy, &course.CourseCode)
	if err := h.DB.Create(announcement).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create announcement")
	}
	return helper.JsonCreated(c, "Announcement created successfully", announcement)
}

// GET /api/a/courses/:courseCode/announcements
func (h *AnnouncementAdminController) ListForCourse(c *fiber.Ctx) error {
	courseCode := c.Params("courseCode")

	var announcements []model.AnnouncementModel
	if err := h.DB.
		Where("announcement_type = ? AND announcement_course_code = ?", model.TypeCourse, courseCode).
		Order("announcement_created_at desc").
		Find(&announcements).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve announcements")
	}
	return helper.JsonList(c, "Announcements retrieved successfully", announcements)
}

// PATCH /api/a/courses/:courseCode/announcement/:announcementId
func (h *AnnouncementAdminController) UpdateForCourse(c *fiber.Ctx) error {
	announcement, err := findCourseAnnouncement(h.DB, c.Params("announcementId"), c.Params("courseCode"))
	if err != nil {
		return err
	}
	return h.applyUpdate(c, announcement)
}

// DELETE /api/a/courses/:courseCode/announcement/:announcementId
func (h *AnnouncementAdminController) DeleteForCourse(c *fiber.Ctx) error {
	announcement, err := findCourseAnnouncement(h.DB, c.Params("announcementId"), c.Params("courseCode"))
	if err != nil {
		return err
	}
	if err := h.DB.Delete(announcement).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete announcement")
	}
	return helper.JsonDeleted(c, "Announcement deleted successfully", announcement)
}

// PUT /api/a/announcements/:announcementId: global announcements.
func (h *AnnouncementAdminController) Update(c *fiber.Ctx) error {
	announcement, err := findAnnouncement(h.DB, c.Params("announcementId"))
	if err != nil {
		return err
	}
	return h.applyUpdate(c, announcement)
}

func (h *AnnouncementAdminController) applyUpdate(c *fiber.Ctx, announcement *model.AnnouncementModel) error {
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

// DELETE /api/a/announcements/:announcementId
func (h *AnnouncementAdminController) Delete(c *fiber.Ctx) error {
	announcement, err := findAnnouncement(h.DB, c.Params("announcementId"))
	if err != nil {
		return err
	}
	if err := h.DB.Delete(announcement).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete announcement")
	}
	return helper.JsonDeleted(c, "Announcement deleted successfully", announcement)
}

func findAnnouncement(db *gorm.DB, id string) (*model.AnnouncementModel, error) {
	var announcement model.AnnouncementModel
	if err := db.Where("announcement_id = ?", id).First(&announcement).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Announcement not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve announcement")
	}
	return &announcement, nil
}

func findCourseAnnouncement(db *gorm.DB, id, courseCode string) (*model.AnnouncementModel, error) {
	var announcement model.AnnouncementModel
	err := db.
		Where("announcement_id = ? AND announcement_course_code = ?", id, courseCode).
		First(&announcement).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Announcement not found for this course")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve announcement")
	}
	return &announcement, nil
}
