// internals/features/school/courses/controller/course_admin_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseDTO "musicschool_backend/internals/features/school/courses/dto"
	courseModel "musicschool_backend/internals/features/school/courses/model"
	courseService "musicschool_backend/internals/features/school/courses/service"
	helper "musicschool_backend/internals/helpers"
)

type CourseAdminController struct{ DB *gorm.DB }

func NewCourseAdminController(db *gorm.DB) *CourseAdminController {
	return &CourseAdminController{DB: db}
}

var validateCourse = validator.New()

// ===================== CREATE =====================
// POST /api/a/courses
func (h *CourseAdminController) Create(c *fiber.Ctx) error {
	var req courseDTO.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCourse.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "All fields are required")
	}

	courseCode, err := courseService.BuildCourseCode(req.CourseInstrument, req.CourseDay, req.CourseInstructorCode)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid day provided")
	}

	// Uniqueness pre-check: one course per (instrument, day, instructor suffix).
	var existing courseModel.CourseModel
	if err := h.DB.Where("course_code = ?", courseCode).First(&existing).Error; err == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check course code")
	}

	course := req.ToModel(courseCode)
	if err := h.DB.Create(course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to add course")
	}
	return helper.JsonCreated(c, "Course added successfully", courseDTO.NewCourseDetailResponse(course))
}

// ===================== UPDATE =====================
// PUT /api/a/courses/:courseCode
// Changing instrument/day/instructor regenerates and re-keys the course code.
func (h *CourseAdminController) Update(c *fiber.Ctx) error {
	courseCode := c.Params("courseCode")

	var req courseDTO.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCourse.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var course courseModel.CourseModel
	if err := h.DB.Where("course_code = ?", courseCode).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve course")
	}

	req.ApplyToModel(&course)

	newCode, err := courseService.BuildCourseCode(course.CourseInstrument, course.CourseDay, course.CourseInstructorCode)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid day provided")
	}
	if newCode != courseCode {
		var clash courseModel.CourseModel
		if err := h.DB.Where("course_code = ?", newCode).First(&clash).Error; err == nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Course already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check course code")
		}
	}
	course.CourseCode = newCode

	// Re-keying the course must drag its announcements, comments, and
	// mirrored schedule entries along, or they would keep pointing at the
	// retired code.
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&course).Error; err != nil {
			return err
		}
		return courseService.RekeyCourseCascade(tx, courseCode, newCode)
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update course")
	}
	return helper.JsonUpdated(c, "Course updated successfully", courseDTO.NewCourseDetailResponse(&course))
}

// ===================== DELETE (cascade) =====================
// DELETE /api/a/courses/:courseCode
func (h *CourseAdminController) Delete(c *fiber.Ctx) error {
	deleted, err := courseService.DeleteCourseCascade(h.DB, c.Params("courseCode"))
	if err != nil {
		if errors.Is(err, courseService.ErrCourseNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete course")
	}
	return helper.JsonDeleted(c, "Course deleted successfully", courseDTO.NewCourseDetailResponse(deleted))
}

// ===================== READS =====================
// GET /api/a/courses
func (h *CourseAdminController) List(c *fiber.Ctx) error {
	var courses []courseModel.CourseModel
	if err := h.DB.Order("course_code").Find(&courses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve courses")
	}
	return helper.JsonList(c, "Courses retrieved successfully", courseDTO.NewCourseDetailResponses(courses))
}

// GET /api/a/courses/:courseCode
func (h *CourseAdminController) Detail(c *fiber.Ctx) error {
	var course courseModel.CourseModel
	if err := h.DB.Where("course_code = ?", c.Params("courseCode")).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve course details")
	}
	return helper.JsonOK(c, "Course retrieved successfully", courseDTO.NewCourseDetailResponse(&course))
}

// GET /api/a/courses/instrument/:instrument
func (h *CourseAdminController) ByInstrument(c *fiber.Ctx) error {
	var courses []courseModel.CourseModel
	if err := h.DB.Where("course_instrument = ?", c.Params("instrument")).Find(&courses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve courses")
	}
	if len(courses) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No courses found for this instrument")
	}
	return helper.JsonList(c, "Courses retrieved successfully", courseDTO.NewCourseDetailResponses(courses))
}

// GET /api/a/courses/instructor/:instructorCode?day=&instrument=
func (h *CourseAdminController) ByInstructorDayInstrument(c *fiber.Ctx) error {
	var course courseModel.CourseModel
	err := h.DB.Where(
		"course_instructor_code = ? AND course_day = ? AND course_instrument = ?",
		c.Params("instructorCode"), c.Query("day"), c.Query("instrument"),
	).First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve course")
	}
	return helper.JsonOK(c, "Course retrieved successfully", courseDTO.NewCourseDetailResponse(&course))
}
