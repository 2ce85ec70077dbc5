// internals/features/school/courses/controller/course_assignment_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseDTO "musicschool_backend/internals/features/school/courses/dto"
	courseService "musicschool_backend/internals/features/school/courses/service"
	helper "musicschool_backend/internals/helpers"
)

type CourseAssignmentController struct{ DB *gorm.DB }

func NewCourseAssignmentController(db *gorm.DB) *CourseAssignmentController {
	return &CourseAssignmentController{DB: db}
}

// ===================== ASSIGN (single) =====================
// POST /api/a/courses/assign-student
func (h *CourseAssignmentController) AssignStudent(c *fiber.Ctx) error {
	var req courseDTO.AssignStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	course, err := courseService.AssignStudent(h.DB, courseService.AssignInput{
		StudentCode:    req.StudentCode,
		StudentName:    req.StudentName,
		Instrument:     req.Instrument,
		InstructorCode: req.InstructorCode,
		Day:            req.Day,
		Time:           req.Time,
	})
	if err != nil {
		switch {
		case errors.Is(err, courseService.ErrMissingFields):
			return helper.JsonError(c, fiber.StatusBadRequest, "Missing required fields")
		case errors.Is(err, courseService.ErrInvalidTime):
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid time, expected HH:MM")
		case errors.Is(err, courseService.ErrCourseNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		case errors.Is(err, courseService.ErrAlreadyAssigned):
			return helper.JsonError(c, fiber.StatusBadRequest, "Student is already assigned to this course")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to assign student")
		}
	}
	return helper.JsonOK(c, "Student assigned successfully", courseDTO.NewCourseDetailResponse(course))
}

// ===================== ASSIGN (bulk) =====================
// POST /api/a/courses/assign-student-multiple
// Runs the same duplicate check and schedule mirroring as the single path.
func (h *CourseAssignmentController) AssignStudentMultiple(c *fiber.Ctx) error {
	var req courseDTO.AssignStudentMultipleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCourse.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing required fields")
	}

	entries := make([]courseService.BulkAssignEntry, 0, len(req.Courses))
	for _, e := range req.Courses {
		entries = append(entries, courseService.BulkAssignEntry{
			CourseCode: e.CourseCode,
			Time:       e.Time,
		})
	}

	updated, err := courseService.AssignStudentToCourses(h.DB, req.StudentCode, entries)
	if err != nil {
		switch {
		case errors.Is(err, courseService.ErrStudentNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		case errors.Is(err, courseService.ErrCourseNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, courseService.ErrAlreadyAssigned), errors.Is(err, courseService.ErrInvalidTime):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to assign student to courses")
		}
	}
	return helper.JsonOK(c, "Student assigned to courses successfully", courseDTO.NewCourseDetailResponses(updated))
}

// ===================== MAINTENANCE =====================
// POST /api/a/maintenance/repair-schedules
// Backfills missing course codes on student schedule entries.
func (h *CourseAssignmentController) RepairSchedules(c *fiber.Ctx) error {
	repairs, err := courseService.RepairSchedules(h.DB)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Schedule repair failed")
	}
	return helper.JsonOK(c, "Schedule repair completed", fiber.Map{
		"repaired": len(repairs),
		"details":  repairs,
	})
}
