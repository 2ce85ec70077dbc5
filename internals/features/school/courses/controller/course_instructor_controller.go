// internals/features/school/courses/controller/course_instructor_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseDTO "musicschool_backend/internals/features/school/courses/dto"
	courseModel "musicschool_backend/internals/features/school/courses/model"
	helper "musicschool_backend/internals/helpers"
	helperAuth "musicschool_backend/internals/helpers/auth"
)

// CourseInstructorController serves the instructor-facing course views.
// Every query is filtered by the instructor code decoded from the token, so
// an instructor can never read another instructor's course.
type CourseInstructorController struct{ DB *gorm.DB }

func NewCourseInstructorController(db *gorm.DB) *CourseInstructorController {
	return &CourseInstructorController{DB: db}
}

// GET /api/i/courses
func (h *CourseInstructorController) MyCourses(c *fiber.Ctx) error {
	instructorCode, err := helperAuth.GetUserCodeFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var courses []courseModel.CourseModel
	if err := h.DB.Where("course_instructor_code = ?", instructorCode).Find(&courses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve courses")
	}
	if len(courses) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No courses found for this instructor")
	}
	return helper.JsonList(c, "Courses retrieved successfully", courseDTO.NewCourseDetailResponses(courses))
}

// GET /api/i/courses/:courseCode
func (h *CourseInstructorController) MyCourseDetail(c *fiber.Ctx) error {
	instructorCode, err := helperAuth.GetUserCodeFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var course courseModel.CourseModel
	if err := h.DB.
		Where("course_code = ? AND course_instructor_code = ?", c.Params("courseCode"), instructorCode).
		First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve course details")
	}
	return helper.JsonOK(c, "Course retrieved successfully", courseDTO.NewCourseDetailResponse(&course))
}

// GET /api/i/courses/:courseCode/students
func (h *CourseInstructorController) MyCourseStudents(c *fiber.Ctx) error {
	instructorCode, err := helperAuth.GetUserCodeFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var course courseModel.CourseModel
	if err := h.DB.
		Where("course_code = ? AND course_instructor_code = ?", c.Params("courseCode"), instructorCode).
		First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve student list")
	}

	students := make([]courseDTO.SessionResponse, 0, len(course.CourseSessions))
	for _, s := range course.CourseSessions {
		students = append(students, courseDTO.SessionResponse{
			StudentCode: s.StudentCode,
			StudentName: s.StudentName,
			Time:        s.Time,
		})
	}
	return helper.JsonOK(c, "Student list retrieved successfully", fiber.Map{
		"course_code":        course.CourseCode,
		"number_of_students": len(students),
		"students":           students,
	})
}
