// internals/features/school/students/controller/student_user_controller.go
package controller

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseModel "musicschool_backend/internals/features/school/courses/model"
	instructorModel "musicschool_backend/internals/features/school/instructors/model"
	studentDTO "musicschool_backend/internals/features/school/students/dto"
	studentModel "musicschool_backend/internals/features/school/students/model"
	helper "musicschool_backend/internals/helpers"
	helperAuth "musicschool_backend/internals/helpers/auth"
)

// StudentUserController serves the student's own data; the student code
// always comes from the token, never from the path.
type StudentUserController struct{ DB *gorm.DB }

func NewStudentUserController(db *gorm.DB) *StudentUserController {
	return &StudentUserController{DB: db}
}

func (h *StudentUserController) loadSelf(c *fiber.Ctx) (*studentModel.StudentModel, error) {
	code, err := helperAuth.GetUserCodeFromToken(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}
	var student studentModel.StudentModel
	if err := h.DB.Where("student_code = ?", code).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve student")
	}
	return &student, nil
}

// GET /api/s/student-info: dashboard card.
func (h *StudentUserController) StudentInfo(c *fiber.Ctx) error {
	student, err := h.loadSelf(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Student info retrieved successfully", fiber.Map{
		"student_code":       student.StudentCode,
		"student_name":       student.StudentName,
		"student_email":      student.StudentEmail,
		"student_instrument": student.StudentInstrument,
		"student_schedule":   student.StudentSchedule,
	})
}

// GET /api/s/personal-info
func (h *StudentUserController) PersonalInfo(c *fiber.Ctx) error {
	student, err := h.loadSelf(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Personal information retrieved successfully", student)
}

// PUT /api/s/personal-info
func (h *StudentUserController) UpdatePersonalInfo(c *fiber.Ctx) error {
	student, err := h.loadSelf(c)
	if err != nil {
		return err
	}

	var req studentDTO.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateStudent.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	req.ApplyToModel(student)
	if err := h.DB.Save(student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update personal information")
	}
	return helper.JsonUpdated(c, "Personal information updated successfully", student)
}

// GET /api/s/courses: every course the student is enrolled in, with the
// instructor contact and the student's own slot time.
func (h *StudentUserController) MyCourses(c *fiber.Ctx) error {
	student, err := h.loadSelf(c)
	if err != nil {
		return err
	}

	courses, err := h.enrolledCourses(student.StudentCode)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve courses")
	}
	if len(courses) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No courses found for this student")
	}

	out := make([]studentDTO.EnrolledCourseResponse, 0, len(courses))
	for i := range courses {
		out = append(out, h.enrolledCourseResponse(&courses[i], student.StudentCode, false))
	}
	return helper.JsonList(c, "Courses retrieved successfully", out)
}

// GET /api/s/session-details: like MyCourses but with full instructor
// contact detail per session.
func (h *StudentUserController) SessionDetails(c *fiber.Ctx) error {
	student, err := h.loadSelf(c)
	if err != nil {
		return err
	}

	courses, err := h.enrolledCourses(student.StudentCode)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve session details")
	}
	if len(courses) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No sessions found")
	}

	out := make([]studentDTO.EnrolledCourseResponse, 0, len(courses))
	for i := range courses {
		out = append(out, h.enrolledCourseResponse(&courses[i], student.StudentCode, true))
	}
	return helper.JsonList(c, "Session details retrieved successfully", out)
}

func (h *StudentUserController) enrolledCourses(studentCode string) ([]courseModel.CourseModel, error) {
	var courses []courseModel.CourseModel
	err := h.DB.
		Where("course_sessions @> ?", fmt.Sprintf(`[{"student_code":%q}]`, studentCode)).
		Find(&courses).Error
	return courses, err
}

func (h *StudentUserController) enrolledCourseResponse(course *courseModel.CourseModel, studentCode string, withContact bool) studentDTO.EnrolledCourseResponse {
	resp := studentDTO.EnrolledCourseResponse{
		CourseCode:     course.CourseCode,
		Instrument:     course.CourseInstrument,
		Day:            course.CourseDay,
		InstructorName: course.CourseInstructorName,
	}
	for _, s := range course.CourseSessions {
		if s.StudentCode == studentCode {
			resp.Time = s.Time
			break
		}
	}
	if withContact {
		var instructor instructorModel.InstructorModel
		if err := h.DB.Where("instructor_code = ?", course.CourseInstructorCode).First(&instructor).Error; err == nil {
			resp.InstructorEmail = instructor.InstructorEmail
			resp.InstructorContact = instructor.InstructorContact
		}
	}
	return resp
}
