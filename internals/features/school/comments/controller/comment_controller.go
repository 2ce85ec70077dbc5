// internals/features/school/comments/controller/comment_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"musicschool_backend/internals/constants"
	"musicschool_backend/internals/features/school/comments/dto"
	"musicschool_backend/internals/features/school/comments/model"
	courseModel "musicschool_backend/internals/features/school/courses/model"
	instructorModel "musicschool_backend/internals/features/school/instructors/model"
	studentModel "musicschool_backend/internals/features/school/students/model"
	adminModel "musicschool_backend/internals/features/users/admins/model"
	helper "musicschool_backend/internals/helpers"
	helperAuth "musicschool_backend/internals/helpers/auth"
)

// CommentController handles per-student notes inside a course. Instructors
// may only write on courses they teach; admins may write on any course.
type CommentController struct{ DB *gorm.DB }

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db}
}

var validateComment = validator.New()

// POST /api/i/courses/:courseCode/student/:studentCode/comments (also
// mounted under /api/a).
func (h *CommentController) Create(c *fiber.Ctx) error {
	authorCode, err := helperAuth.GetUserCodeFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	role, err := helperAuth.GetRoleFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	courseCode := c.Params("courseCode")
	studentCode := c.Params("studentCode")

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateComment.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var course courseModel.CourseModel
	if err := h.DB.Where("course_code = ?", courseCode).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve course")
	}
	if role == constants.RoleInstructor && course.CourseInstructorCode != authorCode {
		return helper.JsonError(c, fiber.StatusForbidden, "You do not teach this course")
	}
	if !course.HasSession(studentCode) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student is not enrolled in this course")
	}

	var student studentModel.StudentModel
	if err := h.DB.Where("student_code = ?", studentCode).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve student")
	}

	comment := &model.CommentModel{
		CommentCourseCode:     course.CourseCode,
		CommentStudentCode:    student.StudentCode,
		CommentStudentName:    student.StudentName,
		CommentInstructorCode: authorCode,
		CommentInstructorName: h.authorName(role, authorCode),
		CommentText:           req.CommentText,
	}
	if err := h.DB.Create(comment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create comment")
	}
	return helper.JsonCreated(c, "Comment created successfully", comment)
}

// GET /api/i/courses/:courseCode/comments: everything written on the
// course, newest first (also mounted under /api/a).
func (h *CommentController) ListForCourse(c *fiber.Ctx) error {
	courseCode := c.Params("courseCode")

	var comments []model.CommentModel
	if err := h.DB.
		Where("comment_course_code = ?", courseCode).
		Order("comment_created_at desc").
		Find(&comments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve comments")
	}
	return helper.JsonList(c, "Comments retrieved successfully", comments)
}

// GET /api/s/comments: the student's own comments, newest first.
func (h *CommentController) MyComments(c *fiber.Ctx) error {
	studentCode, err := helperAuth.GetUserCodeFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var comments []model.CommentModel
	if err := h.DB.
		Where("comment_student_code = ?", studentCode).
		Order("comment_created_at desc").
		Find(&comments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve comments")
	}
	return helper.JsonList(c, "Comments retrieved successfully", comments)
}

func (h *CommentController) authorName(role, authorCode string) string {
	switch role {
	case constants.RoleInstructor:
		var instructor instructorModel.InstructorModel
		if err := h.DB.Where("instructor_code = ?", authorCode).First(&instructor).Error; err == nil {
			return instructor.InstructorName
		}
	case constants.RoleAdmin:
		var admin adminModel.AdminModel
		if err := h.DB.Where("admin_username = ?", authorCode).First(&admin).Error; err == nil {
			return admin.AdminName
		}
	}
	return authorCode
}
