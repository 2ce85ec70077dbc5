// internals/features/school/feedbacks/controller/feedback_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"musicschool_backend/internals/constants"
	"musicschool_backend/internals/features/school/feedbacks/dto"
	"musicschool_backend/internals/features/school/feedbacks/model"
	studentModel "musicschool_backend/internals/features/school/students/model"
	adminModel "musicschool_backend/internals/features/users/admins/model"
	helper "musicschool_backend/internals/helpers"
	helperAuth "musicschool_backend/internals/helpers/auth"
)

// FeedbackController covers both sides of the thread: students submit and
// follow up on their own feedback, admins review and reply to any of it.
type FeedbackController struct{ DB *gorm.DB }

func NewFeedbackController(db *gorm.DB) *FeedbackController {
	return &FeedbackController{DB: db}
}

var validateFeedback = validator.New()

// POST /api/s/feedback
func (h *FeedbackController) Submit(c *fiber.Ctx) error {
	studentCode, err := helperAuth.GetUserCodeFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateFeedback.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var student studentModel.StudentModel
	if err := h.DB.Where("student_code = ?", studentCode).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve student")
	}

	feedback := &model.FeedbackModel{
		FeedbackStudentCode: student.StudentCode,
		FeedbackStudentName: student.StudentName,
		FeedbackMessage:     req.FeedbackMessage,
	}
	if err := h.DB.Create(feedback).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit feedback")
	}
	return helper.JsonCreated(c, "Feedback submitted successfully", feedback)
}

// GET /api/s/feedback: the student's own threads, newest first.
func (h *FeedbackController) MyFeedbacks(c *fiber.Ctx) error {
	studentCode, err := helperAuth.GetUserCodeFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var feedbacks []model.FeedbackModel
	if err := h.DB.
		Where("feedback_student_code = ?", studentCode).
		Order("feedback_created_at desc").
		Find(&feedbacks).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve feedbacks")
	}
	return helper.JsonList(c, "Feedbacks retrieved successfully", feedbacks)
}

// POST /api/s/feedback/:feedbackId/reply: student follows up on their
// own thread.
func (h *FeedbackController) StudentReply(c *fiber.Ctx) error {
	studentCode, err := helperAuth.GetUserCodeFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	feedback, err := h.findFeedback(c.Params("feedbackId"))
	if err != nil {
		return err
	}
	if feedback.FeedbackStudentCode != studentCode {
		return helper.JsonError(c, fiber.StatusForbidden, "This feedback belongs to another student")
	}
	return h.appendReply(c, feedback, constants.RoleStudent, studentCode, feedback.FeedbackStudentName)
}

// GET /api/a/feedbacks: every thread, newest first.
func (h *FeedbackController) ListAll(c *fiber.Ctx) error {
	var feedbacks []model.FeedbackModel
	if err := h.DB.
		Order("feedback_created_at desc").
		Find(&feedbacks).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve feedbacks")
	}
	return helper.JsonList(c, "Feedbacks retrieved successfully", feedbacks)
}

// POST /api/a/feedbacks/:feedbackId/reply
func (h *FeedbackController) AdminReply(c *fiber.Ctx) error {
	username, err := helperAuth.GetUserCodeFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	feedback, err := h.findFeedback(c.Params("feedbackId"))
	if err != nil {
		return err
	}

	name := username
	var admin adminModel.AdminModel
	if err := h.DB.Where("admin_username = ?", username).First(&admin).Error; err == nil {
		name = admin.AdminName
	}
	return h.appendReply(c, feedback, constants.RoleAdmin, username, name)
}

func (h *FeedbackController) appendReply(c *fiber.Ctx, feedback *model.FeedbackModel, role, userCode, userName string) error {
	var req dto.ReplyFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateFeedback.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	feedback.FeedbackReplies = append(feedback.FeedbackReplies, model.FeedbackReply{
		UserCode:  userCode,
		UserName:  userName,
		Role:      role,
		Message:   req.Message,
		CreatedAt: time.Now(),
	})
	if err := h.DB.Model(feedback).Update("feedback_replies", feedback.FeedbackReplies).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to add reply")
	}
	return helper.JsonUpdated(c, "Reply added successfully", feedback)
}

func (h *FeedbackController) findFeedback(id string) (*model.FeedbackModel, error) {
	var feedback model.FeedbackModel
	if err := h.DB.Where("feedback_id = ?", id).First(&feedback).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Feedback not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve feedback")
	}
	return &feedback, nil
}
