// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"musicschool_backend/internals/constants"
	instructorModel "musicschool_backend/internals/features/school/instructors/model"
	studentModel "musicschool_backend/internals/features/school/students/model"
	adminModel "musicschool_backend/internals/features/users/admins/model"
	"musicschool_backend/internals/features/users/auth/service"
	helper "musicschool_backend/internals/helpers"
)

type AuthController struct{ DB *gorm.DB }

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validateAuth = validator.New()

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// account is the role-agnostic view of whoever is logging in. The username
// is tried as a student code, then an instructor code, then an admin
// username.
type account struct {
	Code     string
	Name     string
	Email    string
	Role     string
	Password string // bcrypt hash; empty when no password has been set yet
}

func (h *AuthController) resolveAccount(username string) (*account, error) {
	var student studentModel.StudentModel
	err := h.DB.Where("student_code = ?", username).First(&student).Error
	if err == nil {
		acc := &account{
			Code:  student.StudentCode,
			Name:  student.StudentName,
			Email: student.StudentEmail,
			Role:  constants.RoleStudent,
		}
		if student.StudentPassword != nil {
			acc.Password = *student.StudentPassword
		}
		return acc, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var instructor instructorModel.InstructorModel
	err = h.DB.Where("instructor_code = ?", username).First(&instructor).Error
	if err == nil {
		acc := &account{
			Code:  instructor.InstructorCode,
			Name:  instructor.InstructorName,
			Email: instructor.InstructorEmail,
			Role:  constants.RoleInstructor,
		}
		if instructor.InstructorPassword != nil {
			acc.Password = *instructor.InstructorPassword
		}
		return acc, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var admin adminModel.AdminModel
	err = h.DB.Where("admin_username = ?", username).First(&admin).Error
	if err == nil {
		return &account{
			Code:     admin.AdminUsername,
			Name:     admin.AdminName,
			Email:    admin.AdminEmail,
			Role:     constants.RoleAdmin,
			Password: admin.AdminPassword,
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return nil, gorm.ErrRecordNotFound
}

// updatePassword writes the new hash to whichever table the account lives in.
func (h *AuthController) updatePassword(acc *account, hashed string) error {
	switch acc.Role {
	case constants.RoleStudent:
		return h.DB.Model(&studentModel.StudentModel{}).
			Where("student_code = ?", acc.Code).
			Update("student_password", hashed).Error
	case constants.RoleInstructor:
		return h.DB.Model(&instructorModel.InstructorModel{}).
			Where("instructor_code = ?", acc.Code).
			Update("instructor_password", hashed).Error
	case constants.RoleAdmin:
		return h.DB.Model(&adminModel.AdminModel{}).
			Where("admin_username = ?", acc.Code).
			Update("admin_password", hashed).Error
	}
	return errors.New("unknown account role")
}

// POST /login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	acc, err := h.resolveAccount(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
		}
		log.Printf("[ERROR] login lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to process login")
	}
	if acc.Password == "" || !service.CheckPassword(acc.Password, req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	token, err := service.SignToken(acc.Code, acc.Role)
	if err != nil {
		log.Printf("[ERROR] sign token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(service.TokenLifetime),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.JsonOK(c, "Login successful", fiber.Map{
		"access_token": token,
		"type":         acc.Role,
		"user": fiber.Map{
			"code":  acc.Code,
			"name":  acc.Name,
			"email": acc.Email,
		},
	})
}

type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// POST /api/a/reset-password/:username: admin sets a new password on any
// account, bypassing the OTP flow.
func (h *AuthController) AdminResetPassword(c *fiber.Ctx) error {
	username := c.Params("username")

	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	acc, err := h.resolveAccount(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Account not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to process request")
	}

	hashed, err := service.HashPassword(req.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reset password")
	}
	if err := h.updatePassword(acc, hashed); err != nil {
		log.Printf("[ERROR] admin reset password: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reset password")
	}
	return helper.JsonUpdated(c, "Password reset successfully", fiber.Map{
		"code": acc.Code,
		"type": acc.Role,
	})
}

// POST /logout: blacklists the presented token for its remaining lifetime.
func (h *AuthController) Logout(c *fiber.Ctx) error {
	rawToken, _ := c.Locals("raw_token").(string)
	if rawToken == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "No active session")
	}
	if err := service.BlacklistToken(h.DB, rawToken); err != nil {
		log.Printf("[ERROR] blacklist token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to log out")
	}
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.JsonOK(c, "Logout successful", nil)
}
