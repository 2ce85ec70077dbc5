// internals/features/users/auth/controller/forgot_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"musicschool_backend/internals/features/users/auth/service"
	helper "musicschool_backend/internals/helpers"
)

// ForgotPasswordController drives the three-step reset: request a code,
// verify it, then set the new password.
type ForgotPasswordController struct{ DB *gorm.DB }

func NewForgotPasswordController(db *gorm.DB) *ForgotPasswordController {
	return &ForgotPasswordController{DB: db}
}

type RequestOTPRequest struct {
	Username string `json:"username" validate:"required"`
}

type VerifyOTPRequest struct {
	Username string `json:"username" validate:"required"`
	OTP      string `json:"otp" validate:"required,len=6,numeric"`
}

type UpdatePasswordRequest struct {
	Username    string `json:"username" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// POST /forgot/request-otp
func (h *ForgotPasswordController) RequestOTP(c *fiber.Ctx) error {
	var req RequestOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	auth := AuthController{DB: h.DB}
	acc, err := auth.resolveAccount(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Account not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to process request")
	}
	if acc.Email == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Account has no email address on file")
	}

	code, err := service.GenerateOTP()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate code")
	}
	if err := service.StoreOTP(c.Context(), acc.Code, code); err != nil {
		log.Printf("[ERROR] store otp: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store code")
	}
	if err := service.SendOTPEmail(acc.Name, acc.Email, code); err != nil {
		log.Printf("[ERROR] send otp email: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to send email")
	}
	return helper.JsonOK(c, "A reset code has been sent to your email", fiber.Map{
		"email": maskEmail(acc.Email),
	})
}

// POST /forgot/verify-otp
func (h *ForgotPasswordController) VerifyOTP(c *fiber.Ctx) error {
	var req VerifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	auth := AuthController{DB: h.DB}
	acc, err := auth.resolveAccount(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Account not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to process request")
	}

	if err := service.VerifyOTP(c.Context(), acc.Code, req.OTP); err != nil {
		switch {
		case errors.Is(err, service.ErrOTPExpired):
			return helper.JsonError(c, fiber.StatusBadRequest, "Code expired, please request a new one")
		case errors.Is(err, service.ErrOTPMismatch):
			return helper.JsonError(c, fiber.StatusBadRequest, "Incorrect code")
		default:
			log.Printf("[ERROR] verify otp: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify code")
		}
	}
	return helper.JsonOK(c, "Code verified, you may now set a new password", nil)
}

// PUT /forgot/update-password: only valid after a successful VerifyOTP.
func (h *ForgotPasswordController) UpdatePassword(c *fiber.Ctx) error {
	var req UpdatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	auth := AuthController{DB: h.DB}
	acc, err := auth.resolveAccount(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Account not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to process request")
	}

	if err := service.ConsumeVerified(c.Context(), acc.Code); err != nil {
		if errors.Is(err, service.ErrOTPUnproven) {
			return helper.JsonError(c, fiber.StatusForbidden, "Code verification required before updating password")
		}
		log.Printf("[ERROR] consume verified flag: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to process request")
	}

	hashed, err := service.HashPassword(req.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}
	if err := auth.updatePassword(acc, hashed); err != nil {
		log.Printf("[ERROR] update password: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}
	return helper.JsonUpdated(c, "Password updated successfully", nil)
}

// maskEmail keeps the first two characters and the domain.
func maskEmail(email string) string {
	at := -1
	for i, r := range email {
		if r == '@' {
			at = i
			break
		}
	}
	if at <= 2 {
		return email
	}
	return email[:2] + "*****" + email[at:]
}
