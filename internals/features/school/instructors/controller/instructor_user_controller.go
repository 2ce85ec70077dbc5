// internals/features/school/instructors/controller/instructor_user_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"musicschool_backend/internals/features/school/instructors/dto"
	"musicschool_backend/internals/features/school/instructors/model"
	helper "musicschool_backend/internals/helpers"
	helperAuth "musicschool_backend/internals/helpers/auth"
)

type InstructorUserController struct{ DB *gorm.DB }

func NewInstructorUserController(db *gorm.DB) *InstructorUserController {
	return &InstructorUserController{DB: db}
}

func (h *InstructorUserController) loadSelf(c *fiber.Ctx) (*model.InstructorModel, error) {
	code, err := helperAuth.GetUserCodeFromToken(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}
	var instructor model.InstructorModel
	if err := h.DB.Where("instructor_code = ?", code).First(&instructor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Instructor not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve instructor")
	}
	return &instructor, nil
}

// GET /api/i/instructor-info
func (h *InstructorUserController) InstructorInfo(c *fiber.Ctx) error {
	instructor, err := h.loadSelf(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Instructor info retrieved successfully", fiber.Map{
		"instructor_code":        instructor.InstructorCode,
		"instructor_name":        instructor.InstructorName,
		"instructor_email":       instructor.InstructorEmail,
		"instructor_instruments": instructor.InstructorInstruments,
	})
}

// GET /api/i/name-info
func (h *InstructorUserController) NameInfo(c *fiber.Ctx) error {
	instructor, err := h.loadSelf(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Instructor name retrieved successfully", dto.InstructorNameResponse{
		InstructorCode: instructor.InstructorCode,
		InstructorName: instructor.InstructorName,
	})
}

// GET /api/i/personal-info
func (h *InstructorUserController) PersonalInfo(c *fiber.Ctx) error {
	instructor, err := h.loadSelf(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Personal information retrieved successfully", instructor)
}

// PUT /api/i/personal-info
func (h *InstructorUserController) UpdatePersonalInfo(c *fiber.Ctx) error {
	instructor, err := h.loadSelf(c)
	if err != nil {
		return err
	}

	var req dto.UpdateInstructorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateInstructor.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	req.ApplyToModel(instructor)
	if err := h.DB.Save(instructor).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update personal information")
	}
	return helper.JsonUpdated(c, "Personal information updated successfully", instructor)
}
