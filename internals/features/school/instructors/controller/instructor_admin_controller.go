// internals/features/school/instructors/controller/instructor_admin_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"musicschool_backend/internals/features/school/instructors/dto"
	"musicschool_backend/internals/features/school/instructors/model"
	helper "musicschool_backend/internals/helpers"
)

type InstructorAdminController struct{ DB *gorm.DB }

func NewInstructorAdminController(db *gorm.DB) *InstructorAdminController {
	return &InstructorAdminController{DB: db}
}

var validateInstructor = validator.New()

// POST /api/a/instructors
func (h *InstructorAdminController) Create(c *fiber.Ctx) error {
	var req dto.CreateInstructorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateInstructor.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var created *model.InstructorModel
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		code, err := helper.NextSequenceCode(tx, helper.SeqInstructors)
		if err != nil {
			return err
		}
		created = req.ToModel(code)
		return tx.Create(created).Error
	})
	if err != nil {
		log.Printf("[ERROR] create instructor: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create instructor")
	}
	return helper.JsonCreated(c, "Instructor created successfully", created)
}

// PUT /api/a/instructors/:instructorCode
func (h *InstructorAdminController) Update(c *fiber.Ctx) error {
	code := c.Params("instructorCode")

	var instructor model.InstructorModel
	if err := h.DB.Where("instructor_code = ?", code).First(&instructor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Instructor not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve instructor")
	}

	var req dto.UpdateInstructorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateInstructor.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	req.ApplyToModel(&instructor)
	if err := h.DB.Save(&instructor).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update instructor")
	}
	return helper.JsonUpdated(c, "Instructor updated successfully", instructor)
}

// GET /api/a/instructors
func (h *InstructorAdminController) List(c *fiber.Ctx) error {
	var instructors []model.InstructorModel
	if err := h.DB.Order("instructor_code asc").Find(&instructors).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve instructors")
	}
	return helper.JsonList(c, "Instructors retrieved successfully", instructors)
}

// GET /api/a/instructors/:instructorCode
func (h *InstructorAdminController) Detail(c *fiber.Ctx) error {
	code := c.Params("instructorCode")

	var instructor model.InstructorModel
	if err := h.DB.Where("instructor_code = ?", code).First(&instructor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Instructor not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve instructor")
	}
	return helper.JsonOK(c, "Instructor retrieved successfully", instructor)
}

// GET /api/a/instructors/find?instrument=: instructors able to teach the
// given instrument, matched against the text[] column.
func (h *InstructorAdminController) ByInstrument(c *fiber.Ctx) error {
	instrument := c.Query("instrument")
	if instrument == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query parameter instrument is required")
	}

	var instructors []model.InstructorModel
	if err := h.DB.
		Where("? = ANY(instructor_instruments)", instrument).
		Order("instructor_code asc").
		Find(&instructors).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve instructors")
	}
	if len(instructors) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No instructors found for this instrument")
	}

	out := make([]dto.InstructorNameResponse, 0, len(instructors))
	for _, ins := range instructors {
		out = append(out, dto.InstructorNameResponse{
			InstructorCode: ins.InstructorCode,
			InstructorName: ins.InstructorName,
		})
	}
	return helper.JsonList(c, "Instructors retrieved successfully", out)
}

// DELETE /api/a/instructors/:instructorCode
func (h *InstructorAdminController) Delete(c *fiber.Ctx) error {
	code := c.Params("instructorCode")

	var instructor model.InstructorModel
	if err := h.DB.Where("instructor_code = ?", code).First(&instructor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Instructor not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve instructor")
	}
	if err := h.DB.Delete(&instructor).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete instructor")
	}
	return helper.JsonDeleted(c, "Instructor deleted successfully", instructor)
}
