// internals/features/school/students/controller/student_admin_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseService "musicschool_backend/internals/features/school/courses/service"
	studentDTO "musicschool_backend/internals/features/school/students/dto"
	studentModel "musicschool_backend/internals/features/school/students/model"
	helper "musicschool_backend/internals/helpers"
)

type StudentAdminController struct{ DB *gorm.DB }

func NewStudentAdminController(db *gorm.DB) *StudentAdminController {
	return &StudentAdminController{DB: db}
}

var validateStudent = validator.New()

// ===================== CREATE =====================
// POST /api/a/students
func (h *StudentAdminController) Create(c *fiber.Ctx) error {
	var req studentDTO.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateStudent.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var created *studentModel.StudentModel
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		code, err := helper.NextSequenceCode(tx, helper.SeqStudents)
		if err != nil {
			return err
		}
		created = req.ToModel(code)
		return tx.Create(created).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to add student")
	}
	return helper.JsonCreated(c, "Student added successfully", created)
}

// ===================== UPDATE =====================
// PUT /api/a/students/:studentCode
func (h *StudentAdminController) Update(c *fiber.Ctx) error {
	var req studentDTO.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateStudent.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var student studentModel.StudentModel
	if err := h.DB.Where("student_code = ?", c.Params("studentCode")).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve student")
	}

	req.ApplyToModel(&student)
	if err := h.DB.Save(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update student")
	}
	return helper.JsonUpdated(c, "Student updated successfully", student)
}

// ===================== READS =====================
// GET /api/a/students
func (h *StudentAdminController) List(c *fiber.Ctx) error {
	var students []studentModel.StudentModel
	if err := h.DB.Order("student_code").Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve students")
	}
	return helper.JsonList(c, "Students retrieved successfully", students)
}

// GET /api/a/students/:studentCode
func (h *StudentAdminController) Detail(c *fiber.Ctx) error {
	var student studentModel.StudentModel
	if err := h.DB.Where("student_code = ?", c.Params("studentCode")).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve student")
	}
	return helper.JsonOK(c, "Student retrieved successfully", student)
}

// GET /api/a/courses/students/:studentCode: contact card for course views.
func (h *StudentAdminController) Info(c *fiber.Ctx) error {
	var student studentModel.StudentModel
	if err := h.DB.Where("student_code = ?", c.Params("studentCode")).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve student")
	}
	return helper.JsonOK(c, "Student info retrieved successfully", fiber.Map{
		"student_name":    student.StudentName,
		"student_email":   student.StudentEmail,
		"student_contact": student.StudentContact,
	})
}

// ===================== DELETE (cascade) =====================
// DELETE /api/a/students/:studentCode
// Removes the student and pulls their sessions out of every course.
func (h *StudentAdminController) Delete(c *fiber.Ctx) error {
	deleted, coursesChanged, err := courseService.DeleteStudentCascade(h.DB, c.Params("studentCode"))
	if err != nil {
		if errors.Is(err, courseService.ErrStudentNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete student and associated sessions")
	}
	return helper.JsonDeleted(c, "Student and associated sessions deleted successfully", fiber.Map{
		"deleted_student": deleted,
		"updated_courses": coursesChanged,
	})
}
