// internals/features/users/theme/controller/theme_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"musicschool_backend/internals/constants"
	instructorModel "musicschool_backend/internals/features/school/instructors/model"
	studentModel "musicschool_backend/internals/features/school/students/model"
	adminModel "musicschool_backend/internals/features/users/admins/model"
	helper "musicschool_backend/internals/helpers"
	helperAuth "musicschool_backend/internals/helpers/auth"
)

// ThemeController reads and writes the UI theme preference stored on each
// account row, whichever table the caller lives in.
type ThemeController struct{ DB *gorm.DB }

func NewThemeController(db *gorm.DB) *ThemeController {
	return &ThemeController{DB: db}
}

type updateThemeRequest struct {
	Theme string `json:"theme"`
}

// GET /theme (mounted under every role group)
func (h *ThemeController) Get(c *fiber.Ctx) error {
	code, role, err := identity(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	theme, err := h.currentTheme(role, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Account not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve theme")
	}
	return helper.JsonOK(c, "Theme retrieved successfully", fiber.Map{"theme": theme})
}

// PUT /theme
func (h *ThemeController) Update(c *fiber.Ctx) error {
	code, role, err := identity(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req updateThemeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Theme != "light" && req.Theme != "dark" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Theme must be light or dark")
	}

	if err := h.saveTheme(role, code, req.Theme); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update theme")
	}
	return helper.JsonUpdated(c, "Theme updated successfully", fiber.Map{"theme": req.Theme})
}

func identity(c *fiber.Ctx) (code, role string, err error) {
	code, err = helperAuth.GetUserCodeFromToken(c)
	if err != nil {
		return "", "", err
	}
	role, err = helperAuth.GetRoleFromToken(c)
	if err != nil {
		return "", "", err
	}
	return code, role, nil
}

func (h *ThemeController) currentTheme(role, code string) (string, error) {
	switch role {
	case constants.RoleStudent:
		var student studentModel.StudentModel
		if err := h.DB.Select("student_theme").Where("student_code = ?", code).First(&student).Error; err != nil {
			return "", err
		}
		return student.StudentTheme, nil
	case constants.RoleInstructor:
		var instructor instructorModel.InstructorModel
		if err := h.DB.Select("instructor_theme").Where("instructor_code = ?", code).First(&instructor).Error; err != nil {
			return "", err
		}
		return instructor.InstructorTheme, nil
	default:
		var admin adminModel.AdminModel
		if err := h.DB.Select("admin_theme").Where("admin_username = ?", code).First(&admin).Error; err != nil {
			return "", err
		}
		return admin.AdminTheme, nil
	}
}

func (h *ThemeController) saveTheme(role, code, theme string) error {
	switch role {
	case constants.RoleStudent:
		return h.DB.Model(&studentModel.StudentModel{}).
			Where("student_code = ?", code).
			Update("student_theme", theme).Error
	case constants.RoleInstructor:
		return h.DB.Model(&instructorModel.InstructorModel{}).
			Where("instructor_code = ?", code).
			Update("instructor_theme", theme).Error
	default:
		return h.DB.Model(&adminModel.AdminModel{}).
			Where("admin_username = ?", code).
			Update("admin_theme", theme).Error
	}
}
