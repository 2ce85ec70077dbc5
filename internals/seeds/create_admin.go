// internals/seeds/create_admin.go
package seeds

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"musicschool_backend/internals/configs"
	adminModel "musicschool_backend/internals/features/users/admins/model"
	authService "musicschool_backend/internals/features/users/auth/service"
)

// EnsureAdmin creates the bootstrap admin account when ADMIN_USERNAME and
// ADMIN_PASSWORD are set and no account with that username exists yet.
func EnsureAdmin(db *gorm.DB) error {
	username := configs.GetEnv("ADMIN_USERNAME")
	password := configs.GetEnv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Println("[INFO] ADMIN_USERNAME/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var existing adminModel.AdminModel
	err := db.Where("admin_username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := authService.HashPassword(password)
	if err != nil {
		return err
	}
	admin := adminModel.AdminModel{
		AdminUsername: username,
		AdminPassword: hashed,
		AdminName:     configs.GetEnv("ADMIN_NAME", "Administrator"),
		AdminEmail:    configs.GetEnv("ADMIN_EMAIL"),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("[INFO] Seeded admin account %q", username)
	return nil
}
