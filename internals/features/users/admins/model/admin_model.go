// internals/features/users/admins/model/admin_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type AdminModel struct {
	AdminID uuid.UUID `gorm:"column:admin_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"admin_id"`

	AdminUsername string `gorm:"column:admin_username;type:varchar(60);not null;uniqueIndex" json:"admin_username"`
	AdminPassword string `gorm:"column:admin_password;type:varchar(120);not null" json:"-"`
	AdminName     string `gorm:"column:admin_name;type:varchar(120)" json:"admin_name"`
	AdminEmail    string `gorm:"column:admin_email;type:varchar(120)" json:"admin_email"`
	AdminTheme    string `gorm:"column:admin_theme;type:varchar(10);not null;default:light" json:"admin_theme"`

	AdminCreatedAt time.Time `gorm:"column:admin_created_at;type:timestamptz;not null;autoCreateTime" json:"admin_created_at"`
	AdminUpdatedAt time.Time `gorm:"column:admin_updated_at;type:timestamptz;not null;autoUpdateTime" json:"admin_updated_at"`
}

func (AdminModel) TableName() string { return "admins" }
