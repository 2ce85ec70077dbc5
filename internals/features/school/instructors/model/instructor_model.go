// internals/features/school/instructors/model/instructor_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type InstructorModel struct {
	InstructorID uuid.UUID `gorm:"column:instructor_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"instructor_id"`

	// Business identifier, zero-padded sequential, shares the format of
	// student codes but draws from its own counter.
	InstructorCode string `gorm:"column:instructor_code;type:varchar(8);not null;uniqueIndex" json:"instructor_code"`

	InstructorName    string  `gorm:"column:instructor_name;type:varchar(120);not null" json:"instructor_name"`
	InstructorEmail   string  `gorm:"column:instructor_email;type:varchar(120)" json:"instructor_email"`
	InstructorContact string  `gorm:"column:instructor_contact;type:varchar(40)" json:"instructor_contact"`
	InstructorPassword *string `gorm:"column:instructor_password;type:varchar(120)" json:"-"`

	// Instruments the instructor teaches.
	InstructorInstruments pq.StringArray `gorm:"column:instructor_instruments;type:text[]" json:"instructor_instruments"`

	InstructorTheme string `gorm:"column:instructor_theme;type:varchar(10);not null;default:light" json:"instructor_theme"`

	InstructorCreatedAt time.Time      `gorm:"column:instructor_created_at;type:timestamptz;not null;autoCreateTime" json:"instructor_created_at"`
	InstructorUpdatedAt time.Time      `gorm:"column:instructor_updated_at;type:timestamptz;not null;autoUpdateTime" json:"instructor_updated_at"`
	InstructorDeletedAt gorm.DeletedAt `gorm:"column:instructor_deleted_at;index" json:"-"`
}

func (InstructorModel) TableName() string { return "instructors" }
