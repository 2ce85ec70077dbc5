// internals/features/school/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ScheduleEntry is one {day, time} commitment on a student's personal
// schedule, mirrored from a course session.
type ScheduleEntry struct {
	Day        string `json:"day"`
	Time       string `json:"time"`
	CourseCode string `json:"course_code,omitempty"`
}

type StudentModel struct {
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`

	// Business identifier, zero-padded sequential ("0001", "0002", ...).
	StudentCode string `gorm:"column:student_code;type:varchar(8);not null;uniqueIndex" json:"student_code"`

	StudentName       string  `gorm:"column:student_name;type:varchar(120);not null" json:"student_name"`
	StudentEmail      string  `gorm:"column:student_email;type:varchar(120)" json:"student_email"`
	StudentContact    string  `gorm:"column:student_contact;type:varchar(40)" json:"student_contact"`
	StudentInstrument string  `gorm:"column:student_instrument;type:varchar(60)" json:"student_instrument"`
	StudentPassword   *string `gorm:"column:student_password;type:varchar(120)" json:"-"`

	StudentSchedule datatypes.JSONSlice[ScheduleEntry] `gorm:"column:student_schedule;type:jsonb" json:"student_schedule"`

	StudentTheme string `gorm:"column:student_theme;type:varchar(10);not null;default:light" json:"student_theme"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;type:timestamptz;not null;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;type:timestamptz;not null;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"-"`
}

func (StudentModel) TableName() string { return "students" }

// HasScheduleEntry reports whether an identical {day, time} entry already
// exists; the mirror write must not duplicate schedule slots.
func (m *StudentModel) HasScheduleEntry(day, timeStr string) bool {
	for _, e := range m.StudentSchedule {
		if e.Day == day && e.Time == timeStr {
			return true
		}
	}
	return false
}
