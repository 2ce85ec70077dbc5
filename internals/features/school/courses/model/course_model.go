// internals/features/school/courses/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CourseSession is one student's enrollment slot in a course. Sessions have
// no lifecycle of their own; they exist only inside the course row.
type CourseSession struct {
	StudentCode string `json:"student_code"`
	StudentName string `json:"student_name"`
	Time        string `json:"time"`
}

type CourseModel struct {
	CourseID uuid.UUID `gorm:"column:course_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"course_id"`

	// Derived key: prefix(instrument) + dayNumber + last2(instructorCode).
	// Uniqueness only applies to live rows so a deleted course's code can
	// be reused when the course is created again.
	CourseCode string `gorm:"column:course_code;type:varchar(40);not null;index:uq_courses_course_code,unique,where:course_deleted_at IS NULL" json:"course_code"`

	CourseInstrument     string `gorm:"column:course_instrument;type:varchar(60);not null" json:"course_instrument"`
	CourseInstructorCode string `gorm:"column:course_instructor_code;type:varchar(8);not null;index" json:"course_instructor_code"`
	CourseInstructorName string `gorm:"column:course_instructor_name;type:varchar(120)" json:"course_instructor_name"`
	CourseDay            string `gorm:"column:course_day;type:varchar(10);not null" json:"course_day"`

	CourseSessions datatypes.JSONSlice[CourseSession] `gorm:"column:course_sessions;type:jsonb" json:"course_sessions"`

	CourseCreatedAt time.Time      `gorm:"column:course_created_at;type:timestamptz;not null;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt time.Time      `gorm:"column:course_updated_at;type:timestamptz;not null;autoUpdateTime" json:"course_updated_at"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;index" json:"-"`
}

func (CourseModel) TableName() string { return "courses" }

// HasSession reports whether the student already holds a session. A course
// carries at most one session per student code.
func (m *CourseModel) HasSession(studentCode string) bool {
	for _, s := range m.CourseSessions {
		if s.StudentCode == studentCode {
			return true
		}
	}
	return false
}
