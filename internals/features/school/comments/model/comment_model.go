// internals/features/school/comments/model/comment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// CommentModel is an instructor's (or admin's) note on one student within a
// course. Names are snapshots taken at write time.
type CommentModel struct {
	CommentID uuid.UUID `gorm:"column:comment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"comment_id"`

	CommentCourseCode     string `gorm:"column:comment_course_code;type:varchar(40);not null;index" json:"comment_course_code"`
	CommentStudentCode    string `gorm:"column:comment_student_code;type:varchar(8);not null;index" json:"comment_student_code"`
	CommentStudentName    string `gorm:"column:comment_student_name;type:varchar(120)" json:"comment_student_name"`
	CommentInstructorCode string `gorm:"column:comment_instructor_code;type:varchar(60);not null" json:"comment_instructor_code"`
	CommentInstructorName string `gorm:"column:comment_instructor_name;type:varchar(120)" json:"comment_instructor_name"`
	CommentText           string `gorm:"column:comment_text;type:text;not null" json:"comment_text"`

	CommentCreatedAt time.Time `gorm:"column:comment_created_at;type:timestamptz;not null;autoCreateTime" json:"comment_created_at"`
}

func (CommentModel) TableName() string { return "comments" }
