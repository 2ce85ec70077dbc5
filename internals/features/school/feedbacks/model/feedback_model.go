// internals/features/school/feedbacks/model/feedback_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FeedbackReply is one entry in the ordered reply thread under a feedback.
type FeedbackReply struct {
	UserCode  string    `json:"user_code"`
	UserName  string    `json:"user_name"`
	Role      string    `json:"role"` // admin | student
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type FeedbackModel struct {
	FeedbackID uuid.UUID `gorm:"column:feedback_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"feedback_id"`

	FeedbackStudentCode string `gorm:"column:feedback_student_code;type:varchar(8);not null;index" json:"feedback_student_code"`
	FeedbackStudentName string `gorm:"column:feedback_student_name;type:varchar(120)" json:"feedback_student_name"`
	FeedbackMessage     string `gorm:"column:feedback_message;type:text;not null" json:"feedback_message"`

	FeedbackReplies datatypes.JSONSlice[FeedbackReply] `gorm:"column:feedback_replies;type:jsonb" json:"feedback_replies"`

	FeedbackCreatedAt time.Time `gorm:"column:feedback_created_at;type:timestamptz;not null;autoCreateTime" json:"feedback_created_at"`
}

func (FeedbackModel) TableName() string { return "feedbacks" }
