// internals/features/school/announcements/model/announcement_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeAdmin  = "admin"  // global announcement
	TypeCourse = "course" // scoped to one course
)

type AnnouncementModel struct {
	AnnouncementID uuid.UUID `gorm:"column:announcement_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"announcement_id"`

	AnnouncementTitle   string `gorm:"column:announcement_title;type:varchar(160);not null" json:"announcement_title"`
	AnnouncementContent string `gorm:"column:announcement_content;type:text;not null" json:"announcement_content"`
	AnnouncementType    string `gorm:"column:announcement_type;type:varchar(10);not null" json:"announcement_type"`

	// Set only for course-scoped announcements.
	AnnouncementCourseCode *string `gorm:"column:announcement_course_code;type:varchar(40);index" json:"announcement_course_code,omitempty"`

	// Business code or username of the author (instructor code / admin username).
	AnnouncementPostedBy string `gorm:"column:announcement_posted_by;type:varchar(60)" json:"announcement_posted_by"`

	AnnouncementCreatedAt time.Time `gorm:"column:announcement_created_at;type:timestamptz;not null;autoCreateTime" json:"announcement_created_at"`
	AnnouncementUpdatedAt time.Time `gorm:"column:announcement_updated_at;type:timestamptz;not null;autoUpdateTime" json:"announcement_updated_at"`
}

func (AnnouncementModel) TableName() string { return "announcements" }
