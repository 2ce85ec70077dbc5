// internals/features/school/announcements/dto/announcement_dto.go
package dto

import (
	"musicschool_backend/internals/features/school/announcements/model"
)

/* ===================== REQUESTS ===================== */

type CreateAnnouncementRequest struct {
	AnnouncementTitle   string `json:"announcement_title" validate:"required,min=2,max=160"`
	AnnouncementContent string `json:"announcement_content" validate:"required"`
}

// ToModel stamps type, author, and the (optional) course scope; these never
// come from the request body.
func (r CreateAnnouncementRequest) ToModel(announcementType, postedBy string, courseCode *string) *model.AnnouncementModel {
	return &model.AnnouncementModel{
		AnnouncementTitle:      r.AnnouncementTitle,
		AnnouncementContent:    r.AnnouncementContent,
		AnnouncementType:       announcementType,
		AnnouncementCourseCode: courseCode,
		AnnouncementPostedBy:   postedBy,
	}
}

type UpdateAnnouncementRequest struct {
	AnnouncementTitle   *string `json:"announcement_title" validate:"omitempty,min=2,max=160"`
	AnnouncementContent *string `json:"announcement_content" validate:"omitempty"`
}

func (r UpdateAnnouncementRequest) ApplyToModel(m *model.AnnouncementModel) {
	if r.AnnouncementTitle != nil {
		m.AnnouncementTitle = *r.AnnouncementTitle
	}
	if r.AnnouncementContent != nil {
		m.AnnouncementContent = *r.AnnouncementContent
	}
}
