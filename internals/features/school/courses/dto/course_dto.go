// internals/features/school/courses/dto/course_dto.go
package dto

import (
	"strings"

	model "musicschool_backend/internals/features/school/courses/model"
)

/* ===================== REQUESTS ===================== */

// Create: course_code is never accepted from the client, it is synthesized.
type CreateCourseRequest struct {
	CourseInstrument     string `json:"course_instrument" validate:"required,min=2,max=60"`
	CourseInstructorCode string `json:"course_instructor_code" validate:"required,min=2,max=8"`
	CourseInstructorName string `json:"course_instructor_name" validate:"required,min=2,max=120"`
	CourseDay            string `json:"course_day" validate:"required"`
}

func (r CreateCourseRequest) ToModel(courseCode string) *model.CourseModel {
	return &model.CourseModel{
		CourseCode:           courseCode,
		CourseInstrument:     strings.TrimSpace(r.CourseInstrument),
		CourseInstructorCode: strings.TrimSpace(r.CourseInstructorCode),
		CourseInstructorName: strings.TrimSpace(r.CourseInstructorName),
		CourseDay:            r.CourseDay,
		CourseSessions:       nil,
	}
}

// Update: partial; changing instrument/day/instructor re-keys the course.
type UpdateCourseRequest struct {
	CourseInstrument     *string `json:"course_instrument" validate:"omitempty,min=2,max=60"`
	CourseInstructorCode *string `json:"course_instructor_code" validate:"omitempty,min=2,max=8"`
	CourseInstructorName *string `json:"course_instructor_name" validate:"omitempty,min=2,max=120"`
	CourseDay            *string `json:"course_day" validate:"omitempty"`
}

// ApplyToModel sets only the fields that were sent.
func (r *UpdateCourseRequest) ApplyToModel(m *model.CourseModel) {
	if r.CourseInstrument != nil {
		m.CourseInstrument = strings.TrimSpace(*r.CourseInstrument)
	}
	if r.CourseInstructorCode != nil {
		m.CourseInstructorCode = strings.TrimSpace(*r.CourseInstructorCode)
	}
	if r.CourseInstructorName != nil {
		m.CourseInstructorName = strings.TrimSpace(*r.CourseInstructorName)
	}
	if r.CourseDay != nil {
		m.CourseDay = *r.CourseDay
	}
}

// Single assignment (operation payload, not an entity).
type AssignStudentRequest struct {
	StudentCode    string `json:"student_code" validate:"required"`
	StudentName    string `json:"student_name" validate:"required"`
	Instrument     string `json:"instrument" validate:"required"`
	InstructorCode string `json:"instructor_code" validate:"required"`
	Day            string `json:"day" validate:"required"`
	Time           string `json:"time" validate:"required"`
}

type BulkAssignCourse struct {
	CourseCode string `json:"course_code" validate:"required"`
	Time       string `json:"time" validate:"required"`
}

type AssignStudentMultipleRequest struct {
	StudentCode string             `json:"student_code" validate:"required"`
	Courses     []BulkAssignCourse `json:"courses" validate:"required,min=1,dive"`
}

/* ===================== RESPONSES ===================== */

type SessionResponse struct {
	StudentCode string `json:"student_code"`
	StudentName string `json:"student_name"`
	Time        string `json:"time"`
}

type CourseDetailResponse struct {
	CourseCode       string            `json:"course_code"`
	Instrument       string            `json:"instrument"`
	InstructorCode   string            `json:"instructor_code"`
	InstructorName   string            `json:"instructor_name"`
	Day              string            `json:"day"`
	NumberOfStudents int               `json:"number_of_students"`
	Sessions         []SessionResponse `json:"sessions"`
}

func NewCourseDetailResponse(m *model.CourseModel) CourseDetailResponse {
	sessions := make([]SessionResponse, 0, len(m.CourseSessions))
	for _, s := range m.CourseSessions {
		sessions = append(sessions, SessionResponse{
			StudentCode: s.StudentCode,
			StudentName: s.StudentName,
			Time:        s.Time,
		})
	}
	return CourseDetailResponse{
		CourseCode:       m.CourseCode,
		Instrument:       m.CourseInstrument,
		InstructorCode:   m.CourseInstructorCode,
		InstructorName:   m.CourseInstructorName,
		Day:              m.CourseDay,
		NumberOfStudents: len(m.CourseSessions),
		Sessions:         sessions,
	}
}

func NewCourseDetailResponses(models []model.CourseModel) []CourseDetailResponse {
	out := make([]CourseDetailResponse, 0, len(models))
	for i := range models {
		out = append(out, NewCourseDetailResponse(&models[i]))
	}
	return out
}
