// internals/features/school/students/dto/student_dto.go
package dto

import (
	"strings"

	model "musicschool_backend/internals/features/school/students/model"
)

/* ===================== REQUESTS ===================== */

// Create: student_code is issued by the sequence generator, never accepted
// from the client.
type CreateStudentRequest struct {
	StudentName       string                `json:"student_name" validate:"required,min=2,max=120"`
	StudentEmail      string                `json:"student_email" validate:"omitempty,email"`
	StudentContact    string                `json:"student_contact" validate:"omitempty,max=40"`
	StudentInstrument string                `json:"student_instrument" validate:"omitempty,max=60"`
	StudentSchedule   []model.ScheduleEntry `json:"student_schedule" validate:"omitempty,dive"`
}

func (r CreateStudentRequest) ToModel(studentCode string) *model.StudentModel {
	return &model.StudentModel{
		StudentCode:       studentCode,
		StudentName:       strings.TrimSpace(r.StudentName),
		StudentEmail:      strings.TrimSpace(r.StudentEmail),
		StudentContact:    strings.TrimSpace(r.StudentContact),
		StudentInstrument: strings.TrimSpace(r.StudentInstrument),
		StudentSchedule:   r.StudentSchedule,
	}
}

// Update: all optional (partial update). The schedule is owned by the
// assignment engine and is not writable here.
type UpdateStudentRequest struct {
	StudentName       *string `json:"student_name" validate:"omitempty,min=2,max=120"`
	StudentEmail      *string `json:"student_email" validate:"omitempty,email"`
	StudentContact    *string `json:"student_contact" validate:"omitempty,max=40"`
	StudentInstrument *string `json:"student_instrument" validate:"omitempty,max=60"`
}

func (r *UpdateStudentRequest) ApplyToModel(m *model.StudentModel) {
	if r.StudentName != nil {
		m.StudentName = strings.TrimSpace(*r.StudentName)
	}
	if r.StudentEmail != nil {
		m.StudentEmail = strings.TrimSpace(*r.StudentEmail)
	}
	if r.StudentContact != nil {
		m.StudentContact = strings.TrimSpace(*r.StudentContact)
	}
	if r.StudentInstrument != nil {
		m.StudentInstrument = strings.TrimSpace(*r.StudentInstrument)
	}
}

/* ===================== RESPONSES ===================== */

// EnrolledCourseResponse is one row of a student's course list, joined with
// instructor detail and the student's own slot time.
type EnrolledCourseResponse struct {
	CourseCode      string `json:"course_code"`
	Instrument      string `json:"instrument"`
	Day             string `json:"day"`
	Time            string `json:"time"`
	InstructorName  string `json:"instructor_name"`
	InstructorEmail string `json:"instructor_email,omitempty"`
	InstructorContact string `json:"instructor_contact,omitempty"`
}
