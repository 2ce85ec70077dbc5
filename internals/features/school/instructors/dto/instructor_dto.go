// internals/features/school/instructors/dto/instructor_dto.go
package dto

import (
	"github.com/lib/pq"

	"musicschool_backend/internals/features/school/instructors/model"
)

/* ===================== REQUESTS ===================== */

type CreateInstructorRequest struct {
	InstructorName        string   `json:"instructor_name" validate:"required,min=2,max=100"`
	InstructorEmail       string   `json:"instructor_email" validate:"required,email"`
	InstructorContact     string   `json:"instructor_contact" validate:"required,min=5,max=30"`
	InstructorInstruments []string `json:"instructor_instruments" validate:"required,min=1,dive,required"`
}

func (r CreateInstructorRequest) ToModel(instructorCode string) *model.InstructorModel {
	return &model.InstructorModel{
		InstructorCode:        instructorCode,
		InstructorName:        r.InstructorName,
		InstructorEmail:       r.InstructorEmail,
		InstructorContact:     r.InstructorContact,
		InstructorInstruments: pq.StringArray(r.InstructorInstruments),
	}
}

type UpdateInstructorRequest struct {
	InstructorName        *string  `json:"instructor_name" validate:"omitempty,min=2,max=100"`
	InstructorEmail       *string  `json:"instructor_email" validate:"omitempty,email"`
	InstructorContact     *string  `json:"instructor_contact" validate:"omitempty,min=5,max=30"`
	InstructorInstruments []string `json:"instructor_instruments" validate:"omitempty,min=1,dive,required"`
}

func (r UpdateInstructorRequest) ApplyToModel(m *model.InstructorModel) {
	if r.InstructorName != nil {
		m.InstructorName = *r.InstructorName
	}
	if r.InstructorEmail != nil {
		m.InstructorEmail = *r.InstructorEmail
	}
	if r.InstructorContact != nil {
		m.InstructorContact = *r.InstructorContact
	}
	if r.InstructorInstruments != nil {
		m.InstructorInstruments = pq.StringArray(r.InstructorInstruments)
	}
}

/* ===================== RESPONSES ===================== */

// InstructorNameResponse is the minimal lookup used when composing
// course forms on the client.
type InstructorNameResponse struct {
	InstructorCode string `json:"instructor_code"`
	InstructorName string `json:"instructor_name"`
}
