// internals/features/school/courses/service/assignment_service.go
package service

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	courseModel "musicschool_backend/internals/features/school/courses/model"
	studentModel "musicschool_backend/internals/features/school/students/model"
)

var (
	ErrMissingFields   = errors.New("missing required fields")
	ErrCourseNotFound  = errors.New("course not found")
	ErrStudentNotFound = errors.New("student not found")
	ErrAlreadyAssigned = errors.New("student is already assigned to this course")
)

// AssignInput is the single-assignment tuple: the course is located by
// (day, instrument, instructor code), never by course code.
type AssignInput struct {
	StudentCode    string
	StudentName    string
	Instrument     string
	InstructorCode string
	Day            string
	Time           string
}

// AssignStudent appends a session to the matching course and mirrors the
// slot into the student's schedule. Both writes run in one transaction so
// the session and its mirror commit or roll back together. A student with
// no record (legacy imports) still gets the session; only the mirror is
// skipped.
func AssignStudent(db *gorm.DB, in AssignInput) (*courseModel.CourseModel, error) {
	if strings.TrimSpace(in.StudentCode) == "" ||
		strings.TrimSpace(in.Instrument) == "" ||
		strings.TrimSpace(in.InstructorCode) == "" ||
		strings.TrimSpace(in.Day) == "" ||
		strings.TrimSpace(in.Time) == "" {
		return nil, ErrMissingFields
	}

	formatted, err := FormatTimeTo12Hour(in.Time)
	if err != nil {
		return nil, err
	}

	var out *courseModel.CourseModel
	err = db.Transaction(func(tx *gorm.DB) error {
		var course courseModel.CourseModel
		if err := tx.
			Where("course_day = ? AND course_instrument = ? AND course_instructor_code = ?",
				in.Day, in.Instrument, in.InstructorCode).
			First(&course).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCourseNotFound
			}
			return err
		}

		if course.HasSession(in.StudentCode) {
			return ErrAlreadyAssigned
		}

		course.CourseSessions = append(course.CourseSessions, courseModel.CourseSession{
			StudentCode: in.StudentCode,
			StudentName: in.StudentName,
			Time:        formatted,
		})
		if err := tx.Model(&course).
			Update("course_sessions", course.CourseSessions).Error; err != nil {
			return err
		}

		var student studentModel.StudentModel
		if err := tx.Where("student_code = ?", in.StudentCode).First(&student).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("[WARNING] no student record for %s, schedule mirror skipped", in.StudentCode)
				out = &course
				return nil
			}
			return err
		}

		if !student.HasScheduleEntry(in.Day, formatted) {
			student.StudentSchedule = append(student.StudentSchedule, studentModel.ScheduleEntry{
				Day:        in.Day,
				Time:       formatted,
				CourseCode: course.CourseCode,
			})
			if err := tx.Model(&student).
				Update("student_schedule", student.StudentSchedule).Error; err != nil {
				return err
			}
		}

		out = &course
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BulkAssignEntry targets a course directly by its code.
type BulkAssignEntry struct {
	CourseCode string
	Time       string
}

// AssignStudentToCourses is the bulk variant. Each entry runs the full
// single-assignment semantics (duplicate check, time normalization,
// schedule mirror) in its own transaction; courses updated before a failing
// entry stay updated and are part of the returned slice.
func AssignStudentToCourses(db *gorm.DB, studentCode string, entries []BulkAssignEntry) ([]courseModel.CourseModel, error) {
	var student studentModel.StudentModel
	if err := db.Where("student_code = ?", studentCode).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	updated := make([]courseModel.CourseModel, 0, len(entries))
	for _, entry := range entries {
		formatted, err := FormatTimeTo12Hour(entry.Time)
		if err != nil {
			return updated, fmt.Errorf("course %s: %w", entry.CourseCode, err)
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			var course courseModel.CourseModel
			if err := tx.Where("course_code = ?", entry.CourseCode).First(&course).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("course %s: %w", entry.CourseCode, ErrCourseNotFound)
				}
				return err
			}
			if course.HasSession(studentCode) {
				return fmt.Errorf("course %s: %w", entry.CourseCode, ErrAlreadyAssigned)
			}

			course.CourseSessions = append(course.CourseSessions, courseModel.CourseSession{
				StudentCode: student.StudentCode,
				StudentName: student.StudentName,
				Time:        formatted,
			})
			if err := tx.Model(&course).
				Update("course_sessions", course.CourseSessions).Error; err != nil {
				return err
			}

			if !student.HasScheduleEntry(course.CourseDay, formatted) {
				student.StudentSchedule = append(student.StudentSchedule, studentModel.ScheduleEntry{
					Day:        course.CourseDay,
					Time:       formatted,
					CourseCode: course.CourseCode,
				})
				if err := tx.Model(&student).
					Update("student_schedule", student.StudentSchedule).Error; err != nil {
					return err
				}
			}

			updated = append(updated, course)
			return nil
		})
		if err != nil {
			return updated, err
		}
	}
	return updated, nil
}
