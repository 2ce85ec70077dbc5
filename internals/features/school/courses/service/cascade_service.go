// internals/features/school/courses/service/cascade_service.go
package service

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	annModel "musicschool_backend/internals/features/school/announcements/model"
	commentModel "musicschool_backend/internals/features/school/comments/model"
	courseModel "musicschool_backend/internals/features/school/courses/model"
	studentModel "musicschool_backend/internals/features/school/students/model"
)

// DeleteStudentCascade removes the student and pulls every session of theirs
// out of every course, in one transaction. Other students' sessions are
// untouched. Returns the deleted student and the number of courses changed.
func DeleteStudentCascade(db *gorm.DB, studentCode string) (*studentModel.StudentModel, int, error) {
	var deleted studentModel.StudentModel
	changed := 0

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_code = ?", studentCode).First(&deleted).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStudentNotFound
			}
			return err
		}
		if err := tx.Delete(&deleted).Error; err != nil {
			return err
		}

		var courses []courseModel.CourseModel
		if err := tx.
			Where("course_sessions @> ?", fmt.Sprintf(`[{"student_code":%q}]`, studentCode)).
			Find(&courses).Error; err != nil {
			return err
		}

		for i := range courses {
			kept := courses[i].CourseSessions[:0:0]
			for _, s := range courses[i].CourseSessions {
				if s.StudentCode != studentCode {
					kept = append(kept, s)
				}
			}
			if len(kept) == len(courses[i].CourseSessions) {
				continue
			}
			if err := tx.Model(&courses[i]).
				Update("course_sessions", kept).Error; err != nil {
				return err
			}
			changed++
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return &deleted, changed, nil
}

// DeleteCourseCascade removes a course together with everything hanging off
// it: mirrored schedule entries on enrolled students, course-scoped
// announcements, and course-scoped comments. One transaction.
func DeleteCourseCascade(db *gorm.DB, courseCode string) (*courseModel.CourseModel, error) {
	var deleted courseModel.CourseModel

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_code = ?", courseCode).First(&deleted).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCourseNotFound
			}
			return err
		}
		if err := tx.Delete(&deleted).Error; err != nil {
			return err
		}

		for _, session := range deleted.CourseSessions {
			var student studentModel.StudentModel
			if err := tx.Where("student_code = ?", session.StudentCode).First(&student).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}
			kept := student.StudentSchedule[:0:0]
			for _, e := range student.StudentSchedule {
				if e.CourseCode == courseCode {
					continue
				}
				// Legacy entries predate course_code backfill; match on slot.
				if e.CourseCode == "" && e.Day == deleted.CourseDay && e.Time == session.Time {
					continue
				}
				kept = append(kept, e)
			}
			if len(kept) == len(student.StudentSchedule) {
				continue
			}
			if err := tx.Model(&student).
				Update("student_schedule", kept).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("announcement_course_code = ?", courseCode).
			Delete(&annModel.AnnouncementModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("comment_course_code = ?", courseCode).
			Delete(&commentModel.CommentModel{}).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}

// RekeyCourseCascade moves every reference from oldCode to newCode when an
// update regenerates a course code: course-scoped announcements, course-scoped
// comments, and the mirrored entries on enrolled students' schedules. Runs on
// the caller's transaction so the course row and its references re-key
// together.
func RekeyCourseCascade(tx *gorm.DB, oldCode, newCode string) error {
	if oldCode == newCode {
		return nil
	}

	if err := tx.Model(&annModel.AnnouncementModel{}).
		Where("announcement_course_code = ?", oldCode).
		Update("announcement_course_code", newCode).Error; err != nil {
		return err
	}
	if err := tx.Model(&commentModel.CommentModel{}).
		Where("comment_course_code = ?", oldCode).
		Update("comment_course_code", newCode).Error; err != nil {
		return err
	}

	var students []studentModel.StudentModel
	if err := tx.
		Where("student_schedule @> ?", fmt.Sprintf(`[{"course_code":%q}]`, oldCode)).
		Find(&students).Error; err != nil {
		return err
	}
	for i := range students {
		rekeyed, changed := rekeyScheduleEntries(students[i].StudentSchedule, oldCode, newCode)
		if !changed {
			continue
		}
		if err := tx.Model(&students[i]).
			Update("student_schedule", rekeyed).Error; err != nil {
			return err
		}
	}
	return nil
}

func rekeyScheduleEntries(entries datatypes.JSONSlice[studentModel.ScheduleEntry], oldCode, newCode string) (datatypes.JSONSlice[studentModel.ScheduleEntry], bool) {
	changed := false
	out := make(datatypes.JSONSlice[studentModel.ScheduleEntry], len(entries))
	for i, e := range entries {
		if e.CourseCode == oldCode {
			e.CourseCode = newCode
			changed = true
		}
		out[i] = e
	}
	return out, changed
}

// ScheduleRepair reports one backfilled schedule entry.
type ScheduleRepair struct {
	StudentCode string `json:"student_code"`
	Day         string `json:"day"`
	Time        string `json:"time"`
	CourseCode  string `json:"course_code"`
}

// RepairSchedules backfills missing course codes on student schedule entries
// by locating the course whose day matches and whose sessions contain the
// student. Entries with no matching course are left as they are.
func RepairSchedules(db *gorm.DB) ([]ScheduleRepair, error) {
	var students []studentModel.StudentModel
	if err := db.Find(&students).Error; err != nil {
		return nil, err
	}

	repairs := []ScheduleRepair{}
	for i := range students {
		student := &students[i]
		dirty := false

		for j, entry := range student.StudentSchedule {
			if entry.CourseCode != "" {
				continue
			}
			var course courseModel.CourseModel
			err := db.
				Where("course_day = ? AND course_sessions @> ?",
					entry.Day, fmt.Sprintf(`[{"student_code":%q}]`, student.StudentCode)).
				First(&course).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					log.Printf("[WARNING] no course matches schedule entry %s %s for student %s",
						entry.Day, entry.Time, student.StudentCode)
					continue
				}
				return repairs, err
			}

			student.StudentSchedule[j].CourseCode = course.CourseCode
			dirty = true
			repairs = append(repairs, ScheduleRepair{
				StudentCode: student.StudentCode,
				Day:         entry.Day,
				Time:        entry.Time,
				CourseCode:  course.CourseCode,
			})
		}

		if dirty {
			if err := db.Model(student).
				Update("student_schedule", student.StudentSchedule).Error; err != nil {
				return repairs, err
			}
		}
	}
	return repairs, nil
}
