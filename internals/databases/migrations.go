// internals/databases/migrations.go
package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	announcementModel "musicschool_backend/internals/features/school/announcements/model"
	commentModel "musicschool_backend/internals/features/school/comments/model"
	courseModel "musicschool_backend/internals/features/school/courses/model"
	feedbackModel "musicschool_backend/internals/features/school/feedbacks/model"
	instructorModel "musicschool_backend/internals/features/school/instructors/model"
	studentModel "musicschool_backend/internals/features/school/students/model"
	adminModel "musicschool_backend/internals/features/users/admins/model"
	authModel "musicschool_backend/internals/features/users/auth/model"
	helper "musicschool_backend/internals/helpers"
)

// MigrateAll creates or updates every table, then seeds the sequence
// counters from whatever codes already exist so new codes never collide
// with old ones.
func MigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&studentModel.StudentModel{},
		&instructorModel.InstructorModel{},
		&adminModel.AdminModel{},
		&courseModel.CourseModel{},
		&announcementModel.AnnouncementModel{},
		&commentModel.CommentModel{},
		&feedbackModel.FeedbackModel{},
		&helper.SequenceCounter{},
		&authModel.TokenBlacklist{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	// Databases migrated before the partial index still carry the full
	// unique index, which would also cover soft-deleted rows.
	if err := db.Exec("DROP INDEX IF EXISTS idx_courses_course_code").Error; err != nil {
		return fmt.Errorf("drop stale course code index: %w", err)
	}

	if err := seedCounters(db); err != nil {
		return fmt.Errorf("seed counters: %w", err)
	}

	log.Println("[INFO] Database migration completed")
	return nil
}

func seedCounters(db *gorm.DB) error {
	seeds := []struct {
		key    string
		table  string
		column string
	}{
		{helper.SeqStudents, "students", "student_code"},
		{helper.SeqInstructors, "instructors", "instructor_code"},
	}
	for _, s := range seeds {
		var floor int64
		query := fmt.Sprintf(
			"SELECT COALESCE(MAX(%s::int), 0) FROM %s WHERE %s ~ '^[0-9]+$'",
			s.column, s.table, s.column,
		)
		if err := db.Raw(query).Scan(&floor).Error; err != nil {
			return err
		}
		if err := helper.SeedSequenceCounter(db, s.key, floor); err != nil {
			return err
		}
	}
	return nil
}
