// internals/features/school/courses/model/course_model_test.go
package model

import (
	"sync"
	"testing"

	"gorm.io/gorm/schema"
)

func TestHasSession(t *testing.T) {
	course := CourseModel{
		CourseSessions: []CourseSession{
			{StudentCode: "0001", StudentName: "Ana", Time: "2:30PM"},
			{StudentCode: "0002", StudentName: "Ben", Time: "3:30PM"},
		},
	}
	if !course.HasSession("0001") {
		t.Error("expected session for 0001")
	}
	if !course.HasSession("0002") {
		t.Error("expected session for 0002")
	}
	if course.HasSession("0003") {
		t.Error("unexpected session for 0003")
	}

	var empty CourseModel
	if empty.HasSession("0001") {
		t.Error("empty course should have no sessions")
	}
}

// A deleted course keeps its row around as a tombstone, so the unique
// index on course_code has to skip deleted rows or re-creating the same
// course would fail.
func TestCourseCodeUniqueIndexIgnoresDeletedRows(t *testing.T) {
	s, err := schema.Parse(&CourseModel{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}

	idx, ok := s.ParseIndexes()["uq_courses_course_code"]
	if !ok {
		t.Fatal("missing index uq_courses_course_code")
	}
	if idx.Class != "UNIQUE" {
		t.Errorf("index class = %q, want UNIQUE", idx.Class)
	}
	if idx.Where != "course_deleted_at IS NULL" {
		t.Errorf("index where = %q, want course_deleted_at IS NULL", idx.Where)
	}
	if len(idx.Fields) != 1 || idx.Fields[0].DBName != "course_code" {
		t.Errorf("index fields = %+v, want course_code only", idx.Fields)
	}
}
