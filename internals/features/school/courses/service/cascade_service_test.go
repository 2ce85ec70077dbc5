// internals/features/school/courses/service/cascade_service_test.go
package service

import (
	"testing"

	"gorm.io/datatypes"

	studentModel "musicschool_backend/internals/features/school/students/model"
)

func TestRekeyScheduleEntries(t *testing.T) {
	entries := datatypes.JSONSlice[studentModel.ScheduleEntry]{
		{Day: "Monday", Time: "2:30PM", CourseCode: "Piano101"},
		{Day: "Tuesday", Time: "4:30PM", CourseCode: "Guitar202"},
		{Day: "Friday", Time: "10:00AM", CourseCode: "Piano101"},
	}

	rekeyed, changed := rekeyScheduleEntries(entries, "Piano101", "Piano301")
	if !changed {
		t.Fatal("expected entries to change")
	}
	if rekeyed[0].CourseCode != "Piano301" || rekeyed[2].CourseCode != "Piano301" {
		t.Errorf("matching entries not re-keyed: %+v", rekeyed)
	}
	if rekeyed[1].CourseCode != "Guitar202" {
		t.Errorf("unrelated entry touched: %+v", rekeyed[1])
	}
	if rekeyed[0].Day != "Monday" || rekeyed[0].Time != "2:30PM" {
		t.Errorf("slot fields changed: %+v", rekeyed[0])
	}
	// The source slice stays as it was.
	if entries[0].CourseCode != "Piano101" {
		t.Errorf("input mutated: %+v", entries[0])
	}
}

func TestRekeyScheduleEntriesNoMatch(t *testing.T) {
	entries := datatypes.JSONSlice[studentModel.ScheduleEntry]{
		{Day: "Monday", Time: "2:30PM", CourseCode: "Guitar202"},
	}
	if _, changed := rekeyScheduleEntries(entries, "Piano101", "Piano301"); changed {
		t.Error("expected no change when no entry matches")
	}
}
