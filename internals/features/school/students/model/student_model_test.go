// internals/features/school/students/model/student_model_test.go
package model

import "testing"

func TestHasScheduleEntry(t *testing.T) {
	student := StudentModel{
		StudentSchedule: []ScheduleEntry{
			{Day: "Monday", Time: "2:30PM", CourseCode: "Sax107"},
			{Day: "Friday", Time: "9:00AM"},
		},
	}

	tests := []struct {
		name string
		day  string
		time string
		want bool
	}{
		{"existing entry", "Monday", "2:30PM", true},
		{"entry without course code", "Friday", "9:00AM", true},
		{"same day different time", "Monday", "3:30PM", false},
		{"same time different day", "Tuesday", "2:30PM", false},
		{"nothing scheduled", "Sunday", "8:00AM", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := student.HasScheduleEntry(tt.day, tt.time); got != tt.want {
				t.Errorf("HasScheduleEntry(%q, %q) = %v, want %v", tt.day, tt.time, got, tt.want)
			}
		})
	}
}
