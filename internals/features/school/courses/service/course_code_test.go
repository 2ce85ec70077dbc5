// internals/features/school/courses/service/course_code_test.go
package service

import "testing"

func TestBuildCourseCode(t *testing.T) {
	tests := []struct {
		name           string
		instrument     string
		day            string
		instructorCode string
		want           string
	}{
		{"saxophone gets short prefix", "Saxophone", "Monday", "0007", "Sax107"},
		{"violin keeps its name", "Violin", "Wednesday", "0012", "Violin312"},
		{"viola collapses to violin", "Viola", "Wednesday", "0012", "Violin312"},
		{"cello collapses to violin", "Cello", "Friday", "0003", "Violin503"},
		{"strings collapses to violin", "Strings", "Tuesday", "0021", "Violin221"},
		{"unknown instrument used verbatim", "Piano", "Saturday", "0042", "Piano642"},
		{"short instructor code kept whole", "Piano", "Monday", "9", "Piano19"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildCourseCode(tt.instrument, tt.day, tt.instructorCode)
			if err != nil {
				t.Fatalf("BuildCourseCode() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("BuildCourseCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildCourseCodeRejectsBadDays(t *testing.T) {
	for _, day := range []string{"Sunday", "monday", "Someday", ""} {
		if _, err := BuildCourseCode("Piano", day, "0001"); err != ErrInvalidDay {
			t.Errorf("day %q: got err %v, want ErrInvalidDay", day, err)
		}
	}
}

func TestBuildCourseCodeDeterministic(t *testing.T) {
	first, err := BuildCourseCode("Saxophone", "Monday", "0007")
	if err != nil {
		t.Fatal(err)
	}
	second, err := BuildCourseCode("Saxophone", "Monday", "0007")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("same inputs produced %q and %q", first, second)
	}
}

func TestDayNumber(t *testing.T) {
	tests := []struct {
		day  string
		want int
	}{
		{"Monday", 1},
		{"Tuesday", 2},
		{"Wednesday", 3},
		{"Thursday", 4},
		{"Friday", 5},
		{"Saturday", 6},
	}
	for _, tt := range tests {
		got, err := DayNumber(tt.day)
		if err != nil {
			t.Fatalf("DayNumber(%q) error = %v", tt.day, err)
		}
		if got != tt.want {
			t.Errorf("DayNumber(%q) = %d, want %d", tt.day, got, tt.want)
		}
	}
	if _, err := DayNumber("Sunday"); err == nil {
		t.Error("DayNumber(Sunday) should fail")
	}
}
