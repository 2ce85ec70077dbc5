// internals/features/school/courses/service/clock_test.go
package service

import "testing"

func TestFormatTimeTo12Hour(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"00:00", "12:00AM"},
		{"00:30", "12:30AM"},
		{"01:05", "1:05AM"},
		{"09:00", "9:00AM"},
		{"11:59", "11:59AM"},
		{"12:00", "12:00PM"},
		{"12:45", "12:45PM"},
		{"13:05", "1:05PM"},
		{"14:30", "2:30PM"},
		{"23:59", "11:59PM"},
		{" 14:30 ", "2:30PM"},
	}
	for _, tt := range tests {
		got, err := FormatTimeTo12Hour(tt.in)
		if err != nil {
			t.Fatalf("FormatTimeTo12Hour(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("FormatTimeTo12Hour(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatTimeTo12HourInvalid(t *testing.T) {
	for _, in := range []string{"", "14", "24:00", "-1:00", "12:60", "12:5", "ab:cd", "12-30"} {
		if _, err := FormatTimeTo12Hour(in); err != ErrInvalidTime {
			t.Errorf("input %q: got err %v, want ErrInvalidTime", in, err)
		}
	}
}
