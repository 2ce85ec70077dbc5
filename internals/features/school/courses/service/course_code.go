// internals/features/school/courses/service/course_code.go
package service

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDay rejects Sunday and anything that is not a teaching day.
var ErrInvalidDay = errors.New("invalid day provided")

// Teaching days. Sunday is deliberately absent: the school does not run
// Sunday courses and the code space reserves digit 7.
var dayNumbers = map[string]int{
	"Monday":    1,
	"Tuesday":   2,
	"Wednesday": 3,
	"Thursday":  4,
	"Friday":    5,
	"Saturday":  6,
}

// Related instruments collapse to a shared course-code prefix. Anything not
// listed uses its own name verbatim.
var instrumentPrefixes = map[string]string{
	"Saxophone": "Sax",
	"Violin":    "Violin",
	"Viola":     "Violin",
	"Cello":     "Violin",
	"Strings":   "Violin",
}

// DayNumber maps a weekday name to its code digit (Monday=1 .. Saturday=6).
func DayNumber(day string) (int, error) {
	n, ok := dayNumbers[day]
	if !ok {
		return 0, ErrInvalidDay
	}
	return n, nil
}

// InstrumentPrefix returns the course-code prefix for an instrument.
func InstrumentPrefix(instrument string) string {
	if p, ok := instrumentPrefixes[instrument]; ok {
		return p
	}
	return instrument
}

// BuildCourseCode derives the composite course key:
// prefix(instrument) + dayNumber(day) + last two characters of the
// instructor code. Pure and deterministic; uniqueness across courses is
// enforced by the callers' pre-check query, not here.
func BuildCourseCode(instrument, day, instructorCode string) (string, error) {
	dayNum, err := DayNumber(day)
	if err != nil {
		return "", err
	}
	suffix := instructorCode
	if len(suffix) > 2 {
		suffix = suffix[len(suffix)-2:]
	}
	return fmt.Sprintf("%s%d%s", InstrumentPrefix(strings.TrimSpace(instrument)), dayNum, suffix), nil
}
