// internals/features/school/courses/service/clock.go
package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTime rejects anything that is not 24-hour "HH:MM".
var ErrInvalidTime = errors.New("invalid time, expected HH:MM")

// FormatTimeTo12Hour normalizes a 24-hour "HH:MM" wall time to the display
// form stored on sessions and schedules, e.g. "14:30" -> "2:30PM".
// Hours 0 and 12 both render as 12; AM/PM comes from the 24-hour value.
func FormatTimeTo12Hour(t string) (string, error) {
	parts := strings.SplitN(strings.TrimSpace(t), ":", 2)
	if len(parts) != 2 {
		return "", ErrInvalidTime
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", ErrInvalidTime
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 || minute < 0 || minute > 59 {
		return "", ErrInvalidTime
	}

	hour12 := ((hour + 11) % 12) + 1
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	return fmt.Sprintf("%d:%s%s", hour12, parts[1], ampm), nil
}
