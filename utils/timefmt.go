package utils

import (
	"fmt"
	"time"
)

// NormalizeSessionTime canonicalizes a wall-clock time string to "HH:MM",
// truncating seconds if present. Stored slot times use the same form, so
// matching is a plain string comparison.
func NormalizeSessionTime(raw string) (string, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("15:04"), nil
		}
	}
	return "", fmt.Errorf("invalid time value %q", raw)
}

// ValidSessionDate reports whether the value is a "YYYY-MM-DD" calendar date.
func ValidSessionDate(raw string) bool {
	_, err := time.Parse("2006-01-02", raw)
	return err == nil
}
