package diary

import "time"

const dateLayout = "2006-01-02"

// Today returns the current local date as YYYY-MM-DD.
func Today() string {
	return time.Now().Format(dateLayout)
}

// ValidDate reports whether s is a calendar-valid YYYY-MM-DD date.
// time.Parse normalizes out-of-range components (e.g. 2023-02-30 becomes
// 2023-03-02), so the round-trip comparison rejects them.
func ValidDate(s string) bool {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return false
	}
	return t.Format(dateLayout) == s
}
