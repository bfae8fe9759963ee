package board

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format accepted for due dates.
const DateLayout = "2006-01-02"

// ParseDueDate accepts a calendar date (midnight in loc) or an RFC 3339
// timestamp. An empty string yields nil.
func ParseDueDate(s string, loc *time.Location) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC 3339", s)
	}
	return &t, nil
}

// FormatDueDate renders a due date as a calendar date in loc, or "" when nil.
func FormatDueDate(t *time.Time, loc *time.Location) string {
	if t == nil {
		return ""
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DateLayout)
}
