package board

import (
	"strings"
	"time"

	"github.com/rpggio/busybee/internal/domain/task"
)

// Status selects tasks by completion.
type Status string

const (
	StatusAll       Status = "all"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// DateBucket classifies a due date relative to the current day.
type DateBucket string

const (
	DateAll      DateBucket = "all"
	DateToday    DateBucket = "today"
	DateOverdue  DateBucket = "overdue"
	DateUpcoming DateBucket = "upcoming"
)

// All matches any priority or project.
const All = "all"

// Filters is the full set of list constraints. The zero value matches everything.
type Filters struct {
	Search   string
	Status   Status
	Priority string
	Project  string
	Date     DateBucket
}

// DefaultFilters returns filters that match every task.
func DefaultFilters() Filters {
	return Filters{Status: StatusAll, Priority: All, Project: All, Date: DateAll}
}

// Apply returns the tasks that satisfy every filter, preserving input order.
// Date buckets are evaluated against the calendar day of now in now's location.
func Apply(tasks []Task, f Filters, now time.Time) []Task {
	query := strings.ToLower(strings.TrimSpace(f.Search))
	today := startOfDay(now)

	result := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if query != "" && !matchesSearch(t, query) {
			continue
		}
		if !matchesStatus(t, f.Status) {
			continue
		}
		if f.Priority != "" && f.Priority != All && string(t.Priority) != f.Priority {
			continue
		}
		if f.Project != "" && f.Project != All && t.ProjectID != f.Project {
			continue
		}
		if !matchesDate(t, f.Date, today) {
			continue
		}
		result = append(result, t)
	}
	return result
}

func matchesSearch(t Task, query string) bool {
	if strings.Contains(strings.ToLower(t.Title), query) {
		return true
	}
	if t.Description != nil && strings.Contains(strings.ToLower(*t.Description), query) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func matchesStatus(t Task, s Status) bool {
	switch s {
	case StatusActive:
		return !t.Completed
	case StatusCompleted:
		return t.Completed
	default:
		return true
	}
}

func matchesDate(t Task, bucket DateBucket, today time.Time) bool {
	switch bucket {
	case DateToday:
		return t.DueDate != nil && dueDay(t, today).Equal(today)
	case DateOverdue:
		return t.DueDate != nil && !t.Completed && dueDay(t, today).Before(today)
	case DateUpcoming:
		return t.DueDate != nil && !dueDay(t, today).Before(today.AddDate(0, 0, 1))
	default:
		return true
	}
}

// Bucket reports which date bucket an incomplete task falls into, or DateAll
// when it has no due date.
func Bucket(t Task, now time.Time) DateBucket {
	if t.DueDate == nil {
		return DateAll
	}
	today := startOfDay(now)
	day := dueDay(t, today)
	switch {
	case day.Equal(today):
		return DateToday
	case day.Before(today):
		return DateOverdue
	default:
		return DateUpcoming
	}
}

func dueDay(t Task, today time.Time) time.Time {
	return startOfDay(t.DueDate.In(today.Location()))
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParsePriorityFilter accepts "all" or a priority name in any case.
func ParsePriorityFilter(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, All) {
		return All, true
	}
	p := task.Priority(strings.ToUpper(s))
	if !p.Valid() {
		return "", false
	}
	return string(p), true
}
