package board

import (
	"sort"
	"time"

	"github.com/rpggio/busybee/internal/domain/task"
)

// Stats are aggregate counts over the full task list.
type Stats struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	Completed    int `json:"completed"`
	Today        int `json:"today"`
	Overdue      int `json:"overdue"`
	Upcoming     int `json:"upcoming"`
	HighPriority int `json:"highPriority"`
}

// ComputeStats counts tasks. Date counts include only incomplete tasks.
func ComputeStats(tasks []Task, now time.Time) Stats {
	stats := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			stats.Completed++
			continue
		}
		stats.Active++
		if t.Priority == task.PriorityHigh {
			stats.HighPriority++
		}
		switch Bucket(t, now) {
		case DateToday:
			stats.Today++
		case DateOverdue:
			stats.Overdue++
		case DateUpcoming:
			stats.Upcoming++
		}
	}
	return stats
}

// AllTags returns the distinct tags across tasks in lexicographic order.
func AllTags(tasks []Task) []string {
	seen := make(map[string]struct{})
	tags := []string{}
	for _, t := range tasks {
		for _, tag := range t.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags
}
