package board

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rpggio/busybee/internal/domain/task"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 11, 6, 15, 30, 0, 0, time.UTC)

func due(y int, m time.Month, d, hour int) *time.Time {
	t := time.Date(y, m, d, hour, 0, 0, 0, time.UTC)
	return &t
}

func strPtr(s string) *string { return &s }

func fixtures() []Task {
	return []Task{
		{ID: "overdue", Title: "Pay rent", Priority: task.PriorityHigh, DueDate: due(2025, 11, 5, 9), ProjectID: "home", Tags: []string{"bills"}},
		{ID: "overdue-done", Title: "File taxes", Priority: task.PriorityMedium, DueDate: due(2025, 11, 5, 9), Completed: true, ProjectID: "home", Tags: []string{}},
		{ID: "today", Title: "Work meeting", Priority: task.PriorityMedium, DueDate: due(2025, 11, 6, 23), ProjectID: "work", Tags: []string{"meetings"}},
		{ID: "today-done", Title: "Standup", Priority: task.PriorityLow, DueDate: due(2025, 11, 6, 1), Completed: true, ProjectID: "work", Tags: []string{}},
		{ID: "upcoming", Title: "Ship release", Description: strPtr("Cut the v2 tag"), Priority: task.PriorityHigh, DueDate: due(2025, 11, 7, 0), ProjectID: "work", Tags: []string{"Release"}},
		{ID: "nodue", Title: "Read book", Priority: task.PriorityLow, ProjectID: "home", Tags: []string{}},
	}
}

func ids(tasks []Task) []string {
	out := []string{}
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestApply_DefaultMatchesEverything(t *testing.T) {
	require.Equal(t, ids(fixtures()), ids(Apply(fixtures(), DefaultFilters(), now)))
	require.Equal(t, ids(fixtures()), ids(Apply(fixtures(), Filters{}, now)))
}

func TestApply_Search(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{query: "  WORK ", want: []string{"today"}},
		{query: "v2", want: []string{"upcoming"}},
		{query: "release", want: []string{"upcoming"}},
		{query: "BILL", want: []string{"overdue"}},
		{query: "zzz", want: []string{}},
		{query: "   ", want: ids(fixtures())},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			f := DefaultFilters()
			f.Search = tt.query
			require.Equal(t, tt.want, ids(Apply(fixtures(), f, now)))
		})
	}
}

func TestApply_StatusPriorityProject(t *testing.T) {
	f := DefaultFilters()
	f.Status = StatusActive
	require.Equal(t, []string{"overdue", "today", "upcoming", "nodue"}, ids(Apply(fixtures(), f, now)))

	f.Status = StatusCompleted
	require.Equal(t, []string{"overdue-done", "today-done"}, ids(Apply(fixtures(), f, now)))

	f = DefaultFilters()
	f.Priority = string(task.PriorityHigh)
	f.Project = "work"
	require.Equal(t, []string{"upcoming"}, ids(Apply(fixtures(), f, now)))
}

func TestApply_DateBuckets(t *testing.T) {
	tests := []struct {
		bucket DateBucket
		want   []string
	}{
		{bucket: DateToday, want: []string{"today", "today-done"}},
		{bucket: DateOverdue, want: []string{"overdue"}},
		{bucket: DateUpcoming, want: []string{"upcoming"}},
		{bucket: DateAll, want: ids(fixtures())},
	}
	for _, tt := range tests {
		t.Run(string(tt.bucket), func(t *testing.T) {
			f := DefaultFilters()
			f.Date = tt.bucket
			require.Equal(t, tt.want, ids(Apply(fixtures(), f, now)))
		})
	}
}

func TestApply_OverdueExample(t *testing.T) {
	overdue := Task{ID: "t", Title: "Late", Priority: task.PriorityLow, DueDate: due(2025, 11, 5, 12), Tags: []string{}}
	done := overdue
	done.Completed = true

	for _, bucket := range []DateBucket{DateOverdue, DateToday, DateUpcoming} {
		f := DefaultFilters()
		f.Date = bucket
		got := Apply([]Task{overdue}, f, now)
		if bucket == DateOverdue {
			require.Len(t, got, 1)
		} else {
			require.Empty(t, got)
		}
		require.Empty(t, Apply([]Task{done}, f, now), "completed task in %s", bucket)
	}
}

func TestApply_Idempotent(t *testing.T) {
	filterSets := []Filters{
		DefaultFilters(),
		{Search: "e", Status: StatusActive, Priority: All, Project: All, Date: DateAll},
		{Status: StatusAll, Priority: string(task.PriorityHigh), Project: "work", Date: DateUpcoming},
		{Search: "r", Status: StatusCompleted, Priority: All, Project: "home", Date: DateOverdue},
	}
	for _, f := range filterSets {
		once := Apply(fixtures(), f, now)
		twice := Apply(once, f, now)
		require.Equal(t, once, twice)
	}
}

func TestApply_UsesNowLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 2025-11-06 20:00 UTC is 2025-11-07 in Tokyo.
	tk := Task{ID: "t", DueDate: due(2025, 11, 6, 20), Tags: []string{}}
	f := DefaultFilters()
	f.Date = DateUpcoming
	require.Len(t, Apply([]Task{tk}, f, time.Date(2025, 11, 6, 10, 0, 0, 0, tokyo)), 1)
	require.Empty(t, Apply([]Task{tk}, f, now))
}

func TestParsePriorityFilter(t *testing.T) {
	p, ok := ParsePriorityFilter("high")
	require.True(t, ok)
	require.Equal(t, "HIGH", p)

	p, ok = ParsePriorityFilter("")
	require.True(t, ok)
	require.Equal(t, All, p)

	_, ok = ParsePriorityFilter("urgent")
	require.False(t, ok)
}

func TestUpdateTaskInputJSON(t *testing.T) {
	title := "Renamed"
	completed := true
	data, err := json.Marshal(UpdateTaskInput{ID: "t1", Title: &title, Completed: &completed, ClearDueDate: true, Tags: []string{}})
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"t1","title":"Renamed","completed":true,"clearDueDate":true,"tags":[]}`, string(data))

	data, err = json.Marshal(UpdateTaskInput{ID: "t1"})
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"t1"}`, string(data))
}
