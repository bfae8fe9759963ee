package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rpggio/busybee/internal/board"
	"github.com/rpggio/busybee/internal/client"
	"github.com/rpggio/busybee/internal/domain/task"
)

const shortIDLength = 8

// ShortID abbreviates an ID for display.
func ShortID(id string) string {
	if len(id) <= shortIDLength {
		return id
	}
	return id[:shortIDLength]
}

// TaskList renders tasks one per line. Project names are resolved from projects.
func (s *Styles) TaskList(tasks []board.Task, projects []board.Project, now time.Time) string {
	if len(tasks) == 0 {
		return s.Muted.Render("No tasks found")
	}
	byID := make(map[string]board.Project, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
	}

	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		p, ok := byID[t.ProjectID]
		var project *board.Project
		if ok {
			project = &p
		}
		lines = append(lines, s.Task(t, project, now))
	}
	return strings.Join(lines, "\n")
}

// Task renders a single task line.
func (s *Styles) Task(t board.Task, project *board.Project, now time.Time) string {
	check := "[ ]"
	title := s.TaskTitle.Render(t.Title)
	if t.Completed {
		check = "[x]"
		title = s.TaskDone.Render(t.Title)
	}

	parts := []string{
		check,
		s.Muted.Render(ShortID(t.ID)),
		s.priority(t.Priority),
		title,
	}
	if due := s.due(t, now); due != "" {
		parts = append(parts, due)
	}
	for _, tag := range t.Tags {
		parts = append(parts, s.Tag.Render("#"+tag))
	}
	if project != nil {
		parts = append(parts, s.project(*project))
	}
	return strings.Join(parts, " ")
}

func (s *Styles) priority(p task.Priority) string {
	label := fmt.Sprintf("%-6s", p)
	switch p {
	case task.PriorityHigh:
		return s.PriorityHigh.Render(label)
	case task.PriorityMedium:
		return s.PriorityMedium.Render(label)
	default:
		return s.PriorityLow.Render(label)
	}
}

func (s *Styles) due(t board.Task, now time.Time) string {
	if t.DueDate == nil {
		return ""
	}
	text := "due " + board.FormatDueDate(t.DueDate, now.Location())
	if t.Completed {
		return s.Muted.Render(text)
	}
	switch board.Bucket(t, now) {
	case board.DateOverdue:
		return s.Overdue.Render(text + " (overdue)")
	case board.DateToday:
		return s.Today.Render(text + " (today)")
	default:
		return s.Upcoming.Render(text)
	}
}

func (s *Styles) project(p board.Project) string {
	label := p.Name
	if p.Icon != nil && *p.Icon != "" {
		label = *p.Icon + " " + p.Name
	}
	return s.r.NewStyle().Foreground(lipgloss.Color(p.Color)).Render(label)
}

// Projects renders the project list.
func (s *Styles) Projects(projects []board.Project) string {
	if len(projects) == 0 {
		return s.Muted.Render("No projects yet")
	}
	lines := make([]string, 0, len(projects))
	for _, p := range projects {
		lines = append(lines, s.Muted.Render(ShortID(p.ID))+" "+s.project(p)+" "+s.Muted.Render(p.Color))
	}
	return strings.Join(lines, "\n")
}

// Stats renders the summary counters in a box.
func (s *Styles) Stats(st board.Stats) string {
	row := func(label string, value int) string {
		return s.StatLabel.Render(fmt.Sprintf("%-14s", label)) + s.StatValue.Render(fmt.Sprint(value))
	}
	body := strings.Join([]string{
		s.Title.Render("Tasks"),
		row("Total", st.Total),
		row("Active", st.Active),
		row("Completed", st.Completed),
		row("Due today", st.Today),
		row("Overdue", st.Overdue),
		row("Upcoming", st.Upcoming),
		row("High priority", st.HighPriority),
	}, "\n")
	return s.Box.Render(body)
}

// Tags renders tags separated by spaces.
func (s *Styles) Tags(tags []string) string {
	if len(tags) == 0 {
		return s.Muted.Render("No tags")
	}
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, s.Tag.Render("#"+tag))
	}
	return strings.Join(out, " ")
}

// Toast renders a notification.
func (s *Styles) Toast(t client.Toast) string {
	switch t.Kind {
	case client.ToastSuccess:
		return s.Success.Render("✓ " + t.Message)
	case client.ToastError:
		return s.Error.Render("✗ " + t.Message)
	case client.ToastWarning:
		return s.Warning.Render("! " + t.Message)
	default:
		return s.Info.Render("i " + t.Message)
	}
}
