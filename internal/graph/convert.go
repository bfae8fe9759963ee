package graph

import (
	"time"

	"github.com/rpggio/busybee/internal/domain/project"
	"github.com/rpggio/busybee/internal/domain/task"
)

func projectMap(p project.Project) map[string]any {
	return map[string]any{
		"id":        p.ID,
		"name":      p.Name,
		"color":     p.Color,
		"icon":      nullableString(p.Icon),
		"userId":    p.UserID,
		"createdAt": p.CreatedAt,
		"updatedAt": p.UpdatedAt,
	}
}

func projectList(projects []project.Project) []any {
	out := make([]any, 0, len(projects))
	for _, p := range projects {
		out = append(out, projectMap(p))
	}
	return out
}

func taskMap(t task.Task) map[string]any {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	var dueDate any
	if t.DueDate != nil {
		dueDate = *t.DueDate
	}
	return map[string]any{
		"id":          t.ID,
		"title":       t.Title,
		"description": nullableString(t.Description),
		"priority":    string(t.Priority),
		"dueDate":     dueDate,
		"tags":        tags,
		"completed":   t.Completed,
		"projectId":   t.ProjectID,
		"userId":      t.UserID,
		"createdAt":   t.CreatedAt,
		"updatedAt":   t.UpdatedAt,
	}
}

func taskList(tasks []task.Task) []any {
	out := make([]any, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskMap(t))
	}
	return out
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

func optionalStringArg(args map[string]any, key string) *string {
	s, ok := args[key].(string)
	if !ok {
		return nil
	}
	return &s
}

func boolArg(args map[string]any, key string) bool {
	b, _ := args[key].(bool)
	return b
}

func timeArg(args map[string]any, key string) *time.Time {
	switch v := args[key].(type) {
	case time.Time:
		return &v
	case *time.Time:
		return v
	}
	return nil
}

// stringsArg returns nil when the list is absent and a non-nil slice otherwise.
func stringsArg(args map[string]any, key string) []string {
	raw, ok := args[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
