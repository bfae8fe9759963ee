// Package board holds the client-side view of tasks and projects and the pure
// functions that derive filtered lists and statistics from them.
package board

import (
	"encoding/json"
	"time"

	"github.com/rpggio/busybee/internal/domain/task"
)

// Task is a task as seen by API clients.
type Task struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description *string       `json:"description,omitempty"`
	Priority    task.Priority `json:"priority"`
	DueDate     *time.Time    `json:"dueDate,omitempty"`
	Tags        []string      `json:"tags"`
	Completed   bool          `json:"completed"`
	ProjectID   string        `json:"projectId"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// FromDomain converts a stored task into its client view.
func FromDomain(t task.Task) Task {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
		Tags:        tags,
		Completed:   t.Completed,
		ProjectID:   t.ProjectID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// FromDomainList converts stored tasks into client views.
func FromDomainList(tasks []task.Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, FromDomain(t))
	}
	return out
}

// Project is a project as seen by API clients.
type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Icon      *string   `json:"icon,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateTaskInput is the payload of the createTask mutation.
type CreateTaskInput struct {
	Title       string        `json:"title"`
	Description *string       `json:"description,omitempty"`
	Priority    task.Priority `json:"priority"`
	DueDate     *time.Time    `json:"dueDate,omitempty"`
	Tags        []string      `json:"tags,omitempty"`
	ProjectID   string        `json:"projectId"`
}

// UpdateTaskInput is the payload of the updateTask mutation. Nil fields are
// left unchanged on the server.
type UpdateTaskInput struct {
	ID          string
	Title       *string
	Description *string
	Priority    *task.Priority
	DueDate     *time.Time
	Tags        []string
	ProjectID   *string
	Completed   *bool

	// ClearDescription and ClearDueDate unset the field on the server.
	ClearDescription bool
	ClearDueDate     bool
}

// MarshalJSON emits only the supplied fields. A non-nil empty Tags slice is sent
// as [] so tags can be cleared.
func (in UpdateTaskInput) MarshalJSON() ([]byte, error) {
	out := map[string]any{"id": in.ID}
	if in.Title != nil {
		out["title"] = *in.Title
	}
	if in.ClearDescription {
		out["clearDescription"] = true
	} else if in.Description != nil {
		out["description"] = *in.Description
	}
	if in.Priority != nil {
		out["priority"] = *in.Priority
	}
	if in.ClearDueDate {
		out["clearDueDate"] = true
	} else if in.DueDate != nil {
		out["dueDate"] = in.DueDate.Format(time.RFC3339)
	}
	if in.Tags != nil {
		out["tags"] = in.Tags
	}
	if in.ProjectID != nil {
		out["projectId"] = *in.ProjectID
	}
	if in.Completed != nil {
		out["completed"] = *in.Completed
	}
	return json.Marshal(out)
}

// CreateProjectInput is the payload of the createProject mutation.
type CreateProjectInput struct {
	Name  string  `json:"name"`
	Color string  `json:"color"`
	Icon  *string `json:"icon,omitempty"`
}
