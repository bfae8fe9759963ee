package mcp

import (
	"time"

	"github.com/rpggio/busybee/internal/board"
	"github.com/rpggio/busybee/internal/domain/project"
	"github.com/rpggio/busybee/internal/domain/task"
)

type ListProjectsParams struct{}

type CreateProjectParams struct {
	Name  string `json:"name" jsonschema:"Project display name"`
	Color string `json:"color,omitempty" jsonschema:"Hex color such as #3B82F6 (default #3B82F6)"`
	Icon  string `json:"icon,omitempty" jsonschema:"Emoji icon (optional)"`
}

type IDParams struct {
	ID string `json:"id" jsonschema:"Entity ID"`
}

type ListTasksParams struct {
	Search    string `json:"search,omitempty" jsonschema:"Case-insensitive text matched against title, description and tags"`
	Status    string `json:"status,omitempty" jsonschema:"all, active or completed (default all)"`
	Priority  string `json:"priority,omitempty" jsonschema:"all, LOW, MEDIUM or HIGH (default all)"`
	ProjectID string `json:"project_id,omitempty" jsonschema:"Only tasks in this project"`
	Date      string `json:"date,omitempty" jsonschema:"all, today, overdue or upcoming (default all)"`
}

type SearchTasksParams struct {
	Title string `json:"title" jsonschema:"Substring of the task title, case-insensitive"`
}

type CreateTaskParams struct {
	Title       string   `json:"title" jsonschema:"Task title"`
	Description string   `json:"description,omitempty" jsonschema:"Longer description"`
	Priority    string   `json:"priority,omitempty" jsonschema:"LOW, MEDIUM or HIGH (default LOW)"`
	DueDate     string   `json:"due_date,omitempty" jsonschema:"YYYY-MM-DD or RFC 3339 timestamp"`
	Tags        []string `json:"tags,omitempty" jsonschema:"Free-form tags"`
	ProjectID   string   `json:"project_id" jsonschema:"Owning project ID"`
}

type UpdateTaskParams struct {
	ID               string   `json:"id" jsonschema:"Task ID"`
	Title            *string  `json:"title,omitempty" jsonschema:"New title"`
	Description      *string  `json:"description,omitempty" jsonschema:"New description"`
	ClearDescription bool     `json:"clear_description,omitempty" jsonschema:"Remove the description"`
	Priority         *string  `json:"priority,omitempty" jsonschema:"LOW, MEDIUM or HIGH"`
	DueDate          *string  `json:"due_date,omitempty" jsonschema:"YYYY-MM-DD or RFC 3339 timestamp"`
	ClearDueDate     bool     `json:"clear_due_date,omitempty" jsonschema:"Remove the due date"`
	Tags             []string `json:"tags,omitempty" jsonschema:"Replacement tag list"`
	ProjectID        *string  `json:"project_id,omitempty" jsonschema:"Move to this project"`
	Completed        *bool    `json:"completed,omitempty" jsonschema:"Completion status"`
}

type ProjectResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Icon      string `json:"icon,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type TaskResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Priority    string   `json:"priority"`
	DueDate     string   `json:"due_date,omitempty"`
	Tags        []string `json:"tags"`
	Completed   bool     `json:"completed"`
	ProjectID   string   `json:"project_id"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

type ProjectOutput struct {
	Project ProjectResponse `json:"project"`
}

type ProjectsOutput struct {
	Projects []ProjectResponse `json:"projects"`
}

type TaskOutput struct {
	Task TaskResponse `json:"task"`
}

type TasksOutput struct {
	Tasks []TaskResponse `json:"tasks"`
	Count int            `json:"count"`
}

type StatsOutput struct {
	Total        int      `json:"total"`
	Active       int      `json:"active"`
	Completed    int      `json:"completed"`
	Today        int      `json:"today"`
	Overdue      int      `json:"overdue"`
	Upcoming     int      `json:"upcoming"`
	HighPriority int      `json:"high_priority"`
	Tags         []string `json:"tags"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func toProjectResponse(p project.Project) ProjectResponse {
	resp := ProjectResponse{
		ID:        p.ID,
		Name:      p.Name,
		Color:     p.Color,
		CreatedAt: formatTime(p.CreatedAt),
		UpdatedAt: formatTime(p.UpdatedAt),
	}
	if p.Icon != nil {
		resp.Icon = *p.Icon
	}
	return resp
}

func toTaskResponse(t task.Task) TaskResponse {
	resp := TaskResponse{
		ID:        t.ID,
		Title:     t.Title,
		Priority:  string(t.Priority),
		Tags:      t.Tags,
		Completed: t.Completed,
		ProjectID: t.ProjectID,
		CreatedAt: formatTime(t.CreatedAt),
		UpdatedAt: formatTime(t.UpdatedAt),
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if t.Description != nil {
		resp.Description = *t.Description
	}
	if t.DueDate != nil {
		resp.DueDate = formatTime(*t.DueDate)
	}
	return resp
}

func toTasksOutput(tasks []board.Task) TasksOutput {
	out := TasksOutput{Tasks: make([]TaskResponse, 0, len(tasks)), Count: len(tasks)}
	for _, t := range tasks {
		out.Tasks = append(out.Tasks, toTaskResponse(task.Task{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Priority:    t.Priority,
			DueDate:     t.DueDate,
			Tags:        t.Tags,
			Completed:   t.Completed,
			ProjectID:   t.ProjectID,
			CreatedAt:   t.CreatedAt,
			UpdatedAt:   t.UpdatedAt,
		}))
	}
	return out
}
