package mcp

import (
	"context"
	"strings"
	"time"

	"github.com/rpggio/busybee/internal/auth"
	"github.com/rpggio/busybee/internal/board"
	"github.com/rpggio/busybee/internal/domain/project"
	"github.com/rpggio/busybee/internal/domain/task"
	"github.com/rpggio/busybee/internal/domain/user"
)

// DefaultProjectColor is used when create_project omits a color.
const DefaultProjectColor = "#3B82F6"

// ProjectService defines project operations needed by MCP.
type ProjectService interface {
	List(ctx context.Context, userID string) ([]project.Project, error)
	Create(ctx context.Context, owner user.Profile, req project.CreateRequest) (*project.Project, error)
	Delete(ctx context.Context, id, userID string) (*project.Project, error)
}

// TaskService defines task operations needed by MCP.
type TaskService interface {
	List(ctx context.Context, userID string) ([]task.Task, error)
	Get(ctx context.Context, id, userID string) (*task.Task, error)
	SearchByTitle(ctx context.Context, query, userID string) ([]task.Task, error)
	Create(ctx context.Context, owner user.Profile, req task.CreateRequest) (*task.Task, error)
	Update(ctx context.Context, id string, req task.UpdateRequest, userID string) (*task.Task, error)
	Remove(ctx context.Context, id, userID string) (*task.Task, error)
}

// Handler implements the MCP tools against the domain services.
type Handler struct {
	projects ProjectService
	tasks    TaskService
	now      func() time.Time
}

// NewHandler creates a new MCP handler.
func NewHandler(projects ProjectService, tasks TaskService) *Handler {
	return &Handler{projects: projects, tasks: tasks, now: time.Now}
}

func (h *Handler) ListProjects(ctx context.Context, id auth.Identity) (ProjectsOutput, error) {
	projects, err := h.projects.List(ctx, id.UID)
	if err != nil {
		return ProjectsOutput{}, MapError(err)
	}
	out := ProjectsOutput{Projects: make([]ProjectResponse, 0, len(projects))}
	for _, p := range projects {
		out.Projects = append(out.Projects, toProjectResponse(p))
	}
	return out, nil
}

func (h *Handler) CreateProject(ctx context.Context, id auth.Identity, params CreateProjectParams) (ProjectOutput, error) {
	color := strings.TrimSpace(params.Color)
	if color == "" {
		color = DefaultProjectColor
	}
	var icon *string
	if params.Icon != "" {
		icon = &params.Icon
	}
	proj, err := h.projects.Create(ctx, id.Profile(), project.CreateRequest{
		Name:  strings.TrimSpace(params.Name),
		Color: color,
		Icon:  icon,
	})
	if err != nil {
		return ProjectOutput{}, MapError(err)
	}
	return ProjectOutput{Project: toProjectResponse(*proj)}, nil
}

func (h *Handler) DeleteProject(ctx context.Context, id auth.Identity, params IDParams) (ProjectOutput, error) {
	proj, err := h.projects.Delete(ctx, params.ID, id.UID)
	if err != nil {
		return ProjectOutput{}, MapError(err)
	}
	return ProjectOutput{Project: toProjectResponse(*proj)}, nil
}

// ListTasks returns the caller's tasks narrowed by the board filters.
func (h *Handler) ListTasks(ctx context.Context, id auth.Identity, params ListTasksParams) (TasksOutput, error) {
	filters, err := parseFilters(params)
	if err != nil {
		return TasksOutput{}, err
	}
	tasks, err := h.tasks.List(ctx, id.UID)
	if err != nil {
		return TasksOutput{}, MapError(err)
	}
	return toTasksOutput(board.Apply(board.FromDomainList(tasks), filters, h.now())), nil
}

func (h *Handler) GetTask(ctx context.Context, id auth.Identity, params IDParams) (TaskOutput, error) {
	t, err := h.tasks.Get(ctx, params.ID, id.UID)
	if err != nil {
		return TaskOutput{}, MapError(err)
	}
	return TaskOutput{Task: toTaskResponse(*t)}, nil
}

func (h *Handler) SearchTasks(ctx context.Context, id auth.Identity, params SearchTasksParams) (TasksOutput, error) {
	tasks, err := h.tasks.SearchByTitle(ctx, params.Title, id.UID)
	if err != nil {
		return TasksOutput{}, MapError(err)
	}
	return toTasksOutput(board.FromDomainList(tasks)), nil
}

func (h *Handler) CreateTask(ctx context.Context, id auth.Identity, params CreateTaskParams) (TaskOutput, error) {
	due, err := board.ParseDueDate(params.DueDate, time.UTC)
	if err != nil {
		return TaskOutput{}, invalidInput("%v", err)
	}
	req := task.CreateRequest{
		Title:     strings.TrimSpace(params.Title),
		Priority:  task.Priority(strings.ToUpper(params.Priority)),
		DueDate:   due,
		Tags:      params.Tags,
		ProjectID: params.ProjectID,
	}
	if params.Description != "" {
		req.Description = &params.Description
	}

	t, err := h.tasks.Create(ctx, id.Profile(), req)
	if err != nil {
		return TaskOutput{}, MapError(err)
	}
	return TaskOutput{Task: toTaskResponse(*t)}, nil
}

func (h *Handler) UpdateTask(ctx context.Context, id auth.Identity, params UpdateTaskParams) (TaskOutput, error) {
	req := task.UpdateRequest{
		Title:            params.Title,
		Description:      params.Description,
		ClearDescription: params.ClearDescription,
		ClearDueDate:     params.ClearDueDate,
		Tags:             params.Tags,
		ProjectID:        params.ProjectID,
		Completed:        params.Completed,
	}
	if params.Priority != nil {
		p := task.Priority(strings.ToUpper(*params.Priority))
		req.Priority = &p
	}
	if params.DueDate != nil {
		due, err := board.ParseDueDate(*params.DueDate, time.UTC)
		if err != nil {
			return TaskOutput{}, invalidInput("%v", err)
		}
		req.DueDate = due
	}

	t, err := h.tasks.Update(ctx, params.ID, req, id.UID)
	if err != nil {
		return TaskOutput{}, MapError(err)
	}
	return TaskOutput{Task: toTaskResponse(*t)}, nil
}

func (h *Handler) RemoveTask(ctx context.Context, id auth.Identity, params IDParams) (TaskOutput, error) {
	t, err := h.tasks.Remove(ctx, params.ID, id.UID)
	if err != nil {
		return TaskOutput{}, MapError(err)
	}
	return TaskOutput{Task: toTaskResponse(*t)}, nil
}

// TaskStats summarizes the caller's full task list.
func (h *Handler) TaskStats(ctx context.Context, id auth.Identity) (StatsOutput, error) {
	tasks, err := h.tasks.List(ctx, id.UID)
	if err != nil {
		return StatsOutput{}, MapError(err)
	}
	views := board.FromDomainList(tasks)
	stats := board.ComputeStats(views, h.now())
	return StatsOutput{
		Total:        stats.Total,
		Active:       stats.Active,
		Completed:    stats.Completed,
		Today:        stats.Today,
		Overdue:      stats.Overdue,
		Upcoming:     stats.Upcoming,
		HighPriority: stats.HighPriority,
		Tags:         board.AllTags(views),
	}, nil
}

func parseFilters(params ListTasksParams) (board.Filters, error) {
	f := board.DefaultFilters()
	f.Search = params.Search

	switch status := board.Status(strings.ToLower(params.Status)); status {
	case "", board.StatusAll:
	case board.StatusActive, board.StatusCompleted:
		f.Status = status
	default:
		return f, invalidInput("unknown status %q", params.Status)
	}

	priority, ok := board.ParsePriorityFilter(params.Priority)
	if !ok {
		return f, invalidInput("unknown priority %q", params.Priority)
	}
	f.Priority = priority

	if params.ProjectID != "" {
		f.Project = params.ProjectID
	}

	switch date := board.DateBucket(strings.ToLower(params.Date)); date {
	case "", board.DateAll:
	case board.DateToday, board.DateOverdue, board.DateUpcoming:
		f.Date = date
	default:
		return f, invalidInput("unknown date filter %q", params.Date)
	}

	return f, nil
}
