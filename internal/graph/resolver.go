package graph

import (
	"context"
	"log/slog"
	"time"

	"github.com/graphql-go/graphql"

	"github.com/rpggio/busybee/internal/auth"
	"github.com/rpggio/busybee/internal/board"
	"github.com/rpggio/busybee/internal/domain/project"
	"github.com/rpggio/busybee/internal/domain/task"
	"github.com/rpggio/busybee/internal/domain/user"
)

// ProjectService defines project operations needed by the API.
type ProjectService interface {
	List(ctx context.Context, userID string) ([]project.Project, error)
	Get(ctx context.Context, id, userID string) (*project.Project, error)
	Create(ctx context.Context, owner user.Profile, req project.CreateRequest) (*project.Project, error)
	Delete(ctx context.Context, id, userID string) (*project.Project, error)
}

// TaskService defines task operations needed by the API.
type TaskService interface {
	List(ctx context.Context, userID string) ([]task.Task, error)
	Get(ctx context.Context, id, userID string) (*task.Task, error)
	SearchByTitle(ctx context.Context, query, userID string) ([]task.Task, error)
	Create(ctx context.Context, owner user.Profile, req task.CreateRequest) (*task.Task, error)
	Update(ctx context.Context, id string, req task.UpdateRequest, userID string) (*task.Task, error)
	Remove(ctx context.Context, id, userID string) (*task.Task, error)
}

// Resolver resolves every query and mutation field against the services.
type Resolver struct {
	Projects ProjectService
	Tasks    TaskService
	logger   *slog.Logger
	now      func() time.Time
}

// NewResolver creates a resolver. A nil logger discards output.
func NewResolver(projects ProjectService, tasks TaskService, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Resolver{Projects: projects, Tasks: tasks, logger: logger, now: time.Now}
}

func (r *Resolver) identity(p graphql.ResolveParams) (auth.Identity, error) {
	id, ok := auth.IdentityFromContext(p.Context)
	if !ok {
		return auth.Identity{}, MapError(ErrUnauthenticated, r.logger)
	}
	return id, nil
}

func (r *Resolver) projects(p graphql.ResolveParams) (any, error) {
	id, err := r.identity(p)
	if err != nil {
		return nil, err
	}
	projects, err := r.Projects.List(p.Context, id.UID)
	if err != nil {
		return nil, MapError(err, r.logger)
	}
	return projectList(projects), nil
}

func (r *Resolver) project(p graphql.ResolveParams) (any, error) {
	id, err := r.identity(p)
	if err != nil {
		return nil, err
	}
	proj, err := r.Projects.Get(p.Context, stringArg(p.Args, "id"), id.UID)
	if err != nil {
		return nil, MapError(err, r.logger)
	}
	return projectMap(*proj), nil
}

func (r *Resolver) createProject(p graphql.ResolveParams) (any, error) {
	id, err := r.identity(p)
	if err != nil {
		return nil, err
	}
	input, _ := p.Args["input"].(map[string]any)
	proj, err := r.Projects.Create(p.Context, id.Profile(), project.CreateRequest{
		Name:  stringArg(input, "name"),
		Color: stringArg(input, "color"),
		Icon:  optionalStringArg(input, "icon"),
	})
	if err != nil {
		return nil, MapError(err, r.logger)
	}
	return projectMap(*proj), nil
}

func (r *Resolver) deleteProject(p graphql.ResolveParams) (any, error) {
	id, err := r.identity(p)
	if err != nil {
		return nil, err
	}
	proj, err := r.Projects.Delete(p.Context, stringArg(p.Args, "id"), id.UID)
	if err != nil {
		return nil, MapError(err, r.logger)
	}
	return projectMap(*proj), nil
}

func (r *Resolver) tasks(p graphql.ResolveParams) (any, error) {
	id, err := r.identity(p)
	if err != nil {
		return nil, err
	}
	tasks, err := r.Tasks.List(p.Context, id.UID)
	if err != nil {
		return nil, MapError(err, r.logger)
	}
	return taskList(tasks), nil
}

func (r *Resolver) task(p graphql.ResolveParams) (any, error) {
	id, err := r.identity(p)
	if err != nil {
		return nil, err
	}
	t, err := r.Tasks.Get(p.Context, stringArg(p.Args, "id"), id.UID)
	if err != nil {
		return nil, MapError(err, r.logger)
	}
	return taskMap(*t), nil
}

func (r *Resolver) searchTasksByTitle(p graphql.ResolveParams) (any, error) {
	id, err := r.identity(p)
	if err != nil {
		return nil, err
	}
	tasks, err := r.Tasks.SearchByTitle(p.Context, stringArg(p.Args, "title"), id.UID)
	if err != nil {
		return nil, MapError(err, r.logger)
	}
	return taskList(tasks), nil
}

func (r *Resolver) taskStats(p graphql.ResolveParams) (any, error) {
	id, err := r.identity(p)
	if err != nil {
		return nil, err
	}
	tasks, err := r.Tasks.List(p.Context, id.UID)
	if err != nil {
		return nil, MapError(err, r.logger)
	}
	stats := board.ComputeStats(board.FromDomainList(tasks), r.now())
	return map[string]any{
		"total":        stats.Total,
		"active":       stats.Active,
		"completed":    stats.Completed,
		"today":        stats.Today,
		"overdue":      stats.Overdue,
		"upcoming":     stats.Upcoming,
		"highPriority": stats.HighPriority,
	}, nil
}

func (r *Resolver) createTask(p graphql.ResolveParams) (any, error) {
	id, err := r.identity(p)
	if err != nil {
		return nil, err
	}
	input, _ := p.Args["createTaskInput"].(map[string]any)
	req := task.CreateRequest{
		Title:       stringArg(input, "title"),
		Description: optionalStringArg(input, "description"),
		DueDate:     timeArg(input, "dueDate"),
		Tags:        stringsArg(input, "tags"),
		ProjectID:   stringArg(input, "projectId"),
	}
	if priority := optionalStringArg(input, "priority"); priority != nil {
		req.Priority = task.Priority(*priority)
	}

	t, err := r.Tasks.Create(p.Context, id.Profile(), req)
	if err != nil {
		return nil, MapError(err, r.logger)
	}
	return taskMap(*t), nil
}

func (r *Resolver) updateTask(p graphql.ResolveParams) (any, error) {
	id, err := r.identity(p)
	if err != nil {
		return nil, err
	}
	input, _ := p.Args["updateTaskInput"].(map[string]any)
	req := task.UpdateRequest{
		Title:            optionalStringArg(input, "title"),
		Description:      optionalStringArg(input, "description"),
		ClearDescription: boolArg(input, "clearDescription"),
		DueDate:          timeArg(input, "dueDate"),
		ClearDueDate:     boolArg(input, "clearDueDate"),
		Tags:             stringsArg(input, "tags"),
		ProjectID:        optionalStringArg(input, "projectId"),
	}
	if priority := optionalStringArg(input, "priority"); priority != nil {
		v := task.Priority(*priority)
		req.Priority = &v
	}
	if completed, ok := input["completed"].(bool); ok {
		req.Completed = &completed
	}

	t, err := r.Tasks.Update(p.Context, stringArg(input, "id"), req, id.UID)
	if err != nil {
		return nil, MapError(err, r.logger)
	}
	return taskMap(*t), nil
}

func (r *Resolver) removeTask(p graphql.ResolveParams) (any, error) {
	id, err := r.identity(p)
	if err != nil {
		return nil, err
	}
	t, err := r.Tasks.Remove(p.Context, stringArg(p.Args, "id"), id.UID)
	if err != nil {
		return nil, MapError(err, r.logger)
	}
	return taskMap(*t), nil
}
