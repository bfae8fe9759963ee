package client

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/rpggio/busybee/internal/board"
	"github.com/rpggio/busybee/internal/reactive"
)

// User-facing notification texts.
const (
	MsgLoadTasksFailed    = "Failed to load tasks. Please try again."
	MsgLoadProjectsFailed = "Failed to load projects"
	MsgTaskCompleted      = "Task completed!"
	MsgTaskActive         = "Task marked as active"
	MsgToggleFailed       = "Failed to update task"
	MsgTaskCreated        = "Task created successfully"
	MsgCreateFailed       = "Failed to create task"
	MsgTaskUpdated        = "Task updated successfully"
	MsgUpdateFailed       = "Failed to update task"
	MsgTaskDeleted        = "Task deleted successfully"
	MsgDeleteFailed       = "Failed to delete task"
	MsgProjectCreated     = "Project created successfully"
	MsgProjectFailed      = "Failed to create project"
	MsgProjectDeleted     = "Project deleted successfully"
	MsgProjectDelFailed   = "Failed to delete project"
)

// API is the remote surface the store drives.
type API interface {
	Tasks(ctx context.Context) ([]board.Task, error)
	CreateTask(ctx context.Context, input board.CreateTaskInput) (board.Task, error)
	UpdateTask(ctx context.Context, input board.UpdateTaskInput) (board.Task, error)
	ToggleCompletion(ctx context.Context, t board.Task) (board.Task, error)
	RemoveTask(ctx context.Context, id string) (board.Task, error)
	AllTags(ctx context.Context) ([]string, error)
	Projects(ctx context.Context) ([]board.Project, error)
	CreateProject(ctx context.Context, input board.CreateProjectInput) (board.Project, error)
	DeleteProject(ctx context.Context, id string) (board.Project, error)
}

// Store keeps the client's task board state. Tasks, projects and filters are
// observable cells; the visible list and statistics are derived from them.
// Tags holds the known tag set as of the last RefreshTags call.
type Store struct {
	api    API
	logger *slog.Logger
	now    func() time.Time

	Tasks    *reactive.Cell[[]board.Task]
	Projects *reactive.Cell[[]board.Project]
	Filters  *reactive.Cell[board.Filters]
	Loading  *reactive.Cell[bool]
	Err      *reactive.Cell[string]
	Tags     *reactive.Cell[[]string]
	Toasts   *Toasts

	Visible *reactive.Computed[[]board.Task]
	Stats   *reactive.Computed[board.Stats]
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock overrides the time source used for date buckets.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the store logger.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) { s.logger = logger }
}

// NewStore creates an empty store backed by api.
func NewStore(api API, opts ...StoreOption) *Store {
	s := &Store{
		api:      api,
		now:      time.Now,
		logger:   slog.New(slog.DiscardHandler),
		Tasks:    reactive.NewCell("tasks", []board.Task{}),
		Projects: reactive.NewCell("projects", []board.Project{}),
		Filters:  reactive.NewCell("filters", board.DefaultFilters()),
		Loading:  reactive.NewCell("loading", false),
		Err:      reactive.NewCell("error", ""),
		Tags:     reactive.NewCell("tags", []string{}),
		Toasts:   NewToasts(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Visible = reactive.NewComputed(func() []board.Task {
		return board.Apply(s.Tasks.Get(), s.Filters.Get(), s.now())
	}, s.Tasks, s.Filters)
	s.Stats = reactive.NewComputed(func() board.Stats {
		return board.ComputeStats(s.Tasks.Get(), s.now())
	}, s.Tasks)
	return s
}

// Close detaches derived values.
func (s *Store) Close() {
	s.Visible.Close()
	s.Stats.Close()
	s.Toasts.Clear()
}

// Load fetches projects and tasks.
func (s *Store) Load(ctx context.Context) error {
	if err := s.LoadProjects(ctx); err != nil {
		return err
	}
	return s.LoadTasks(ctx)
}

// LoadTasks replaces the task list with the server's.
func (s *Store) LoadTasks(ctx context.Context) error {
	s.Loading.Set(true)
	defer s.Loading.Set(false)
	s.Err.Set("")

	tasks, err := s.api.Tasks(ctx)
	if err != nil {
		s.logger.Error("loading tasks", "error", err)
		s.Err.Set(MsgLoadTasksFailed)
		return err
	}
	s.Tasks.Set(tasks)
	return nil
}

// LoadProjects replaces the project list with the server's.
func (s *Store) LoadProjects(ctx context.Context) error {
	projects, err := s.api.Projects(ctx)
	if err != nil {
		s.logger.Error("loading projects", "error", err)
		s.Toasts.Error(MsgLoadProjectsFailed)
		return err
	}
	s.Projects.Set(projects)
	return nil
}

// RefreshTags fetches the known tag set. The previous set is kept on error.
func (s *Store) RefreshTags(ctx context.Context) ([]string, error) {
	tags, err := s.api.AllTags(ctx)
	if err != nil {
		s.logger.Error("loading tags", "error", err)
		return s.Tags.Get(), err
	}
	s.Tags.Set(tags)
	return tags, nil
}

// SetFilters replaces the active filters.
func (s *Store) SetFilters(f board.Filters) {
	s.Filters.Set(f)
}

// UpdateFilters applies fn to the active filters.
func (s *Store) UpdateFilters(fn func(board.Filters) board.Filters) {
	s.Filters.Update(fn)
}

// CreateTask creates a task and puts it at the top of the list.
func (s *Store) CreateTask(ctx context.Context, input board.CreateTaskInput) (board.Task, error) {
	created, err := s.api.CreateTask(ctx, input)
	if err != nil {
		s.logger.Error("creating task", "error", err)
		s.Toasts.Error(MsgCreateFailed)
		return board.Task{}, err
	}
	s.Tasks.Update(func(tasks []board.Task) []board.Task {
		return append([]board.Task{created}, tasks...)
	})
	s.Toasts.Success(MsgTaskCreated)
	return created, nil
}

// UpdateTask applies a partial update and replaces the task in place.
func (s *Store) UpdateTask(ctx context.Context, input board.UpdateTaskInput) (board.Task, error) {
	updated, err := s.api.UpdateTask(ctx, input)
	if err != nil {
		s.logger.Error("updating task", "id", input.ID, "error", err)
		s.Toasts.Error(MsgUpdateFailed)
		return board.Task{}, err
	}
	s.replace(updated)
	s.Toasts.Success(MsgTaskUpdated)
	return updated, nil
}

// ToggleTask flips the completion flag of the task with the given ID.
func (s *Store) ToggleTask(ctx context.Context, id string) (board.Task, error) {
	current, ok := s.find(id)
	if !ok {
		return board.Task{}, ErrNotFound
	}
	updated, err := s.api.ToggleCompletion(ctx, current)
	if err != nil {
		s.logger.Error("toggling task", "id", id, "error", err)
		s.Toasts.Error(MsgToggleFailed)
		return board.Task{}, err
	}
	s.replace(updated)
	if updated.Completed {
		s.Toasts.Success(MsgTaskCompleted)
	} else {
		s.Toasts.Info(MsgTaskActive)
	}
	return updated, nil
}

// RemoveTask deletes a task and drops it from the list.
func (s *Store) RemoveTask(ctx context.Context, id string) error {
	if _, err := s.api.RemoveTask(ctx, id); err != nil {
		s.logger.Error("removing task", "id", id, "error", err)
		s.Toasts.Error(MsgDeleteFailed)
		return err
	}
	s.Tasks.Update(func(tasks []board.Task) []board.Task {
		return slices.DeleteFunc(slices.Clone(tasks), func(t board.Task) bool { return t.ID == id })
	})
	s.Toasts.Success(MsgTaskDeleted)
	return nil
}

// CreateProject creates a project and appends it to the list.
func (s *Store) CreateProject(ctx context.Context, input board.CreateProjectInput) (board.Project, error) {
	created, err := s.api.CreateProject(ctx, input)
	if err != nil {
		s.logger.Error("creating project", "error", err)
		s.Toasts.Error(MsgProjectFailed)
		return board.Project{}, err
	}
	s.Projects.Update(func(projects []board.Project) []board.Project {
		next := slices.Clone(projects)
		return append(next, created)
	})
	s.Toasts.Success(MsgProjectCreated)
	return created, nil
}

// DeleteProject deletes a project. A project filter pointing at it is reset,
// and tasks are reloaded.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	if _, err := s.api.DeleteProject(ctx, id); err != nil {
		s.logger.Error("deleting project", "id", id, "error", err)
		s.Toasts.Error(MsgProjectDelFailed)
		return err
	}
	s.Projects.Update(func(projects []board.Project) []board.Project {
		return slices.DeleteFunc(slices.Clone(projects), func(p board.Project) bool { return p.ID == id })
	})
	if s.Filters.Get().Project == id {
		s.Filters.Update(func(f board.Filters) board.Filters {
			f.Project = board.All
			return f
		})
	}
	s.Toasts.Success(MsgProjectDeleted)
	return s.LoadTasks(ctx)
}

// Project returns the loaded project with the given ID.
func (s *Store) Project(id string) (board.Project, bool) {
	for _, p := range s.Projects.Get() {
		if p.ID == id {
			return p, true
		}
	}
	return board.Project{}, false
}

func (s *Store) find(id string) (board.Task, bool) {
	for _, t := range s.Tasks.Get() {
		if t.ID == id {
			return t, true
		}
	}
	return board.Task{}, false
}

func (s *Store) replace(updated board.Task) {
	s.Tasks.Update(func(tasks []board.Task) []board.Task {
		next := slices.Clone(tasks)
		for i := range next {
			if next[i].ID == updated.ID {
				next[i] = updated
			}
		}
		return next
	})
}
