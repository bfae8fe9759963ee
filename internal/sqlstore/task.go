package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rpggio/busybee/internal/domain/task"
	"github.com/rpggio/busybee/internal/repository"
)

// TaskRepository implements task.Repository
type TaskRepository struct {
	db *DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *DB) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskColumns = `id, user_id, project_id, title, description, priority, due_date, tags, completed, created_at, updated_at`

// Incomplete first, then due date with nulls last, then priority rank descending.
const taskListOrder = `
		ORDER BY
			completed ASC,
			CASE WHEN due_date IS NULL THEN 1 ELSE 0 END ASC,
			due_date ASC,
			CASE priority WHEN 'HIGH' THEN 3 WHEN 'MEDIUM' THEN 2 ELSE 1 END DESC,
			created_at ASC
`

// Create creates a new task
func (r *TaskRepository) Create(ctx context.Context, t *task.Task) error {
	tags, err := encodeTags(t.Tags)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, r.db.rebind(query),
		t.ID,
		t.UserID,
		t.ProjectID,
		t.Title,
		toNullString(t.Description),
		string(t.Priority),
		toNullTime(t.DueDate),
		tags,
		t.Completed,
		t.CreatedAt.UTC(),
		t.UpdatedAt.UTC(),
	)
	if isUniqueViolation(err) {
		return repository.ErrConflict
	}
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

// Get retrieves a task by ID regardless of owner
func (r *TaskRepository) Get(ctx context.Context, id string) (*task.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`

	t, err := scanTask(r.db.QueryRowContext(ctx, r.db.rebind(query), id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return t, nil
}

// Update overwrites every mutable column of a task
func (r *TaskRepository) Update(ctx context.Context, t *task.Task) error {
	tags, err := encodeTags(t.Tags)
	if err != nil {
		return err
	}

	query := `
		UPDATE tasks
		SET project_id = ?, title = ?, description = ?, priority = ?, due_date = ?,
			tags = ?, completed = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, r.db.rebind(query),
		t.ProjectID,
		t.Title,
		toNullString(t.Description),
		string(t.Priority),
		toNullTime(t.DueDate),
		tags,
		t.Completed,
		t.UpdatedAt.UTC(),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes a task
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, r.db.rebind(`DELETE FROM tasks WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// ListByUser returns a user's tasks in list order
func (r *TaskRepository) ListByUser(ctx context.Context, userID string) ([]task.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ?` + taskListOrder
	return r.query(ctx, query, userID)
}

// SearchByTitle returns a user's tasks whose title contains query, ignoring case
func (r *TaskRepository) SearchByTitle(ctx context.Context, userID, query string) ([]task.Task, error) {
	needle := strings.ToLower(query)
	if r.db.driver == DriverPostgres {
		stmt := `
			SELECT ` + taskColumns + `
			FROM tasks
			WHERE user_id = ? AND LOWER(title) LIKE ? ESCAPE '\'
			ORDER BY created_at ASC, id ASC
		`
		return r.query(ctx, stmt, userID, "%"+escapeLike(needle)+"%")
	}

	// SQLite's LOWER only folds ASCII, so matching happens here.
	stmt := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ? ORDER BY created_at ASC, id ASC`
	tasks, err := r.query(ctx, stmt, userID)
	if err != nil {
		return nil, err
	}
	matched := tasks[:0]
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), needle) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

func (r *TaskRepository) query(ctx context.Context, query string, args ...any) ([]task.Task, error) {
	rows, err := r.db.QueryContext(ctx, r.db.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []task.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, *t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}

	return tasks, nil
}

func scanTask(row rowScanner) (*task.Task, error) {
	var t task.Task
	var description sql.NullString
	var priority string
	var dueDate sql.NullTime
	var tags string
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.ProjectID,
		&t.Title,
		&description,
		&priority,
		&dueDate,
		&tags,
		&t.Completed,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Description = fromNullString(description)
	t.Priority = task.Priority(priority)
	if dueDate.Valid {
		due := dueDate.Time
		t.DueDate = &due
	}
	if t.Tags, err = decodeTags(tags); err != nil {
		return nil, err
	}

	return &t, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("%w: encoding tags: %v", repository.ErrInvalidInput, err)
	}
	return string(data), nil
}

func decodeTags(raw string) ([]string, error) {
	tags := []string{}
	if raw == "" {
		return tags, nil
	}
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, fmt.Errorf("%w: decoding tags: %v", repository.ErrInvalidInput, err)
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
