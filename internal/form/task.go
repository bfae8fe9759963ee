package form

import (
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rpggio/busybee/internal/board"
	"github.com/rpggio/busybee/internal/domain/task"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
)

// TaskForm holds the editable fields of a task. A form with a TaskID edits that
// task; otherwise it creates a new one.
type TaskForm struct {
	TaskID      string
	Title       string
	Description string
	Priority    task.Priority
	DueDate     string
	ProjectID   string
	Tags        []string

	// TagInput is the text typed into the tag field.
	TagInput string
	// KnownTags are tags already used on the board.
	KnownTags []string
	// Location resolves date-only due dates. Nil means time.Local.
	Location *time.Location
}

// NewTaskForm returns an empty create form for projectID.
func NewTaskForm(projectID string, knownTags []string) *TaskForm {
	return &TaskForm{
		Priority:  task.PriorityMedium,
		ProjectID: projectID,
		Tags:      []string{},
		KnownTags: knownTags,
	}
}

// EditTaskForm returns a form populated from t.
func EditTaskForm(t board.Task, knownTags []string, loc *time.Location) *TaskForm {
	f := &TaskForm{
		TaskID:    t.ID,
		Title:     t.Title,
		Priority:  t.Priority,
		ProjectID: t.ProjectID,
		Tags:      slices.Clone(t.Tags),
		KnownTags: knownTags,
		Location:  loc,
	}
	if f.Tags == nil {
		f.Tags = []string{}
	}
	if t.Description != nil {
		f.Description = *t.Description
	}
	f.DueDate = board.FormatDueDate(t.DueDate, f.location())
	return f
}

// IsEdit reports whether the form edits an existing task.
func (f *TaskForm) IsEdit() bool {
	return f.TaskID != ""
}

func (f *TaskForm) location() *time.Location {
	if f.Location == nil {
		return time.Local
	}
	return f.Location
}

// AddTag appends the trimmed tag unless it is blank or already present.
func (f *TaskForm) AddTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" || slices.Contains(f.Tags, tag) {
		return false
	}
	f.Tags = append(f.Tags, tag)
	return true
}

// RemoveTag drops every occurrence of tag.
func (f *TaskForm) RemoveTag(tag string) {
	f.Tags = slices.DeleteFunc(f.Tags, func(t string) bool { return t == tag })
}

// SelectTag adds a suggested tag and clears the input.
func (f *TaskForm) SelectTag(tag string) {
	f.AddTag(tag)
	f.TagInput = ""
}

// CreateTag adds the current input as a new tag.
func (f *TaskForm) CreateTag() bool {
	if !f.AddTag(f.TagInput) {
		return false
	}
	f.TagInput = ""
	return true
}

// Suggestions returns known tags not on the form, narrowed by the current input.
func (f *TaskForm) Suggestions() []string {
	query := strings.ToLower(strings.TrimSpace(f.TagInput))
	out := []string{}
	for _, tag := range f.KnownTags {
		if slices.Contains(f.Tags, tag) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(tag), query) {
			continue
		}
		out = append(out, tag)
	}
	return out
}

// ShowCreateOption reports whether the input names a tag that exists neither
// on the board nor on the form, ignoring case.
func (f *TaskForm) ShowCreateOption() bool {
	input := strings.TrimSpace(f.TagInput)
	if input == "" {
		return false
	}
	match := func(tag string) bool { return strings.EqualFold(tag, input) }
	return !slices.ContainsFunc(f.KnownTags, match) && !slices.ContainsFunc(f.Tags, match)
}

// Submit handles the enter key in the tag field: the first suggestion wins,
// otherwise a new tag is created when offered.
func (f *TaskForm) Submit() {
	if s := f.Suggestions(); len(s) > 0 {
		f.SelectTag(s[0])
		return
	}
	if f.ShowCreateOption() {
		f.CreateTag()
	}
}

// Validate checks every field and returns a *ValidationError on failure.
func (f *TaskForm) Validate() error {
	_, err := f.validate()
	return err
}

func (f *TaskForm) validate() (*time.Time, error) {
	errs := collector{}
	if strings.TrimSpace(f.Title) == "" {
		errs.add(FieldTitle, MsgRequired)
	} else if utf8.RuneCountInString(f.Title) > MaxTitleLength {
		errs.add(FieldTitle, maxLengthMsg(MaxTitleLength))
	}
	if utf8.RuneCountInString(f.Description) > MaxDescriptionLength {
		errs.add(FieldDescription, maxLengthMsg(MaxDescriptionLength))
	}
	if f.Priority == "" {
		errs.add(FieldPriority, MsgRequired)
	} else if !f.Priority.Valid() {
		errs.add(FieldPriority, "Unknown priority")
	}
	if strings.TrimSpace(f.ProjectID) == "" {
		errs.add(FieldProjectID, MsgRequired)
	}
	due, err := board.ParseDueDate(f.DueDate, f.location())
	if err != nil {
		errs.add(FieldDueDate, "Invalid date")
	}
	return due, errs.err()
}

// CreateInput returns the createTask payload.
func (f *TaskForm) CreateInput() (board.CreateTaskInput, error) {
	due, err := f.validate()
	if err != nil {
		return board.CreateTaskInput{}, err
	}
	in := board.CreateTaskInput{
		Title:     f.Title,
		Priority:  f.Priority,
		DueDate:   due,
		Tags:      slices.Clone(f.Tags),
		ProjectID: f.ProjectID,
	}
	if in.Tags == nil {
		in.Tags = []string{}
	}
	if f.Description != "" {
		desc := f.Description
		in.Description = &desc
	}
	return in, nil
}

// UpdateInput returns the updateTask payload. Every field is sent; an empty
// description or due date clears the stored value.
func (f *TaskForm) UpdateInput() (board.UpdateTaskInput, error) {
	due, err := f.validate()
	if err != nil {
		return board.UpdateTaskInput{}, err
	}
	title, priority, projectID := f.Title, f.Priority, f.ProjectID
	in := board.UpdateTaskInput{
		ID:        f.TaskID,
		Title:     &title,
		Priority:  &priority,
		DueDate:   due,
		Tags:      slices.Clone(f.Tags),
		ProjectID: &projectID,
	}
	if in.Tags == nil {
		in.Tags = []string{}
	}
	if f.Description != "" {
		desc := f.Description
		in.Description = &desc
	} else {
		in.ClearDescription = true
	}
	if due == nil {
		in.ClearDueDate = true
	}
	return in, nil
}

// Reset restores the create defaults, keeping the project and known tags.
func (f *TaskForm) Reset() {
	*f = TaskForm{
		Priority:  task.PriorityMedium,
		ProjectID: f.ProjectID,
		Tags:      []string{},
		KnownTags: f.KnownTags,
		Location:  f.Location,
	}
}
