package form

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/busybee/internal/board"
	"github.com/rpggio/busybee/internal/domain/task"
)

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	return verr.Fields
}

func TestTaskForm_Defaults(t *testing.T) {
	f := NewTaskForm("p1", nil)
	assert.Equal(t, task.PriorityMedium, f.Priority)
	assert.Equal(t, "p1", f.ProjectID)
	assert.False(t, f.IsEdit())

	fields := fieldErrors(t, f.Validate())
	assert.Equal(t, map[string]string{FieldTitle: MsgRequired}, fields)
}

func TestTaskForm_Validation(t *testing.T) {
	f := &TaskForm{
		Title:       strings.Repeat("a", MaxTitleLength+1),
		Description: strings.Repeat("d", MaxDescriptionLength+1),
		DueDate:     "next tuesday",
	}
	fields := fieldErrors(t, f.Validate())
	assert.Equal(t, "Maximum length is 200", fields[FieldTitle])
	assert.Equal(t, "Maximum length is 1000", fields[FieldDescription])
	assert.Equal(t, MsgRequired, fields[FieldPriority])
	assert.Equal(t, MsgRequired, fields[FieldProjectID])
	assert.Equal(t, "Invalid date", fields[FieldDueDate])

	f = &TaskForm{Title: "   ", Priority: "URGENT", ProjectID: "p1"}
	fields = fieldErrors(t, f.Validate())
	assert.Equal(t, MsgRequired, fields[FieldTitle])
	assert.Equal(t, "Unknown priority", fields[FieldPriority])
}

func TestTaskForm_TitleLengthCountsRunes(t *testing.T) {
	f := NewTaskForm("p1", nil)
	f.Title = strings.Repeat("é", MaxTitleLength)
	assert.NoError(t, f.Validate())
}

func TestTaskForm_CreateInput(t *testing.T) {
	f := NewTaskForm("p1", nil)
	f.Location = time.UTC
	f.Title = "Ship release"
	f.Priority = task.PriorityHigh
	f.DueDate = "2025-11-07"

	in, err := f.CreateInput()
	require.NoError(t, err)
	assert.Equal(t, "Ship release", in.Title)
	assert.Equal(t, task.PriorityHigh, in.Priority)
	assert.Nil(t, in.Description)
	assert.Equal(t, []string{}, in.Tags)
	require.NotNil(t, in.DueDate)
	assert.True(t, in.DueDate.Equal(time.Date(2025, 11, 7, 0, 0, 0, 0, time.UTC)))

	f.Title = ""
	_, err = f.CreateInput()
	require.Error(t, err)
}

func TestTaskForm_EditAndUpdateInput(t *testing.T) {
	desc := "notes"
	due := time.Date(2025, 11, 7, 0, 0, 0, 0, time.UTC)
	original := board.Task{
		ID: "t1", Title: "Write", Description: &desc, Priority: task.PriorityLow,
		DueDate: &due, Tags: []string{"work"}, ProjectID: "p1",
	}

	f := EditTaskForm(original, []string{"work", "home"}, time.UTC)
	assert.True(t, f.IsEdit())
	assert.Equal(t, "2025-11-07", f.DueDate)
	assert.Equal(t, "notes", f.Description)

	f.Tags[0] = "changed"
	assert.Equal(t, "work", original.Tags[0], "form must not alias the task's tags")

	f.Description = ""
	f.DueDate = ""
	in, err := f.UpdateInput()
	require.NoError(t, err)
	assert.Equal(t, "t1", in.ID)
	assert.True(t, in.ClearDescription)
	assert.True(t, in.ClearDueDate)
	require.NotNil(t, in.Title)
	assert.Equal(t, "Write", *in.Title)
	assert.Equal(t, []string{"changed"}, in.Tags)
}

func TestTaskForm_Tags(t *testing.T) {
	f := NewTaskForm("p1", []string{"work", "Home", "errand"})

	assert.True(t, f.AddTag("  work "))
	assert.False(t, f.AddTag("work"))
	assert.False(t, f.AddTag("   "))
	assert.Equal(t, []string{"work"}, f.Tags)

	assert.Equal(t, []string{"Home", "errand"}, f.Suggestions())
	f.TagInput = "HO"
	assert.Equal(t, []string{"Home"}, f.Suggestions())
	assert.True(t, f.ShowCreateOption(), "partial input is not an existing tag")

	f.TagInput = "home"
	assert.False(t, f.ShowCreateOption(), "case-insensitive match against known tags")

	f.TagInput = "WORK"
	assert.False(t, f.ShowCreateOption(), "case-insensitive match against form tags")

	f.TagInput = "garden"
	assert.True(t, f.ShowCreateOption())
	assert.Empty(t, f.Suggestions())
	assert.True(t, f.CreateTag())
	assert.Equal(t, "", f.TagInput)
	assert.Equal(t, []string{"work", "garden"}, f.Tags)

	f.RemoveTag("work")
	assert.Equal(t, []string{"garden"}, f.Tags)
}

func TestTaskForm_SubmitTagInput(t *testing.T) {
	f := NewTaskForm("p1", []string{"errand", "errors"})
	f.TagInput = "err"
	f.Submit()
	assert.Equal(t, []string{"errand"}, f.Tags)
	assert.Empty(t, f.TagInput)

	f.TagInput = "new"
	f.Submit()
	assert.Equal(t, []string{"errand", "new"}, f.Tags)
}

func TestTaskForm_Reset(t *testing.T) {
	f := NewTaskForm("p1", []string{"a"})
	f.Title = "x"
	f.Priority = task.PriorityHigh
	f.AddTag("a")
	f.Reset()

	assert.Equal(t, "", f.Title)
	assert.Equal(t, task.PriorityMedium, f.Priority)
	assert.Equal(t, "p1", f.ProjectID)
	assert.Empty(t, f.Tags)
	assert.Equal(t, []string{"a"}, f.KnownTags)
}

func TestProjectForm(t *testing.T) {
	f := NewProjectForm()
	assert.Equal(t, "#3B82F6", f.Color)
	assert.Equal(t, "📁", f.Icon)
	assert.Len(t, Palette, 8)

	fields := fieldErrors(t, f.Validate())
	assert.Equal(t, map[string]string{FieldName: MsgRequired}, fields)

	f.Name = "Work"
	f.Color = ColorByName("red")
	in, err := f.CreateInput()
	require.NoError(t, err)
	assert.Equal(t, "#EF4444", in.Color)
	require.NotNil(t, in.Icon)
	assert.Equal(t, "📁", *in.Icon)

	f.Icon = ""
	in, err = f.CreateInput()
	require.NoError(t, err)
	assert.Nil(t, in.Icon)

	f.Color = ""
	fields = fieldErrors(t, f.Validate())
	assert.Equal(t, MsgRequired, fields[FieldColor])

	f.Reset()
	assert.Equal(t, "", f.Name)
	assert.Equal(t, DefaultColor, f.Color)
}

func TestColorByName(t *testing.T) {
	assert.Equal(t, "#14B8A6", ColorByName("Teal"))
	assert.Equal(t, "#123456", ColorByName("#123456"))
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{FieldTitle: MsgRequired, FieldColor: MsgRequired}}
	assert.Equal(t, "invalid form: color: This field is required; title: This field is required", err.Error())
	assert.Equal(t, MsgRequired, err.Field(FieldTitle))
	assert.Empty(t, err.Field(FieldName))
}
