package form

import (
	"strings"

	"github.com/rpggio/busybee/internal/board"
)

// ColorOption is a named project color.
type ColorOption struct {
	Name  string
	Value string
}

// Palette lists the selectable project colors. The first entry is the default.
var Palette = []ColorOption{
	{Name: "Blue", Value: "#3B82F6"},
	{Name: "Red", Value: "#EF4444"},
	{Name: "Green", Value: "#10B981"},
	{Name: "Yellow", Value: "#F59E0B"},
	{Name: "Purple", Value: "#8B5CF6"},
	{Name: "Pink", Value: "#EC4899"},
	{Name: "Indigo", Value: "#6366F1"},
	{Name: "Teal", Value: "#14B8A6"},
}

// Icons lists the suggested project icons. The first entry is the default.
var Icons = []string{"📁", "💼", "🏠", "🛒", "💡", "🎯", "📚", "🎨", "🔧", "⚡"}

var (
	DefaultColor = Palette[0].Value
	DefaultIcon  = Icons[0]
)

// ProjectForm holds the fields of a new project.
type ProjectForm struct {
	Name  string
	Color string
	Icon  string
}

// NewProjectForm returns a form with the default color and icon.
func NewProjectForm() *ProjectForm {
	return &ProjectForm{Color: DefaultColor, Icon: DefaultIcon}
}

// ColorByName resolves a palette name, case-insensitively, or returns value
// unchanged when it is not a palette name.
func ColorByName(value string) string {
	for _, c := range Palette {
		if strings.EqualFold(c.Name, value) {
			return c.Value
		}
	}
	return value
}

func (f *ProjectForm) Validate() error {
	errs := collector{}
	if strings.TrimSpace(f.Name) == "" {
		errs.add(FieldName, MsgRequired)
	}
	if strings.TrimSpace(f.Color) == "" {
		errs.add(FieldColor, MsgRequired)
	}
	return errs.err()
}

// CreateInput returns the createProject payload. An empty icon is omitted.
func (f *ProjectForm) CreateInput() (board.CreateProjectInput, error) {
	if err := f.Validate(); err != nil {
		return board.CreateProjectInput{}, err
	}
	in := board.CreateProjectInput{Name: f.Name, Color: f.Color}
	if f.Icon != "" {
		icon := f.Icon
		in.Icon = &icon
	}
	return in, nil
}

// Reset restores the defaults.
func (f *ProjectForm) Reset() {
	*f = *NewProjectForm()
}
