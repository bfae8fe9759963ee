// Package render formats board state for the terminal.
package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is a terminal color scheme.
type Theme struct {
	Name string

	Foreground    lipgloss.Color
	ForegroundDim lipgloss.Color
	Primary       lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	Border lipgloss.Color
}

// Hive is the default theme.
var Hive = Theme{
	Name: "Hive",

	Foreground:    lipgloss.Color("#E5E7EB"),
	ForegroundDim: lipgloss.Color("#6B7280"),
	Primary:       lipgloss.Color("#F59E0B"),

	Success: lipgloss.Color("#10B981"),
	Warning: lipgloss.Color("#F59E0B"),
	Error:   lipgloss.Color("#EF4444"),
	Info:    lipgloss.Color("#3B82F6"),

	Border: lipgloss.Color("#374151"),
}

// Styles holds the pre-computed styles for one renderer.
type Styles struct {
	r *lipgloss.Renderer

	Title lipgloss.Style
	Muted lipgloss.Style
	Box   lipgloss.Style

	TaskTitle lipgloss.Style
	TaskDone  lipgloss.Style
	Tag       lipgloss.Style

	PriorityHigh   lipgloss.Style
	PriorityMedium lipgloss.Style
	PriorityLow    lipgloss.Style

	Overdue  lipgloss.Style
	Today    lipgloss.Style
	Upcoming lipgloss.Style

	StatLabel lipgloss.Style
	StatValue lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
	Warning lipgloss.Style
}

// NewStyles builds styles for r using theme t. A nil renderer uses lipgloss's default.
func NewStyles(r *lipgloss.Renderer, t Theme) *Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Styles{
		r: r,

		Title: r.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		Muted: r.NewStyle().
			Foreground(t.ForegroundDim),

		Box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		TaskTitle: r.NewStyle().
			Foreground(t.Foreground),

		TaskDone: r.NewStyle().
			Foreground(t.ForegroundDim).
			Strikethrough(true),

		Tag: r.NewStyle().
			Foreground(t.Info),

		PriorityHigh: r.NewStyle().
			Foreground(t.Error).
			Bold(true),
		PriorityMedium: r.NewStyle().
			Foreground(t.Warning),
		PriorityLow: r.NewStyle().
			Foreground(t.ForegroundDim),

		Overdue: r.NewStyle().
			Foreground(t.Error).
			Bold(true),
		Today: r.NewStyle().
			Foreground(t.Warning),
		Upcoming: r.NewStyle().
			Foreground(t.ForegroundDim),

		StatLabel: r.NewStyle().
			Foreground(t.ForegroundDim),
		StatValue: r.NewStyle().
			Foreground(t.Foreground).
			Bold(true),

		Success: r.NewStyle().Foreground(t.Success),
		Error:   r.NewStyle().Foreground(t.Error),
		Info:    r.NewStyle().Foreground(t.Info),
		Warning: r.NewStyle().Foreground(t.Warning),
	}
}
