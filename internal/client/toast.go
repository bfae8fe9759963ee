package client

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rpggio/busybee/internal/reactive"
)

// ToastKind classifies a notification.
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
	ToastInfo    ToastKind = "info"
	ToastWarning ToastKind = "warning"
)

// Default display durations per kind.
const (
	SuccessDuration = 3 * time.Second
	ErrorDuration   = 5 * time.Second
	InfoDuration    = 3 * time.Second
	WarningDuration = 4 * time.Second
)

// Toast is a transient user notification.
type Toast struct {
	ID       string
	Kind     ToastKind
	Message  string
	Duration time.Duration
}

// Toasts holds the active notifications. Each toast removes itself once its
// duration elapses.
type Toasts struct {
	cell *reactive.Cell[[]Toast]

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewToasts creates an empty notification list.
func NewToasts() *Toasts {
	return &Toasts{
		cell:   reactive.NewCell("toasts", []Toast{}),
		timers: make(map[string]*time.Timer),
	}
}

// Cell exposes the observable toast list.
func (t *Toasts) Cell() *reactive.Cell[[]Toast] {
	return t.cell
}

// List returns the active toasts, oldest first.
func (t *Toasts) List() []Toast {
	return t.cell.Get()
}

// Show adds a toast and returns its ID. A non-positive duration keeps the toast
// until it is removed explicitly.
func (t *Toasts) Show(kind ToastKind, message string, duration time.Duration) string {
	toast := Toast{
		ID:       "toast-" + uuid.NewString(),
		Kind:     kind,
		Message:  message,
		Duration: duration,
	}
	t.cell.Update(func(list []Toast) []Toast {
		next := make([]Toast, 0, len(list)+1)
		next = append(next, list...)
		return append(next, toast)
	})

	if duration > 0 {
		t.mu.Lock()
		t.timers[toast.ID] = time.AfterFunc(duration, func() { t.Remove(toast.ID) })
		t.mu.Unlock()
	}
	return toast.ID
}

func (t *Toasts) Success(message string) string { return t.Show(ToastSuccess, message, SuccessDuration) }
func (t *Toasts) Error(message string) string   { return t.Show(ToastError, message, ErrorDuration) }
func (t *Toasts) Info(message string) string    { return t.Show(ToastInfo, message, InfoDuration) }
func (t *Toasts) Warning(message string) string { return t.Show(ToastWarning, message, WarningDuration) }

// Remove dismisses a toast. Unknown IDs are ignored.
func (t *Toasts) Remove(id string) {
	t.mu.Lock()
	if timer, ok := t.timers[id]; ok {
		timer.Stop()
		delete(t.timers, id)
	}
	t.mu.Unlock()

	t.cell.Update(func(list []Toast) []Toast {
		next := make([]Toast, 0, len(list))
		for _, toast := range list {
			if toast.ID != id {
				next = append(next, toast)
			}
		}
		return next
	})
}

// Clear dismisses every toast.
func (t *Toasts) Clear() {
	t.mu.Lock()
	for id, timer := range t.timers {
		timer.Stop()
		delete(t.timers, id)
	}
	t.mu.Unlock()
	t.cell.Set([]Toast{})
}
