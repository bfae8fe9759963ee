package client

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToasts_ShowAndRemove(t *testing.T) {
	toasts := NewToasts()
	defer toasts.Clear()

	id := toasts.Success("saved")
	assert.True(t, strings.HasPrefix(id, "toast-"))

	list := toasts.List()
	require.Len(t, list, 1)
	assert.Equal(t, ToastSuccess, list[0].Kind)
	assert.Equal(t, SuccessDuration, list[0].Duration)

	toasts.Remove(id)
	assert.Empty(t, toasts.List())

	toasts.Remove("missing")
	assert.Empty(t, toasts.List())
}

func TestToasts_DefaultDurations(t *testing.T) {
	toasts := NewToasts()
	defer toasts.Clear()

	toasts.Error("e")
	toasts.Info("i")
	toasts.Warning("w")

	list := toasts.List()
	require.Len(t, list, 3)
	assert.Equal(t, 5*time.Second, list[0].Duration)
	assert.Equal(t, 3*time.Second, list[1].Duration)
	assert.Equal(t, 4*time.Second, list[2].Duration)
}

func TestToasts_AutoDismiss(t *testing.T) {
	toasts := NewToasts()
	toasts.Show(ToastInfo, "brief", 10*time.Millisecond)
	toasts.Show(ToastInfo, "sticky", 0)

	require.Eventually(t, func() bool { return len(toasts.List()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "sticky", toasts.List()[0].Message)
}

func TestToasts_Observable(t *testing.T) {
	toasts := NewToasts()
	defer toasts.Clear()

	var seen []int
	stop := toasts.Cell().Watch(func(list []Toast) { seen = append(seen, len(list)) })
	defer stop()

	id := toasts.Show(ToastWarning, "w", 0)
	toasts.Remove(id)
	assert.Equal(t, []int{1, 0}, seen)
}
