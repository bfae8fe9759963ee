package reactive

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCell(t *testing.T) {
	c := NewCell("count", 1)
	require.Equal(t, "count", c.Name())
	require.Equal(t, 1, c.Get())

	var seen []int
	unsubscribe := c.Watch(func(v int) { seen = append(seen, v) })

	c.Set(2)
	c.Update(func(v int) int { return v * 10 })
	require.Equal(t, 20, c.Get())
	require.Equal(t, []int{2, 20}, seen)

	unsubscribe()
	unsubscribe()
	c.Set(3)
	require.Equal(t, []int{2, 20}, seen)
}

func TestComputed(t *testing.T) {
	items := NewCell("items", []int{1, 2, 3, 4})
	threshold := NewCell("threshold", 2)

	calls := 0
	above := NewComputed(func() []int {
		calls++
		out := []int{}
		for _, v := range items.Get() {
			if v > threshold.Get() {
				out = append(out, v)
			}
		}
		return out
	}, items, threshold)
	require.Equal(t, []int{3, 4}, above.Get())
	require.Equal(t, 1, calls)

	count := NewComputed(func() int { return len(above.Get()) }, above)
	require.Equal(t, 2, count.Get())

	var notified []int
	count.Watch(func(v int) { notified = append(notified, v) })

	threshold.Set(0)
	require.Equal(t, []int{1, 2, 3, 4}, above.Get())
	require.Equal(t, 4, count.Get())

	items.Update(func(v []int) []int { return append(append([]int{}, v...), 5) })
	require.Equal(t, 5, count.Get())
	require.Equal(t, []int{4, 5}, notified)

	above.Close()
	threshold.Set(10)
	require.Equal(t, 5, count.Get())
}

func TestCellConcurrentUpdates(t *testing.T) {
	c := NewCell("n", 0)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Update(func(v int) int { return v + 1 })
		}()
	}
	wg.Wait()
	require.Equal(t, 50, c.Get())
}
