package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ladder/internal/adapters/watcher"
)

type recorder struct {
	mu    sync.Mutex
	calls [][]string
}

func (r *recorder) record(paths []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, paths)
}

func (r *recorder) snapshot() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec recorder
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("/dict/words.txt")
		time.Sleep(50 * time.Millisecond)
		d.Add("/dict/words.txt")
		d.Add("/dict/extra.txt")

		time.Sleep(80 * time.Millisecond)
		synctest.Wait()
		assert.Empty(t, rec.snapshot(), "window restarts on every Add")

		time.Sleep(50 * time.Millisecond)
		synctest.Wait()
		calls := rec.snapshot()
		require.Len(t, calls, 1)
		assert.Equal(t, []string{"/dict/extra.txt", "/dict/words.txt"}, calls[0])
	})
}

func TestDebouncer_SeparateWindows(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec recorder
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("/dict/words.txt")
		time.Sleep(150 * time.Millisecond)
		d.Add("/dict/words.txt")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Len(t, rec.snapshot(), 2)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec recorder
		d := watcher.NewDebouncer(time.Second, rec.record)

		d.Add("/dict/words.txt")
		d.Flush()
		require.Len(t, rec.snapshot(), 1)

		time.Sleep(2 * time.Second)
		synctest.Wait()
		assert.Len(t, rec.snapshot(), 1, "flushed paths are not delivered again")
	})
}

func TestDebouncer_FlushEmptyAndNilCallback(t *testing.T) {
	d := watcher.NewDebouncer(time.Millisecond, nil)
	d.Flush()
	d.Add("/dict/words.txt")
	d.Flush()
}
