package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func startWatcher(t *testing.T, w *Watcher) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx) }()
	// Give fsnotify time to register the directory
	time.Sleep(100 * time.Millisecond)
	return cancel, done
}

func TestWatchDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inventory.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sites: []\n"), 0644))

	var calls atomic.Int32
	w := New(path, func(context.Context) { calls.Add(1) }).
		WithDebounce(150 * time.Millisecond).
		WithLogger(zap.NewNop())

	cancel, done := startWatcher(t, w)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("sites: []\n"), 0644))
		time.Sleep(10 * time.Millisecond)
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 20*time.Millisecond)
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load(), "burst of writes should fire once")

	cancel()
	assert.True(t, errors.Is(<-done, context.Canceled))
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inventory.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sites: []\n"), 0644))

	var calls atomic.Int32
	w := New(path, func(context.Context) { calls.Add(1) }).WithDebounce(50 * time.Millisecond)

	cancel, done := startWatcher(t, w)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0644))
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())

	cancel()
	<-done
}

func TestWatchMissingDirectory(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "missing", "inventory.yaml"), func(context.Context) {})
	err := w.Watch(context.Background())
	assert.Error(t, err)
}

func TestWithDebounceIgnoresNonPositive(t *testing.T) {
	w := New("inventory.yaml", func(context.Context) {}).WithDebounce(0)
	assert.Equal(t, DefaultDebounce, w.debounce)
}
