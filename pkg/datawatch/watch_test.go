package datawatch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/filetug/filedeck/pkg/files"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const oneRecord = `- id: "1"
  name: first
  path: /file-server/a.mp4
  type: video
`

const twoRecords = oneRecord + `- id: "2"
  name: second
  path: /file-server/b.mp3
  type: audio
`

func TestWatch_Reloads(t *testing.T) {
	dir := t.TempDir()
	dataFile := filepath.Join(dir, "records.yaml")
	require.NoError(t, os.WriteFile(dataFile, []byte(oneRecord), 0o644))

	var (
		mu     sync.Mutex
		loaded [][]files.FileRecord
	)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, dataFile, func(records []files.FileRecord) {
			mu.Lock()
			defer mu.Unlock()
			loaded = append(loaded, records)
		})
	}()

	// Keep rewriting until the watcher is up and has seen a write.
	require.Eventually(t, func() bool {
		_ = os.WriteFile(dataFile, []byte(twoRecords), 0o644)
		mu.Lock()
		defer mu.Unlock()
		return len(loaded) > 0
	}, 5*time.Second, 50*time.Millisecond)

	mu.Lock()
	last := loaded[len(loaded)-1]
	mu.Unlock()
	assert.Len(t, last, 2)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not stop after cancel")
	}
}

func TestWatch_KeepsRecordsOnDecodeError(t *testing.T) {
	dir := t.TempDir()
	dataFile := filepath.Join(dir, "records.yaml")
	require.NoError(t, os.WriteFile(dataFile, []byte(oneRecord), 0o644))

	var attempts atomic.Int32
	oldLoadFile := loadFile
	loadFile = func(string) ([]files.FileRecord, error) {
		attempts.Add(1)
		return nil, errors.New("unknown file type")
	}
	defer func() {
		loadFile = oldLoadFile
	}()

	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, dataFile, func([]files.FileRecord) {
			calls.Add(1)
		})
	}()

	require.Eventually(t, func() bool {
		_ = os.WriteFile(filepath.Join(dir, "other.yaml"), []byte(twoRecords), 0o644)
		_ = os.WriteFile(dataFile, []byte(twoRecords), 0o644)
		return attempts.Load() > 0
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	<-done
	assert.Zero(t, calls.Load())
}

func TestWatch_NewWatcherError(t *testing.T) {
	old := newWatcher
	defer func() {
		newWatcher = old
	}()
	newWatcher = func() (*fsnotify.Watcher, error) {
		return nil, errors.New("too many open files")
	}
	err := Watch(context.Background(), "/tmp/x.yaml", func([]files.FileRecord) {})
	assert.ErrorContains(t, err, "failed to create file watcher")
}

func TestWatch_MissingDir(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "x.yaml"), func([]files.FileRecord) {})
	assert.ErrorContains(t, err, "failed to watch")
}
