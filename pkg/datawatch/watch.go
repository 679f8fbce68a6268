// Package datawatch reloads a data file when it changes on disk.
package datawatch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/filetug/filedeck/pkg/files"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

var (
	newWatcher = fsnotify.NewWatcher
	loadFile   = files.LoadFile
)

type options struct {
	log zerolog.Logger
}

type Option func(o *options)

func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// Watch calls onLoad with the freshly decoded records every time filePath is
// written or re-created. Files that fail to decode are logged and skipped.
// It blocks until ctx is done.
//
// The parent directory is watched so that editors that replace the file
// on save keep triggering reloads.
func Watch(ctx context.Context, filePath string, onLoad func(records []files.FileRecord), o ...Option) error {
	opts := options{log: zerolog.Nop()}
	for _, option := range o {
		option(&opts)
	}
	filePath = filepath.Clean(filePath)

	watcher, err := newWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()
	if err = watcher.Add(filepath.Dir(filePath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filePath, err)
	}
	opts.log.Info().Str("file", filePath).Msg("watching data file")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filePath || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			records, err := loadFile(filePath)
			if err != nil {
				opts.log.Error().Err(err).Msg("data file reload failed, keeping current records")
				continue
			}
			opts.log.Info().Int("records", len(records)).Msg("data file reloaded")
			onLoad(records)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			opts.log.Warn().Err(err).Msg("file watcher error")
		}
	}
}
