// Package file implements a Document Source reading design-tool exports
// from a local directory.
//
// Each file is expected at <dir>/<fileKey>.json. The adapter also
// supports watch mode: Watch emits the file key of every changed export,
// debounced so editors that save in bursts produce a single event.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/designctx-cli/internal/core/domain"
	"github.com/custodia-labs/designctx-cli/internal/core/ports/driven"
	"github.com/custodia-labs/designctx-cli/internal/logger"
)

const (
	// SourceName identifies this adapter in document metadata.
	SourceName = "file"

	// exportExt is the expected extension of export payloads.
	exportExt = ".json"

	// debounceDelay coalesces rapid successive writes to one file.
	debounceDelay = 200 * time.Millisecond
)

// Ensure Source implements the interfaces.
var (
	_ driven.DocumentSource  = (*Source)(nil)
	_ driven.WatchableSource = (*Source)(nil)
)

// Source reads raw design trees from a local export directory.
type Source struct {
	dir string
}

// NewSource creates a file-backed document source reading from dir.
func NewSource(dir string) *Source {
	return &Source{dir: dir}
}

// Name identifies the adapter.
func (s *Source) Name() string {
	return SourceName
}

// FetchDocument reads and decodes the export for one file key.
func (s *Source) FetchDocument(_ context.Context, fileKey string) (*domain.RawFile, error) {
	if fileKey == "" {
		return nil, domain.ErrEmptyFileKey
	}
	if s.dir == "" {
		return nil, fmt.Errorf("export directory not configured: %w", domain.ErrSourceUnavailable)
	}

	// Keys must stay inside the export directory.
	if strings.Contains(fileKey, "..") || strings.ContainsAny(fileKey, `/\`) {
		return nil, fmt.Errorf("file key %q: %w", fileKey, domain.ErrInvalidInput)
	}

	path := filepath.Join(s.dir, fileKey+exportExt)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("export %s: %w", fileKey, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("reading export %s: %w", fileKey, err)
	}

	var raw domain.RawFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding export %s: %w", fileKey, err)
	}
	return &raw, nil
}

// Watch emits the file key of each changed export until ctx is
// cancelled. The channel is closed on return.
func (s *Source) Watch(ctx context.Context) (<-chan domain.SourceChange, error) {
	if s.dir == "" {
		return nil, fmt.Errorf("export directory not configured: %w", domain.ErrSourceUnavailable)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("starting watcher: %w", err)
	}
	if err := watcher.Add(s.dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", s.dir, err)
	}

	changes := make(chan domain.SourceChange)
	go s.watchLoop(ctx, watcher, changes)
	return changes, nil
}

// watchLoop forwards debounced export changes until ctx is cancelled.
func (s *Source) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, changes chan<- domain.SourceChange) {
	defer close(changes)
	defer watcher.Close()

	// Keys accumulate while writes keep arriving and flush together once
	// the directory goes quiet for debounceDelay.
	pending := make(map[string]bool)
	var flush <-chan time.Time
	var timer *time.Timer

	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(debounceDelay)
			flush = timer.C
		} else {
			timer.Reset(debounceDelay)
		}
	}

	logger.Info("Watching %s for export changes", s.dir)

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logger.Debug("Watcher for %s stopped", s.dir)
			return

		case <-flush:
			for key := range pending {
				delete(pending, key)
				select {
				case changes <- domain.SourceChange{FileKey: key}:
				case <-ctx.Done():
					return
				}
			}

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			// Atomic saves land as Create on the destination name, so
			// Create and Write together cover every editor.
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			name := filepath.Base(event.Name)
			if !strings.HasSuffix(name, exportExt) {
				continue
			}
			pending[strings.TrimSuffix(name, exportExt)] = true
			schedule()

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Watcher error: %v", watchErr)
		}
	}
}
