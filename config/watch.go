package config

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the burst of events an editor save produces
const DefaultDebounce = 100 * time.Millisecond

// Watcher reloads a config file when it changes on disk
type Watcher struct {
	path     string
	fw       *fsnotify.Watcher
	Debounce time.Duration
}

// NewWatcher starts watching the directory holding path
// Editors often replace the file rather than write it, so the directory is watched
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	return &Watcher{path: abs, fw: fw, Debounce: DefaultDebounce}, nil
}

// Run delivers each successfully reloaded config to onChange until ctx is done
// Load failures go to onError, nil onError logs them
func (w *Watcher) Run(ctx context.Context, onChange func(*Config), onError func(error)) error {
	defer w.fw.Close()

	if onError == nil {
		onError = func(err error) { log.Printf("config reload: %v", err) }
	}

	var reload <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				reload = time.After(w.Debounce)
			}

		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			onError(err)

		case <-reload:
			reload = nil
			cfg, err := Load(w.path)
			if err != nil {
				onError(err)
				continue
			}
			log.Printf("config reloaded from %s", w.path)
			onChange(cfg)
		}
	}
}

// Watch is NewWatcher followed by Run
func Watch(ctx context.Context, path string, onChange func(*Config), onError func(error)) error {
	w, err := NewWatcher(path)
	if err != nil {
		return err
	}
	return w.Run(ctx, onChange, onError)
}
