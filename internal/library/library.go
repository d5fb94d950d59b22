// Package library tracks the viewable documents in a directory, kept
// current with a filesystem watcher.
package library

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/rgould/citeview/internal/render"
)

// Entry is one viewable document in the library directory.
type Entry struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// Library lists the supported documents under a directory and refreshes
// the listing when files are created, changed, or removed.
type Library struct {
	dir string
	log *slog.Logger

	mu      sync.Mutex
	entries map[string]Entry

	watcher *fsnotify.Watcher
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// Open scans the directory and starts the watcher.
func Open(dir string, log *slog.Logger) (*Library, error) {
	l := &Library{
		dir:     dir,
		log:     log,
		entries: make(map[string]Entry),
	}
	if err := l.scan(); err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	l.watcher = w

	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.wg.Add(1)
	go l.watch(ctx)

	return l, nil
}

// Close stops the watcher.
func (l *Library) Close() {
	if l.cancel != nil {
		l.cancel()
	}
	if l.watcher != nil {
		l.watcher.Close()
	}
	l.wg.Wait()
}

// List returns the current entries sorted by name.
func (l *Library) List() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, 0, len(l.entries))
	for _, e := range l.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Path resolves a library entry name to its file path. The name must be a
// bare filename present in the listing.
func (l *Library) Path(name string) (string, error) {
	if name != filepath.Base(name) {
		return "", fmt.Errorf("invalid document name: %s", name)
	}
	l.mu.Lock()
	_, ok := l.entries[name]
	l.mu.Unlock()
	if !ok {
		return "", fmt.Errorf("document not found: %s", name)
	}
	return filepath.Join(l.dir, name), nil
}

func (l *Library) scan() error {
	files, err := os.ReadDir(l.dir)
	if err != nil {
		return fmt.Errorf("read docs dir: %w", err)
	}

	entries := make(map[string]Entry)
	for _, f := range files {
		if f.IsDir() || !render.IsSupportedExtension(f.Name()) {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		entries[f.Name()] = Entry{Name: f.Name(), Size: info.Size()}
	}

	l.mu.Lock()
	l.entries = entries
	l.mu.Unlock()
	return nil
}

func (l *Library) watch(ctx context.Context) {
	defer l.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-l.watcher.Events:
			if !ok {
				return
			}
			if !render.IsSupportedExtension(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if err := l.scan(); err != nil {
				l.log.Warn("library rescan failed", "error", err)
			}
		case err, ok := <-l.watcher.Errors:
			if !ok {
				return
			}
			l.log.Warn("library watcher error", "error", err)
		}
	}
}
