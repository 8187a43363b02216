package tui

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/colonyops/innview/internal/core/catalog"
)

// catalogReloadedMsg is sent after the catalog was re-read from disk.
type catalogReloadedMsg struct {
	catalog *catalog.Catalog
}

// catalogReloadFailedMsg is sent when a change was seen but the new catalog
// could not be loaded. The previous catalog stays active.
type catalogReloadFailedMsg struct {
	err error
}

// ReloadFunc re-reads the catalog.
type ReloadFunc func() (*catalog.Catalog, error)

// CatalogWatcher watches the catalog's directory tree, which also holds the
// files matched by image globs.
type CatalogWatcher struct {
	watcher     *fsnotify.Watcher
	dir         string
	reload      ReloadFunc
	debounceDur time.Duration
}

// NewCatalogWatcher creates a watcher for the directory containing
// catalogPath.
func NewCatalogWatcher(catalogPath string, reload ReloadFunc) (*CatalogWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &CatalogWatcher{
		watcher:     watcher,
		dir:         filepath.Dir(catalogPath),
		reload:      reload,
		debounceDur: 150 * time.Millisecond,
	}

	if err := w.addRecursive(w.dir); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	return w, nil
}

// Start returns a command that blocks until the next relevant change and
// reports the reload result. Re-issue it after each message to keep
// watching.
func (w *CatalogWatcher) Start() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return nil
				}

				if shouldIgnore(event.Name) {
					continue
				}

				if event.Has(fsnotify.Create) {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						_ = w.addRecursive(event.Name)
					}
				}

				// Editors write in bursts; wait for the burst to end.
				time.Sleep(w.debounceDur)
				drained := false
				for !drained {
					select {
					case <-w.watcher.Events:
					default:
						drained = true
					}
				}

				cat, err := w.reload()
				if err != nil {
					return catalogReloadFailedMsg{err: err}
				}
				return catalogReloadedMsg{catalog: cat}

			case _, ok := <-w.watcher.Errors:
				if !ok {
					return nil
				}
			}
		}
	}
}

// Close stops watching. Pending Start commands return nil.
func (w *CatalogWatcher) Close() error {
	return w.watcher.Close()
}

// addRecursive adds a directory and all its subdirectories to the watcher.
func (w *CatalogWatcher) addRecursive(path string) error {
	return filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if p != path && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return w.watcher.Add(p)
		}
		return nil
	})
}

// shouldIgnore filters editor swap files and hidden files.
func shouldIgnore(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".") ||
		strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".tmp")
}
