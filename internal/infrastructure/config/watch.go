package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to the config file.
type Watcher struct {
	watcher *fsnotify.Watcher
	changes chan struct{}
	errs    chan error
}

// Watch starts watching the store's config file. The parent directory is watched
// so that editors which replace the file on save are still seen.
func (s *Store) Watch() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(s.configPath)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fw,
		changes: make(chan struct{}, 1),
		errs:    make(chan error, 1),
	}
	go w.run(filepath.Clean(s.configPath))
	return w, nil
}

func (w *Watcher) run(target string) {
	defer close(w.errs)
	defer close(w.changes)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			select {
			case w.changes <- struct{}{}:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}

// Changes is signalled after the file is written. Bursts collapse into one signal.
// The channel is closed when the watcher stops.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Errors carries watcher failures. It is closed together with Changes.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
