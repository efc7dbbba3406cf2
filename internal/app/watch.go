package app

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"meadow/internal/growth"
	"meadow/internal/sims/meadow"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file whenever it changes and publishes the growth
// parameters it contains. Only the latest unread update is kept.
type Watcher struct {
	path    string
	fsw     *fsnotify.Watcher
	updates chan growth.Params
	done    chan struct{}
	log     *slog.Logger
}

// WatchConfig starts watching path. The containing directory is watched so
// editors that replace the file on save are handled too.
func WatchConfig(path string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	w := &Watcher{
		path:    abs,
		fsw:     fsw,
		updates: make(chan growth.Params, 1),
		done:    make(chan struct{}),
		log:     logger.With("config", abs),
	}
	go w.loop()
	return w, nil
}

// Updates delivers reloaded parameters.
func (w *Watcher) Updates() <-chan growth.Params { return w.updates }

// Close stops watching. Updates is not closed.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			w.reload()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("config watcher error", "err", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := meadow.LoadConfig(w.path)
	if err != nil {
		w.log.Warn("config reload failed, keeping current parameters", "err", err)
		return
	}
	w.publish(cfg.Params)
	w.log.Info("config reloaded")
}

func (w *Watcher) publish(p growth.Params) {
	select {
	case w.updates <- p:
		return
	default:
	}
	select {
	case <-w.updates:
	default:
	}
	w.updates <- p
}
