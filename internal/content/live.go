package content

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long Watch waits for a burst of file events to
// settle before reloading.
const DefaultDebounce = 250 * time.Millisecond

// Live serves the most recent Store loaded from a Location. A failed reload
// keeps the previous Store.
type Live struct {
	location Location
	current  atomic.Pointer[Store]
	logger   *log.Logger
	debounce time.Duration
}

// LiveOption configures a Live.
type LiveOption func(*Live)

// WithLiveLogger routes reload logs to logger.
func WithLiveLogger(logger *log.Logger) LiveOption {
	return func(l *Live) {
		l.logger = logger
	}
}

// WithDebounce sets the settle delay used by Watch.
func WithDebounce(d time.Duration) LiveOption {
	return func(l *Live) {
		if d > 0 {
			l.debounce = d
		}
	}
}

// NewLive wraps an already loaded store.
func NewLive(location Location, store *Store, opts ...LiveOption) *Live {
	l := &Live{location: location, debounce: DefaultDebounce}
	for _, opt := range opts {
		opt(l)
	}
	l.current.Store(store)
	return l
}

// Store returns the current store.
func (l *Live) Store() *Store {
	if l == nil {
		return nil
	}
	return l.current.Load()
}

// Projects returns every project of the current store.
func (l *Live) Projects() []Project { return l.Store().Projects() }

// FilteredProjects filters the current store.
func (l *Live) FilteredProjects(filter Filter) []Project { return l.Store().FilteredProjects(filter) }

// Project looks id up in the current store.
func (l *Live) Project(id string) (Project, bool) { return l.Store().Project(id) }

// Members returns the members of the current store.
func (l *Live) Members() []Member { return l.Store().Members() }

// Department returns the department of the current store.
func (l *Live) Department() Department { return l.Store().Department() }

// Counts reports the status counts of the current store.
func (l *Live) Counts() map[Filter]int { return l.Store().Counts() }

// Reload opens the location again and swaps the store in on success.
func (l *Live) Reload(ctx context.Context) error {
	store, err := l.location.Open(ctx)
	if err != nil {
		return fmt.Errorf("reload content: %w", err)
	}
	l.current.Store(store)
	return nil
}

// Watch reloads whenever a YAML file in the location directory changes and
// returns when ctx ends. Only directory locations can be watched.
func (l *Live) Watch(ctx context.Context) error {
	if strings.TrimSpace(l.location.DSN) != "" {
		return errors.New("content watch needs a directory location, got " + l.location.String())
	}
	dir := strings.TrimSpace(l.location.Dir)
	if dir == "" {
		return errors.New("content watch needs a directory location")
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create content watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	timer := time.NewTimer(l.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isContentEvent(event) {
				continue
			}
			timer.Reset(l.debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			l.logf("content watch error dir=%s: %v", dir, err)
		case <-timer.C:
			if err := l.Reload(ctx); err != nil {
				l.logf("content reload kept previous data: %v", err)
				continue
			}
			store := l.Store()
			l.logf("content reloaded source=%s projects=%d members=%d", l.location, len(store.Projects()), len(store.Members()))
		}
	}
}

func isContentEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return false
	}
	switch strings.ToLower(filepath.Ext(event.Name)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func (l *Live) logf(format string, args ...any) {
	if l.logger != nil {
		l.logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}
