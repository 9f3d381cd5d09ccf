package controller

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/louisbranch/datalab/internal/content"
	"github.com/louisbranch/datalab/internal/forms"
	apperrors "github.com/louisbranch/datalab/internal/services/site/platform/errors"
	"github.com/louisbranch/datalab/internal/services/site/view"
)

// Event names.
const (
	EventFilterSelect  = "filter.select"
	EventDetailOpen    = "detail.open"
	EventDetailClose   = "detail.close"
	EventSubmitContact = "form.submit.contact"
	EventSubmitApply   = "form.submit.apply"
	EventMenuToggle    = "menu.toggle"
	EventMenuLink      = "menu.link"
)

// Event is one user interaction.
type Event struct {
	Name  string
	Value string
	Form  map[string]string
}

// Handler applies an event to a session.
type Handler func(ctx context.Context, s *Session, ev Event) error

// Table maps event names to handlers.
type Table struct {
	handlers  map[string]Handler
	submitter forms.Submitter
	logger    *log.Logger
	now       func() time.Time
}

// Option configures NewTable.
type Option func(*Table)

// WithLogger routes submitter failures to logger.
func WithLogger(logger *log.Logger) Option {
	return func(t *Table) { t.logger = logger }
}

// WithClock overrides the submission timestamp source.
func WithClock(now func() time.Time) Option {
	return func(t *Table) { t.now = now }
}

// NewTable registers every site event. A nil submitter discards payloads.
func NewTable(submitter forms.Submitter, opts ...Option) *Table {
	if submitter == nil {
		submitter = forms.Discard
	}
	t := &Table{submitter: submitter, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	t.handlers = map[string]Handler{
		EventFilterSelect:  selectFilter,
		EventDetailOpen:    openDetail,
		EventDetailClose:   closeDetail,
		EventSubmitContact: t.submit(forms.KindContact),
		EventSubmitApply:   t.submit(forms.KindApply),
		EventMenuToggle:    toggleMenu,
		EventMenuLink:      closeMenu,
	}
	return t
}

// Events lists the registered event names.
func (t *Table) Events() []string {
	return []string{
		EventFilterSelect,
		EventDetailOpen,
		EventDetailClose,
		EventSubmitContact,
		EventSubmitApply,
		EventMenuToggle,
		EventMenuLink,
	}
}

// Dispatch applies ev to s.
func (t *Table) Dispatch(ctx context.Context, s *Session, ev Event) error {
	if s == nil {
		return fmt.Errorf("dispatch %q: session is required", ev.Name)
	}
	h, ok := t.handlers[strings.TrimSpace(ev.Name)]
	if !ok {
		return apperrors.E(apperrors.KindInvalidInput, fmt.Sprintf("unknown event %q", ev.Name))
	}
	return h(ctx, s, ev)
}

func selectFilter(_ context.Context, s *Session, ev Event) error {
	filter := content.ParseFilter(ev.Value)
	s.mu.Lock()
	s.filter = filter
	s.mu.Unlock()
	s.tracker.Rescan(RevealGroupProjects, view.RevealIDs(s.Projects())...)
	return nil
}

func openDetail(_ context.Context, s *Session, ev Event) error {
	id := strings.TrimSpace(ev.Value)
	if s.catalog == nil {
		return apperrors.EK(apperrors.KindNotFound, "core.error.project_not_found", fmt.Sprintf("project %q not found", id))
	}
	project, ok := s.catalog.Project(id)
	if !ok {
		return apperrors.EK(apperrors.KindNotFound, "core.error.project_not_found", fmt.Sprintf("project %q not found", id))
	}
	detail := view.Detail(project, s.copy)
	s.mu.Lock()
	detail.CloseURL = view.CloseURL(s.filter)
	s.overlay = &detail
	s.scroll = true
	s.mu.Unlock()
	return nil
}

func closeDetail(_ context.Context, s *Session, _ Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.overlay == nil {
		return nil
	}
	s.overlay = nil
	s.scroll = false
	return nil
}

func toggleMenu(_ context.Context, s *Session, _ Event) error {
	s.mu.Lock()
	s.menuOpen = !s.menuOpen
	s.mu.Unlock()
	return nil
}

func closeMenu(_ context.Context, s *Session, _ Event) error {
	s.mu.Lock()
	s.menuOpen = false
	s.mu.Unlock()
	return nil
}

func (t *Table) submit(kind forms.Kind) Handler {
	return func(ctx context.Context, s *Session, ev Event) error {
		payload := forms.NewPayload(kind, ev.Form, t.now())
		if err := t.submitter.Submit(ctx, payload); err != nil {
			t.logf("form delivery failed kind=%s receipt=%s err=%v", kind, payload.Receipt, err)
		}
		s.mu.Lock()
		s.acks[kind] = Ack{Kind: kind, Receipt: payload.Receipt}
		s.fields[kind] = emptyFields(kind)
		s.mu.Unlock()
		return nil
	}
}

func (t *Table) logf(format string, args ...any) {
	if t.logger != nil {
		t.logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}
