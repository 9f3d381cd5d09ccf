// Package controller holds the page interaction state and the event table
// that changes it. A Session is built per request from the URL and form
// values; handlers render from it afterwards.
package controller

import (
	"sync"

	"github.com/louisbranch/datalab/internal/content"
	"github.com/louisbranch/datalab/internal/forms"
	"github.com/louisbranch/datalab/internal/reveal"
	"github.com/louisbranch/datalab/internal/services/site/view"
)

// RevealGroupProjects is the reveal group rescanned after the grid changes.
const RevealGroupProjects = "projects"

// Catalog is the read side of the content store used by a session.
type Catalog interface {
	Projects() []content.Project
	Project(id string) (content.Project, bool)
	Counts() map[content.Filter]int
}

// Ack is the acknowledgment shown after a form submission.
type Ack struct {
	Kind    forms.Kind
	Receipt string
}

// Session is the interaction state of one page view. It lives for a single
// request: the URL carries state between requests, and the reveal tracker it
// rescans is discarded with it. Only the tracker options reach the browser,
// whose observer flags elements on the page.
type Session struct {
	catalog Catalog
	copy    view.Copy
	tracker *reveal.Tracker

	mu       sync.Mutex
	filter   content.Filter
	overlay  *view.DetailView
	scroll   bool
	menuOpen bool
	acks     map[forms.Kind]Ack
	fields   map[forms.Kind]map[string]string
}

// NewSession creates a session showing every project with the overlay closed.
func NewSession(catalog Catalog, copy view.Copy, opts reveal.Options) *Session {
	s := &Session{
		catalog: catalog,
		copy:    copy,
		tracker: reveal.NewTracker(opts),
		filter:  content.FilterAll,
		acks:    map[forms.Kind]Ack{},
		fields:  map[forms.Kind]map[string]string{},
	}
	for _, kind := range forms.Kinds() {
		s.fields[kind] = emptyFields(kind)
	}
	s.tracker.Rescan(RevealGroupProjects, view.RevealIDs(s.Projects())...)
	return s
}

func emptyFields(kind forms.Kind) map[string]string {
	fields := map[string]string{}
	for _, name := range kind.Fields() {
		fields[name] = ""
	}
	return fields
}

// Filter returns the active filter.
func (s *Session) Filter() content.Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// Projects builds the gallery cards for the active filter.
func (s *Session) Projects() []view.ProjectCard {
	return view.Projects(s.projects(), s.Filter(), s.copy)
}

// Filters builds the filter bar for the active filter.
func (s *Session) Filters() []view.FilterControl {
	var counts map[content.Filter]int
	if s.catalog != nil {
		counts = s.catalog.Counts()
	}
	return view.Filters(s.Filter(), counts, s.copy)
}

func (s *Session) projects() []content.Project {
	if s.catalog == nil {
		return nil
	}
	return s.catalog.Projects()
}

// Overlay returns the open detail overlay, if any.
func (s *Session) Overlay() (view.DetailView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.overlay == nil {
		return view.DetailView{}, false
	}
	return *s.overlay, true
}

// ScrollLocked reports whether background scrolling is suspended.
func (s *Session) ScrollLocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scroll
}

// MenuOpen reports whether the mobile menu is expanded.
func (s *Session) MenuOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.menuOpen
}

// Ack returns the acknowledgment for kind, if the form was submitted.
func (s *Session) Ack(kind forms.Kind) (Ack, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ack, ok := s.acks[kind]
	return ack, ok
}

// Acks returns every acknowledgment shown in this session.
func (s *Session) Acks() []Ack {
	s.mu.Lock()
	defer s.mu.Unlock()
	acks := make([]Ack, 0, len(s.acks))
	for _, kind := range forms.Kinds() {
		if ack, ok := s.acks[kind]; ok {
			acks = append(acks, ack)
		}
	}
	return acks
}

// Fields returns the current values of the form fields.
func (s *Session) Fields(kind forms.Kind) map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.fields[kind]))
	for k, v := range s.fields[kind] {
		out[k] = v
	}
	return out
}

// Tracker returns the reveal tracker of the session.
func (s *Session) Tracker() *reveal.Tracker {
	return s.tracker
}
