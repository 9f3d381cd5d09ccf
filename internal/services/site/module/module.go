// Package module defines the feature contract used by site composition.
package module

import (
	"log"
	"net/http"
	"time"

	"github.com/louisbranch/datalab/internal/content"
	"github.com/louisbranch/datalab/internal/particles"
	"github.com/louisbranch/datalab/internal/reveal"
	"github.com/louisbranch/datalab/internal/services/site/controller"
	"github.com/louisbranch/datalab/internal/services/site/view"
)

// Content is the read side of the content store.
type Content interface {
	controller.Catalog
	Members() []content.Member
	Department() content.Department
}

// FieldSource provides the current particle frame.
type FieldSource interface {
	Snapshot() particles.Frame
}

// TypingSource provides the current hero text.
type TypingSource interface {
	Current() string
}

// Dependencies carries the shared collaborators modules mount with.
type Dependencies struct {
	Content Content
	Field   FieldSource
	Typing  TypingSource
	Events  *controller.Table
	Reveal  reveal.Options
	// StreamInterval is the hero event stream period.
	StreamInterval time.Duration
	Logger         *log.Logger
}

// NewSession builds the interaction state for one request.
func (d Dependencies) NewSession(copy view.Copy) *controller.Session {
	return controller.NewSession(d.Content, copy, d.Reveal)
}

// Logf logs through the configured logger or the standard logger.
func (d Dependencies) Logf(format string, args ...any) {
	if d.Logger != nil {
		d.Logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by site composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}

// EventTable returns the configured event table or a discarding default.
func (d Dependencies) EventTable() *controller.Table {
	if d.Events != nil {
		return d.Events
	}
	return controller.NewTable(nil, controller.WithLogger(d.Logger))
}
