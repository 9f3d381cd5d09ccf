// Package hero serves the banner particle field and typed text.
package hero

import (
	"net/http"
	"time"

	module "github.com/louisbranch/datalab/internal/services/site/module"
	"github.com/louisbranch/datalab/internal/services/site/routepath"
)

// DefaultStreamInterval is the event stream period when none is configured.
const DefaultStreamInterval = 100 * time.Millisecond

// Module provides the hero field and typing routes.
type Module struct{}

// New returns the hero module.
func New() Module {
	return Module{}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "hero"
}

// Mount wires hero routes.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(deps)
	mux.HandleFunc(http.MethodGet+" "+routepath.HeroSVG, h.handleSVG)
	mux.HandleFunc(http.MethodGet+" "+routepath.HeroPNG, h.handlePNG)
	mux.HandleFunc(http.MethodGet+" "+routepath.HeroTyping, h.handleTyping)
	mux.HandleFunc(http.MethodGet+" "+routepath.HeroStream, h.handleStream)
	return module.Mount{Prefix: routepath.HeroPrefix, Handler: mux}, nil
}
