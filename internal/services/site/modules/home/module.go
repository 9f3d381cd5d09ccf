// Package home serves the single site page and its shared endpoints.
package home

import (
	"net/http"
	"strings"

	module "github.com/louisbranch/datalab/internal/services/site/module"
	"github.com/louisbranch/datalab/internal/services/site/routepath"
)

// Module serves the page root, the overlay close fragment and health.
type Module struct {
	prefix string
}

// New returns the home module mounted at the root prefix.
func New() Module {
	return Module{prefix: routepath.Root}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "home"
}

// Mount wires home routes.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	prefix := strings.TrimSpace(m.prefix)
	if prefix == "" {
		prefix = routepath.Root
	}
	return module.Mount{Prefix: prefix, Handler: mux}, nil
}
