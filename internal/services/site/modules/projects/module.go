// Package projects serves the gallery grid and detail overlay fragments.
package projects

import (
	"net/http"

	module "github.com/louisbranch/datalab/internal/services/site/module"
	"github.com/louisbranch/datalab/internal/services/site/routepath"
)

// Module provides project gallery fragment routes.
type Module struct{}

// New returns the projects module.
func New() Module {
	return Module{}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "projects"
}

// Mount wires project routes under the projects prefix.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.ProjectsPrefix, Handler: mux}, nil
}

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Projects, h.handleGrid)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProjectsPrefix+"{$}", h.handleGrid)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProjectsPrefix+"{projectID}", h.handleDetail)
}
