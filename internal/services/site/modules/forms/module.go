// Package forms accepts the contact and apply form submissions.
package forms

import (
	"net/http"

	"github.com/louisbranch/datalab/internal/forms"
	module "github.com/louisbranch/datalab/internal/services/site/module"
	"github.com/louisbranch/datalab/internal/services/site/platform/httpx"
	"github.com/louisbranch/datalab/internal/services/site/routepath"
)

// Module provides the form submission routes.
type Module struct{}

// New returns the forms module.
func New() Module {
	return Module{}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "forms"
}

// Mount wires one POST route per form kind.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(deps)
	for _, kind := range forms.Kinds() {
		path := routepath.FormsPrefix + string(kind)
		mux.HandleFunc(http.MethodPost+" "+path, h.handleSubmit(kind))
		mux.HandleFunc(path, httpx.MethodNotAllowed(http.MethodPost))
	}
	return module.Mount{Prefix: routepath.FormsPrefix, Handler: mux}, nil
}
