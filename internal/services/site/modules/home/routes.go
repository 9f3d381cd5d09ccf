package home

import (
	"net/http"

	"github.com/louisbranch/datalab/internal/services/site/platform/httpx"
	"github.com/louisbranch/datalab/internal/services/site/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" /{$}", h.handlePage)
	mux.HandleFunc(http.MethodGet+" "+routepath.OverlayClose, h.handleOverlayClose)
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.HandleFunc("/{$}", httpx.MethodNotAllowed("GET, HEAD"))
	mux.HandleFunc("/", h.handleNotFound)
}
