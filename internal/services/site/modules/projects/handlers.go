package projects

import (
	"net/http"

	"github.com/louisbranch/datalab/internal/services/site/controller"
	module "github.com/louisbranch/datalab/internal/services/site/module"
	"github.com/louisbranch/datalab/internal/services/site/platform/httpx"
	siteI18n "github.com/louisbranch/datalab/internal/services/site/platform/i18n"
	"github.com/louisbranch/datalab/internal/services/site/platform/pagerender"
	"github.com/louisbranch/datalab/internal/services/site/platform/weberror"
	"github.com/louisbranch/datalab/internal/services/site/routepath"
	"github.com/louisbranch/datalab/internal/services/site/templates"
)

// Events sent with fragment responses so the browser re-attaches reveal
// observation and toggles the scroll lock.
const (
	triggerRevealRescan = "reveal:rescan"
	triggerOverlayOpen  = "overlay:open"
)

type handlers struct {
	deps   module.Dependencies
	events *controller.Table
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps, events: deps.EventTable()}
}

// handleGrid swaps the filter bar and grid for the requested filter.
// Plain requests are redirected to the page carrying the same state.
func (h handlers) handleGrid(w http.ResponseWriter, r *http.Request) {
	locale := siteI18n.ResolveLocale(w, r)
	session := h.deps.NewSession(locale.Copy)
	if err := h.events.Dispatch(r.Context(), session, controller.Event{
		Name:  controller.EventFilterSelect,
		Value: r.URL.Query().Get("filter"),
	}); err != nil {
		weberror.WriteModuleError(w, r, err)
		return
	}
	if !httpx.IsHTMXRequest(r) {
		httpx.WriteRedirect(w, r, routepath.PageState(string(session.Filter()), "")+routepath.AnchorProjects)
		return
	}
	panel := templates.ProjectsPanel(locale.Copy, session.Filters(), session.Projects())
	if err := pagerender.WriteFragment(w, r, http.StatusOK, panel, triggerRevealRescan); err != nil {
		h.deps.Logf("render projects failed request_id=%s err=%v", httpx.RequestIDFrom(r), err)
		weberror.WriteAppError(w, r, http.StatusInternalServerError)
	}
}

// handleDetail renders the overlay for one project. The filter query param
// is the gallery filter the overlay was opened from.
func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("projectID")
	locale := siteI18n.ResolveLocale(w, r)
	session := h.deps.NewSession(locale.Copy)
	if err := h.events.Dispatch(r.Context(), session, controller.Event{
		Name:  controller.EventFilterSelect,
		Value: r.URL.Query().Get("filter"),
	}); err != nil {
		weberror.WriteModuleError(w, r, err)
		return
	}
	if err := h.events.Dispatch(r.Context(), session, controller.Event{Name: controller.EventDetailOpen, Value: id}); err != nil {
		weberror.WriteModuleError(w, r, err)
		return
	}
	if !httpx.IsHTMXRequest(r) {
		httpx.WriteRedirect(w, r, routepath.PageState(string(session.Filter()), id))
		return
	}
	detail, _ := session.Overlay()
	if err := pagerender.WriteFragment(w, r, http.StatusOK, templates.DetailOverlay(locale.Copy, detail), triggerOverlayOpen); err != nil {
		h.deps.Logf("render detail failed project=%s request_id=%s err=%v", id, httpx.RequestIDFrom(r), err)
		weberror.WriteAppError(w, r, http.StatusInternalServerError)
	}
}
