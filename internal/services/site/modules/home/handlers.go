package home

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/datalab/internal/content"
	"github.com/louisbranch/datalab/internal/forms"
	"github.com/louisbranch/datalab/internal/services/site/controller"
	module "github.com/louisbranch/datalab/internal/services/site/module"
	"github.com/louisbranch/datalab/internal/services/site/platform/httpx"
	siteI18n "github.com/louisbranch/datalab/internal/services/site/platform/i18n"
	"github.com/louisbranch/datalab/internal/services/site/platform/pagerender"
	"github.com/louisbranch/datalab/internal/services/site/platform/weberror"
	"github.com/louisbranch/datalab/internal/services/site/templates"
	"github.com/louisbranch/datalab/internal/services/site/view"
)

type handlers struct {
	deps   module.Dependencies
	events *controller.Table
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps, events: deps.EventTable()}
}

// handlePage renders the whole page. The filter, project and menu query
// params restore page state for links and no-script visitors.
func (h handlers) handlePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	locale := siteI18n.ResolveLocale(w, r)
	session := h.deps.NewSession(locale.Copy)

	query := r.URL.Query()
	if err := h.events.Dispatch(ctx, session, controller.Event{Name: controller.EventFilterSelect, Value: query.Get("filter")}); err != nil {
		weberror.WriteModuleError(w, r, err)
		return
	}
	if id := strings.TrimSpace(query.Get("project")); id != "" {
		if err := h.events.Dispatch(ctx, session, controller.Event{Name: controller.EventDetailOpen, Value: id}); err != nil {
			weberror.WriteModuleError(w, r, err)
			return
		}
	}

	if query.Get("menu") == "open" {
		if err := h.events.Dispatch(ctx, session, controller.Event{Name: controller.EventMenuToggle}); err != nil {
			weberror.WriteModuleError(w, r, err)
			return
		}
	}

	var overlay templ.Component
	if detail, ok := session.Overlay(); ok {
		overlay = templates.DetailOverlay(locale.Copy, detail)
	}
	body := templates.Home(h.homeView(locale.Copy, session))
	err := pagerender.WritePage(w, r, pagerender.Page{
		Fragment: body,
		Overlay:  overlay,
		MenuOpen: session.MenuOpen(),
		Locale:   locale,
		Reveal:   session.Tracker().Options(),
	})
	if err != nil {
		h.deps.Logf("render page failed path=%s request_id=%s err=%v", r.URL.Path, httpx.RequestIDFrom(r), err)
		weberror.WriteAppError(w, r, http.StatusInternalServerError)
	}
}

func (h handlers) homeView(sc siteI18n.SiteCopy, session *controller.Session) templates.HomeView {
	v := templates.HomeView{
		Copy:     sc,
		Filters:  session.Filters(),
		Projects: session.Projects(),
		Contact:  formView(sc, session, forms.KindContact),
		Apply:    formView(sc, session, forms.KindApply),
	}
	if h.deps.Typing != nil {
		v.Typing = h.deps.Typing.Current()
	}
	if h.deps.Content != nil {
		v.Members = view.Members(h.deps.Content.Members())
		v.Department = view.Department(h.deps.Content.Department(), sc)
	}
	return v
}

func formView(sc siteI18n.SiteCopy, session *controller.Session, kind forms.Kind) templates.FormView {
	ack, ok := session.Ack(kind)
	return templates.NewFormView(sc, kind, session.Fields(kind), ok, ack.Receipt)
}

func (h handlers) handleOverlayClose(w http.ResponseWriter, r *http.Request) {
	session := h.deps.NewSession(nil)
	if err := h.events.Dispatch(r.Context(), session, controller.Event{Name: controller.EventDetailClose}); err != nil {
		weberror.WriteModuleError(w, r, err)
		return
	}
	if !httpx.IsHTMXRequest(r) {
		httpx.WriteRedirect(w, r, view.CloseURL(content.ParseFilter(r.URL.Query().Get("filter"))))
		return
	}
	if err := pagerender.WriteFragment(w, r, http.StatusOK, templates.OverlayClosed(), "overlay:close"); err != nil {
		weberror.WriteAppError(w, r, http.StatusInternalServerError)
	}
}

type healthResponse struct {
	Status   string `json:"status"`
	Projects int    `json:"projects"`
	Members  int    `json:"members"`
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	resp := healthResponse{Status: "ok"}
	if h.deps.Content != nil {
		resp.Projects = len(h.deps.Content.Projects())
		resp.Members = len(h.deps.Content.Members())
	}
	_ = httpx.WriteJSON(w, http.StatusOK, resp)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound)
}
