package forms

import (
	"errors"
	"net/http"
	"strings"

	"github.com/louisbranch/datalab/internal/forms"
	"github.com/louisbranch/datalab/internal/services/site/controller"
	module "github.com/louisbranch/datalab/internal/services/site/module"
	apperrors "github.com/louisbranch/datalab/internal/services/site/platform/errors"
	flashnotice "github.com/louisbranch/datalab/internal/services/site/platform/flash"
	"github.com/louisbranch/datalab/internal/services/site/platform/httpx"
	siteI18n "github.com/louisbranch/datalab/internal/services/site/platform/i18n"
	"github.com/louisbranch/datalab/internal/services/site/platform/pagerender"
	"github.com/louisbranch/datalab/internal/services/site/platform/requestmeta"
	"github.com/louisbranch/datalab/internal/services/site/platform/weberror"
	"github.com/louisbranch/datalab/internal/services/site/templates"
)

const maxFormBytes = 64 << 10

type handlers struct {
	deps   module.Dependencies
	events *controller.Table
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps, events: deps.EventTable()}
}

// handleSubmit dispatches the submit event for kind. HTMX requests get the
// acknowledged panel back; plain posts redirect to the section with a
// one-time notice.
func (h handlers) handleSubmit(kind forms.Kind) http.HandlerFunc {
	event := controller.EventSubmitContact
	if kind == forms.KindApply {
		event = controller.EventSubmitApply
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if requestmeta.IsCrossOrigin(r) {
			weberror.WriteModuleError(w, r, apperrors.EK(apperrors.KindForbidden, "core.error.cross_origin", "cross-origin form post"))
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
		if err := r.ParseForm(); err != nil {
			h.writeRejected(w, r, kind, parseError(err))
			return
		}
		values := make(map[string]string, len(r.PostForm))
		for name := range r.PostForm {
			values[name] = r.PostForm.Get(name)
		}

		locale := siteI18n.ResolveLocale(w, r)
		session := h.deps.NewSession(locale.Copy)
		if err := h.events.Dispatch(r.Context(), session, controller.Event{Name: event, Form: values}); err != nil {
			weberror.WriteModuleError(w, r, err)
			return
		}
		ack, _ := session.Ack(kind)

		if !httpx.IsHTMXRequest(r) {
			notice := flashnotice.NoticeSuccess("site." + string(kind) + ".ack")
			notice.Receipt = ack.Receipt
			flashnotice.Write(w, r, notice)
			httpx.WriteRedirect(w, r, "/#"+strings.TrimSpace(string(kind)))
			return
		}
		panel := templates.FormPanel(templates.NewFormView(locale.Copy, kind, session.Fields(kind), true, ack.Receipt))
		if err := pagerender.WriteFragment(w, r, http.StatusOK, panel); err != nil {
			h.deps.Logf("render form failed kind=%s request_id=%s err=%v", kind, httpx.RequestIDFrom(r), err)
			weberror.WriteAppError(w, r, http.StatusInternalServerError)
		}
	}
}

// writeRejected reports a submission that could not be read. Plain posts go
// back to the form section with an error notice.
func (h handlers) writeRejected(w http.ResponseWriter, r *http.Request, kind forms.Kind, err error) {
	key := apperrors.LocalizationKey(err)
	if httpx.IsHTMXRequest(r) || key == "" {
		weberror.WriteModuleError(w, r, err)
		return
	}
	h.deps.Logf("form rejected kind=%s request_id=%s err=%v", kind, httpx.RequestIDFrom(r), err)
	flashnotice.Write(w, r, flashnotice.NoticeError(key))
	httpx.WriteRedirect(w, r, "/#"+string(kind))
}

func parseError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperrors.Wrap(apperrors.KindTooLarge, "core.error.form_too_large", "parse form", err)
	}
	return apperrors.Wrap(apperrors.KindInvalidInput, "core.error.form_invalid", "parse form", err)
}
