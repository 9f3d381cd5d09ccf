package templates

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/datalab/internal/services/site/routepath"
)

const (
	errorPageTitleNotFoundKey  = "core.error.page_title_not_found"
	errorPageTitleServerErrKey = "core.error.page_title_server_error"
	errorHeadingNotFoundKey    = "core.error.title_not_found"
	errorHeadingServerErrKey   = "core.error.title_server_error"
	errorMessageNotFoundKey    = "core.error.message_not_found"
	errorMessageServerErrKey   = "core.error.message_server_error"
	errorBackHomeKey           = "core.error.back_home"
)

// ErrorPageTitle returns the browser page title for error pages.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, errorPageTitleNotFoundKey)
	}
	return T(loc, errorPageTitleServerErrKey)
}

// ErrorState renders the error panel used by both pages and fragments.
func ErrorState(statusCode int, loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		heading, message := errorHeadingServerErrKey, errorMessageServerErrKey
		if normalizeErrorStatus(statusCode) == http.StatusNotFound {
			heading, message = errorHeadingNotFoundKey, errorMessageNotFoundKey
		}
		m.open("div", "id", "error-state", "class", "section error-state", "role", "alert")
		m.el("h1", T(loc, heading))
		m.el("p", T(loc, message))
		m.el("a", T(loc, errorBackHomeKey), "class", "btn btn-outline", "href", routepath.Root, "hx-boost", "false")
		m.close("div")
	})
}

func normalizeErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
