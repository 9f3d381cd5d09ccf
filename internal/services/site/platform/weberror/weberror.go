// Package weberror renders shared error responses for site modules.
package weberror

import (
	"net/http"
	"strings"

	apperrors "github.com/louisbranch/datalab/internal/services/site/platform/errors"
	"github.com/louisbranch/datalab/internal/services/site/platform/httpx"
	siteI18n "github.com/louisbranch/datalab/internal/services/site/platform/i18n"
	"github.com/louisbranch/datalab/internal/services/site/platform/pagerender"
	"github.com/louisbranch/datalab/internal/services/site/templates"
)

// ShouldRenderAppError reports whether status should use the error-page UX.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc siteI18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes a localized error page, or the error fragment for
// HTMX requests.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	locale := siteI18n.ResolveLocale(w, r)
	err := pagerender.WritePage(w, r, pagerender.Page{
		Title:      templates.ErrorPageTitle(statusCode, locale.Copy),
		StatusCode: statusCode,
		Fragment:   templates.ErrorState(statusCode, locale.Copy),
		Locale:     locale,
	})
	if err != nil {
		http.Error(w, PublicMessage(locale.Copy, err), statusCode)
	}
}

// WriteModuleError writes a module-safe localized error response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode)
		return
	}
	locale := siteI18n.ResolveLocale(w, r)
	if httpx.IsHTMXRequest(r) {
		w.Header().Set("HX-Reswap", "none")
	}
	http.Error(w, PublicMessage(locale.Copy, err), statusCode)
}
