// Package pagerender centralizes site page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/datalab/internal/reveal"
	flashnotice "github.com/louisbranch/datalab/internal/services/site/platform/flash"
	"github.com/louisbranch/datalab/internal/services/site/platform/httpx"
	siteI18n "github.com/louisbranch/datalab/internal/services/site/platform/i18n"
	"github.com/louisbranch/datalab/internal/services/site/templates"
)

// Page describes a response for both full-page and HTMX flows.
type Page struct {
	Title      string
	StatusCode int
	// Fragment is the HTMX response body.
	Fragment templ.Component
	// Body fills the layout main on full-page loads. Defaults to Fragment.
	Body     templ.Component
	Overlay  templ.Component
	MenuOpen bool
	Locale   siteI18n.Locale
	Reveal   reveal.Options
	// Triggers are HX-Trigger events sent with fragment responses.
	Triggers []string
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage writes a fragment for HTMX requests and the full layout
// otherwise.
func WritePage(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}
	if httpx.IsHTMXRequest(r) {
		return WriteFragment(w, r, statusCode, fragment, page.Triggers...)
	}

	locale := page.Locale
	if !locale.Resolved() {
		locale = siteI18n.ResolveLocale(w, r)
	}
	body := page.Body
	if body == nil {
		body = fragment
	}
	path, query := "/", ""
	if r != nil && r.URL != nil {
		path, query = r.URL.Path, r.URL.RawQuery
	}
	layout := templates.Layout(templates.LayoutOptions{
		Title:     page.Title,
		Copy:      locale.Copy,
		Languages: siteI18n.LanguageOptions(locale.Copy, locale.Tag, path, query),
		Toast:     resolveFlashToast(w, r, locale.Copy),
		MenuOpen:  page.MenuOpen,
		Reveal:    page.Reveal,
		Overlay:   page.Overlay,
	})

	var buf bytes.Buffer
	if err := layout.Render(templ.WithChildren(httpx.RequestContext(r), body), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

// WriteFragment renders fragment alone, with optional HX-Trigger events.
func WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, fragment templ.Component, triggers ...string) error {
	if w == nil {
		return nil
	}
	if fragment == nil {
		fragment = emptyComponent{}
	}
	var buf bytes.Buffer
	if err := fragment.Render(httpx.RequestContext(r), &buf); err != nil {
		return err
	}
	for _, event := range triggers {
		httpx.Trigger(w, event)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

func resolveFlashToast(w http.ResponseWriter, r *http.Request, sc siteI18n.SiteCopy) *templates.Toast {
	notice, ok := flashnotice.ReadAndClear(w, r)
	if !ok {
		return nil
	}
	message := strings.TrimSpace(sc.Sprintf(notice.Key))
	if message == "" {
		message = strings.TrimSpace(notice.Key)
	}
	if message == "" {
		return nil
	}
	if notice.Receipt != "" {
		message += " " + sc.Receipt(notice.Receipt)
	}
	return &templates.Toast{
		Kind:    string(notice.Kind),
		Message: message,
	}
}
