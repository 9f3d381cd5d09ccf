package forms

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/louisbranch/datalab/internal/forms"
	"github.com/louisbranch/datalab/internal/services/site/controller"
	module "github.com/louisbranch/datalab/internal/services/site/module"
	flashnotice "github.com/louisbranch/datalab/internal/services/site/platform/flash"
)

type recorder struct {
	mu       sync.Mutex
	payloads []forms.Payload
	err      error
}

func (r *recorder) Submit(_ context.Context, p forms.Payload) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payloads = append(r.payloads, p)
	return r.err
}

func serve(t *testing.T, rec *recorder, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	mount, err := New().Mount(module.Dependencies{Events: controller.NewTable(rec)})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != "/forms/" {
		t.Fatalf("Prefix = %q", mount.Prefix)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	return rr
}

func post(path string, values url.Values, htmx bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	return req
}

func TestContactSubmitReturnsAcknowledgedPanel(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	rr := serve(t, rec, post("/forms/contact", url.Values{
		"name":    {" Kim "},
		"email":   {"kim@example.edu"},
		"message": {"hello"},
		"extra":   {"dropped"},
	}, true))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if len(rec.payloads) != 1 {
		t.Fatalf("payloads = %d, want 1", len(rec.payloads))
	}
	p := rec.payloads[0]
	if p.Kind != forms.KindContact || p.Fields["name"] != "Kim" {
		t.Fatalf("payload = %+v", p)
	}
	if _, ok := p.Fields["extra"]; ok {
		t.Fatal("unknown field kept in payload")
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="contact-panel"`) || !strings.Contains(body, `class="form-ack"`) {
		t.Fatalf("body missing acknowledged panel: %s", body)
	}
	if !strings.Contains(body, p.Receipt) {
		t.Fatalf("body missing receipt %q", p.Receipt)
	}
	if strings.Contains(body, "kim@example.edu") {
		t.Fatal("fields were not cleared after submit")
	}
}

func TestSubmitFailureStillAcknowledges(t *testing.T) {
	t.Parallel()

	rec := &recorder{err: errors.New("smtp down")}
	rr := serve(t, rec, post("/forms/apply", url.Values{"name": {"Lee"}}, true))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), `id="apply-panel"`) {
		t.Fatalf("body missing apply panel: %s", rr.Body.String())
	}
	if rec.payloads[0].Kind != forms.KindApply {
		t.Fatalf("kind = %q, want %q", rec.payloads[0].Kind, forms.KindApply)
	}
}

func TestPlainSubmitRedirectsWithNotice(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	rr := serve(t, rec, post("/forms/apply", url.Values{"name": {"Lee"}}, false))
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	if got := rr.Header().Get("Location"); got != "/#apply" {
		t.Fatalf("Location = %q, want %q", got, "/#apply")
	}
	var found bool
	for _, c := range rr.Result().Cookies() {
		if c.Name == flashnotice.CookieName && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Fatal("flash cookie not set")
	}
}

func TestGetIsNotAllowed(t *testing.T) {
	t.Parallel()

	rr := serve(t, &recorder{}, httptest.NewRequest(http.MethodGet, "/forms/contact", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
	if got := rr.Header().Get("Allow"); got != http.MethodPost {
		t.Fatalf("Allow = %q", got)
	}
}

func TestUnknownFormIsNotFound(t *testing.T) {
	t.Parallel()

	rr := serve(t, &recorder{}, post("/forms/newsletter", url.Values{}, false))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestCrossOriginSubmitIsForbidden(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	req := post("/forms/contact", url.Values{"name": {"Kim"}}, true)
	req.Header.Set("Origin", "https://elsewhere.example.com")
	rr := serve(t, rec, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusForbidden)
	}
	if len(rec.payloads) != 0 {
		t.Fatalf("payloads = %d, want 0", len(rec.payloads))
	}
}

func TestOversizedSubmitIsRejected(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	rr := serve(t, rec, post("/forms/apply", url.Values{"motivation": {strings.Repeat("x", maxFormBytes)}}, true))
	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusRequestEntityTooLarge)
	}
	if got := rr.Header().Get("HX-Reswap"); got != "none" {
		t.Fatalf("HX-Reswap = %q, want %q", got, "none")
	}
	if len(rec.payloads) != 0 {
		t.Fatalf("payloads = %d, want 0", len(rec.payloads))
	}
}

func TestOversizedPlainSubmitRedirectsWithErrorNotice(t *testing.T) {
	t.Parallel()

	rr := serve(t, &recorder{}, post("/forms/contact", url.Values{"message": {strings.Repeat("x", maxFormBytes)}}, false))
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	if got := rr.Header().Get("Location"); got != "/#contact" {
		t.Fatalf("Location = %q, want %q", got, "/#contact")
	}
	var found bool
	for _, c := range rr.Result().Cookies() {
		if c.Name == flashnotice.CookieName && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Fatal("missing flash cookie")
	}
}
