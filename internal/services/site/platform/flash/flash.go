// Package flash carries a one-time form notice across the redirect that
// follows a plain (non-HTMX) submission.
package flash

import (
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/louisbranch/datalab/internal/services/site/platform/requestmeta"
)

// CookieName holds the encoded notice.
const CookieName = "dl_flash"

// MaxAge bounds how long an unread notice survives.
const MaxAge = 2 * time.Minute

// Kind selects the toast style.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notice references a catalog message plus the receipt of the submission it
// acknowledges.
type Notice struct {
	Kind    Kind   `json:"kind"`
	Key     string `json:"key"`
	Receipt string `json:"receipt,omitempty"`
}

// NoticeSuccess builds a success notice for key.
func NoticeSuccess(key string) Notice {
	return Notice{Kind: KindSuccess, Key: key}
}

// NoticeError builds an error notice for key.
func NoticeError(key string) Notice {
	return Notice{Kind: KindError, Key: key}
}

// normalized trims the notice and reports whether it can be shown.
func (n Notice) normalized() (Notice, bool) {
	n.Key = strings.TrimSpace(n.Key)
	n.Receipt = strings.TrimSpace(n.Receipt)
	n.Kind = Kind(strings.ToLower(strings.TrimSpace(string(n.Kind))))
	switch n.Kind {
	case KindSuccess, KindError:
		return n, n.Key != ""
	default:
		return Notice{}, false
	}
}

// Write sets the notice cookie. Invalid notices are dropped.
func Write(w http.ResponseWriter, r *http.Request, notice Notice) {
	if w == nil {
		return
	}
	value, ok := encode(notice)
	if !ok {
		return
	}
	http.SetCookie(w, cookie(r, value, int(MaxAge/time.Second)))
}

// ReadAndClear returns the pending notice, if any, and expires the cookie
// whether or not it decoded.
func ReadAndClear(w http.ResponseWriter, r *http.Request) (Notice, bool) {
	if r == nil {
		return Notice{}, false
	}
	c, err := r.Cookie(CookieName)
	if err != nil {
		return Notice{}, false
	}
	Clear(w, r)
	return decode(c.Value)
}

// Clear expires the notice cookie.
func Clear(w http.ResponseWriter, r *http.Request) {
	if w == nil {
		return
	}
	http.SetCookie(w, cookie(r, "", -1))
}

func cookie(r *http.Request, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	}
}

func encode(notice Notice) (string, bool) {
	notice, ok := notice.normalized()
	if !ok {
		return "", false
	}
	payload, err := json.Marshal(notice)
	if err != nil {
		return "", false
	}
	return base64.RawURLEncoding.EncodeToString(payload), true
}

func decode(raw string) (Notice, bool) {
	payload, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(raw))
	if err != nil || len(payload) == 0 {
		return Notice{}, false
	}
	var notice Notice
	if err := json.Unmarshal(payload, &notice); err != nil {
		return Notice{}, false
	}
	return notice.normalized()
}
