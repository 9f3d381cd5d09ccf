// Package requestmeta derives transport facts from incoming requests.
package requestmeta

import (
	"net"
	"net/http"
	"net/url"
	"strings"
)

// IsHTTPS reports whether r arrived over TLS, directly or behind a proxy.
func IsHTTPS(r *http.Request) bool {
	if r == nil {
		return false
	}
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")), "https")
}

// IsCrossOrigin reports whether r carries an Origin or Referer naming
// another site. Requests with neither header are not cross-origin.
func IsCrossOrigin(r *http.Request) bool {
	source, ok := originSource(r)
	if !ok {
		return false
	}
	return !sameOrigin(r, source)
}

func originSource(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	if origin := strings.TrimSpace(r.Header.Get("Origin")); origin != "" && origin != "null" {
		return origin, true
	}
	if referer := strings.TrimSpace(r.Header.Get("Referer")); referer != "" {
		return referer, true
	}
	return "", false
}

func sameOrigin(r *http.Request, source string) bool {
	u, err := url.Parse(source)
	if err != nil || u.Host == "" {
		return false
	}
	scheme := "http"
	if IsHTTPS(r) {
		scheme = "https"
	}
	if !strings.EqualFold(u.Scheme, scheme) {
		return false
	}
	return strings.EqualFold(canonicalHost(u.Host, scheme), canonicalHost(r.Host, scheme))
}

func canonicalHost(host, scheme string) string {
	host = strings.TrimSpace(host)
	h, port, err := net.SplitHostPort(host)
	if err != nil {
		return host
	}
	if (scheme == "https" && port == "443") || (scheme == "http" && port == "80") {
		return h
	}
	return host
}
