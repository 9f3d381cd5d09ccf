// Package static embeds the site stylesheet, script and image fallbacks.
package static

import "embed"

// FS exposes site static assets for HTTP serving.
//
//go:embed *.css *.js *.svg
var FS embed.FS
