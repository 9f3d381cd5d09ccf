package hero

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/louisbranch/datalab/internal/particles"
	module "github.com/louisbranch/datalab/internal/services/site/module"
	apperrors "github.com/louisbranch/datalab/internal/services/site/platform/errors"
	"github.com/louisbranch/datalab/internal/services/site/platform/httpx"
	"github.com/louisbranch/datalab/internal/services/site/platform/pagerender"
	"github.com/louisbranch/datalab/internal/services/site/platform/weberror"
	"github.com/louisbranch/datalab/internal/services/site/templates"
)

type handlers struct {
	deps     module.Dependencies
	interval time.Duration
}

func newHandlers(deps module.Dependencies) handlers {
	interval := deps.StreamInterval
	if interval <= 0 {
		interval = DefaultStreamInterval
	}
	return handlers{deps: deps, interval: interval}
}

var errFieldUnavailable = apperrors.E(apperrors.KindUnavailable, "particle field is not running")

func (h handlers) handleSVG(w http.ResponseWriter, r *http.Request) {
	h.writeFrame(w, r, "image/svg+xml", particles.WriteSVG)
}

func (h handlers) handlePNG(w http.ResponseWriter, r *http.Request) {
	h.writeFrame(w, r, "image/png", particles.WritePNG)
}

func (h handlers) writeFrame(w http.ResponseWriter, r *http.Request, contentType string, encode func(io.Writer, particles.Frame) error) {
	if h.deps.Field == nil {
		httpx.WriteError(w, errFieldUnavailable)
		return
	}
	var buf bytes.Buffer
	if err := encode(&buf, h.deps.Field.Snapshot()); err != nil {
		h.deps.Logf("encode field failed type=%s request_id=%s err=%v", contentType, httpx.RequestIDFrom(r), err)
		httpx.WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h handlers) currentText() string {
	if h.deps.Typing == nil {
		return ""
	}
	return h.deps.Typing.Current()
}

func (h handlers) handleTyping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	if err := pagerender.WriteFragment(w, r, http.StatusOK, templates.TypingText(h.currentText())); err != nil {
		weberror.WriteAppError(w, r, http.StatusInternalServerError)
	}
}

type typingEvent struct {
	Text string `json:"text"`
}

type frameEvent struct {
	Index uint64 `json:"index"`
	SVG   string `json:"svg"`
}

// handleStream pushes the typed text whenever it changes and one field frame
// per tick until the client goes away.
func (h handlers) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "streaming unsupported"))
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ctx := r.Context()
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	lastText := ""
	first := true
	var svg bytes.Buffer
	for {
		text := h.currentText()
		if first || text != lastText {
			if err := writeEvent(w, "typing", typingEvent{Text: text}); err != nil {
				return
			}
			lastText = text
		}
		first = false
		if h.deps.Field != nil {
			frame := h.deps.Field.Snapshot()
			svg.Reset()
			if err := particles.WriteSVG(&svg, frame); err != nil {
				h.deps.Logf("stream frame failed request_id=%s err=%v", httpx.RequestIDFrom(r), err)
				return
			}
			if err := writeEvent(w, "frame", frameEvent{Index: frame.Index, SVG: svg.String()}); err != nil {
				return
			}
		}
		flusher.Flush()

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func writeEvent(w io.Writer, name string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, data)
	return err
}
