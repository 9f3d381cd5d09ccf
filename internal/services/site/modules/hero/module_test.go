package hero

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/louisbranch/datalab/internal/particles"
	module "github.com/louisbranch/datalab/internal/services/site/module"
	"gonum.org/v1/gonum/spatial/r2"
)

type staticField particles.Frame

func (f staticField) Snapshot() particles.Frame { return particles.Frame(f) }

type staticTyping string

func (s staticTyping) Current() string { return string(s) }

func testDeps() module.Dependencies {
	return module.Dependencies{
		Field: staticField(particles.Frame{
			Index:     7,
			Width:     100,
			Height:    80,
			Particles: []particles.Particle{{Pos: r2.Vec{X: 10, Y: 10}, Radius: 2}},
		}),
		Typing:         staticTyping("데이터"),
		StreamInterval: 5 * time.Millisecond,
	}
}

func handler(t *testing.T, deps module.Dependencies) http.Handler {
	t.Helper()
	mount, err := New().Mount(deps)
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != "/hero/" {
		t.Fatalf("Prefix = %q", mount.Prefix)
	}
	return mount.Handler
}

func TestFieldSVG(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	handler(t, testDeps()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/hero/field.svg", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Content-Type"); got != "image/svg+xml" {
		t.Fatalf("Content-Type = %q", got)
	}
	if got := rr.Header().Get("Cache-Control"); got != "no-store" {
		t.Fatalf("Cache-Control = %q", got)
	}
	if !strings.Contains(rr.Body.String(), "<circle") {
		t.Fatalf("svg missing particle: %s", rr.Body.String())
	}
}

func TestFieldPNG(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	handler(t, testDeps()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/hero/field.png", nil))
	if rr.Code != http.StatusOK || rr.Header().Get("Content-Type") != "image/png" {
		t.Fatalf("response = %d %q", rr.Code, rr.Header().Get("Content-Type"))
	}
	if !strings.HasPrefix(rr.Body.String(), "\x89PNG") {
		t.Fatal("body is not a png")
	}
}

func TestFieldWithoutAnimatorIsUnavailable(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	handler(t, module.Dependencies{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/hero/field.svg", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
}

func TestTypingFragment(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/hero/typing", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	handler(t, testDeps()).ServeHTTP(rr, req)
	body := rr.Body.String()
	if !strings.Contains(body, `id="typing-text"`) || !strings.Contains(body, "데이터") {
		t.Fatalf("body = %q", body)
	}
}

func TestStreamSendsTypingThenFrames(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(handler(t, testDeps()))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/hero/stream", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()
	if got := resp.Header.Get("Content-Type"); got != "text/event-stream" {
		t.Fatalf("Content-Type = %q", got)
	}

	var events []string
	var typing typingEvent
	var frames int
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64<<10), 1<<20)
	var current string
	for scanner.Scan() && frames < 2 {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			current = strings.TrimPrefix(line, "event: ")
			events = append(events, current)
		case strings.HasPrefix(line, "data: "):
			data := []byte(strings.TrimPrefix(line, "data: "))
			switch current {
			case "typing":
				if err := json.Unmarshal(data, &typing); err != nil {
					t.Fatalf("decode typing: %v", err)
				}
			case "frame":
				var frame frameEvent
				if err := json.Unmarshal(data, &frame); err != nil {
					t.Fatalf("decode frame: %v", err)
				}
				if frame.Index != 7 || !strings.Contains(frame.SVG, "<svg") {
					t.Fatalf("frame = %+v", frame)
				}
				frames++
			}
		}
	}
	if len(events) < 3 || events[0] != "typing" || events[1] != "frame" || events[2] != "frame" {
		t.Fatalf("events = %v, want typing then frames", events)
	}
	if typing.Text != "데이터" {
		t.Fatalf("typing text = %q", typing.Text)
	}
}
