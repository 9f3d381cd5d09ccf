package particles

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"gonum.org/v1/gonum/spatial/r2"
)

type manualSource struct {
	ticks   chan time.Time
	stopped atomic.Bool
}

func newManualSource() *manualSource {
	return &manualSource{ticks: make(chan time.Time)}
}

func (m *manualSource) Frames() <-chan time.Time { return m.ticks }
func (m *manualSource) Stop()                    { m.stopped.Store(true) }

func TestAnimatorAdvancesOnEveryTick(t *testing.T) {
	t.Parallel()

	src := newManualSource()
	a := NewAnimator(FromParticles(100, 100, []Particle{{Pos: r2.Vec{X: 10, Y: 10}, Vel: r2.Vec{X: 1, Y: 0}}}),
		WithFrameSource(func() FrameSource { return src }))

	if err := a.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	for i := 0; i < 3; i++ {
		src.ticks <- time.Now()
	}
	a.Stop()

	frame := a.Snapshot()
	if frame.Index != 3 {
		t.Fatalf("frame index = %d, want 3", frame.Index)
	}
	if got := frame.Particles[0].Pos.X; got != 13 {
		t.Fatalf("X = %v, want 13", got)
	}
	if !src.stopped.Load() {
		t.Fatal("frame source was not stopped")
	}
	if a.Running() {
		t.Fatal("Running() = true after Stop")
	}
}

func TestAnimatorStartTwiceFails(t *testing.T) {
	t.Parallel()

	a := NewAnimator(New(10, 10, WithCount(1)), WithFrameSource(func() FrameSource { return newManualSource() }))
	if err := a.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer a.Stop()
	if err := a.Start(context.Background()); !errors.Is(err, ErrRunning) {
		t.Fatalf("second Start() error = %v, want ErrRunning", err)
	}
}

func TestAnimatorStopIsIdempotent(t *testing.T) {
	t.Parallel()

	a := NewAnimator(New(10, 10), WithFrameSource(func() FrameSource { return newManualSource() }))
	a.Stop()
	if err := a.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	a.Stop()
	a.Stop()
	if err := a.Start(context.Background()); err != nil {
		t.Fatalf("restart error = %v", err)
	}
	a.Stop()
}

func TestAnimatorRunReturnsOnCancel(t *testing.T) {
	t.Parallel()

	a := NewAnimator(New(10, 10), WithFrameSource(func() FrameSource { return newManualSource() }))
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- a.Run(ctx) }()
	cancel()
	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestAnimatorResizeAndSnapshotCopy(t *testing.T) {
	t.Parallel()

	a := NewAnimator(New(200, 100, WithSeed(1), WithCount(4)))
	a.Resize(50, 40)
	frame := a.Snapshot()
	if frame.Width != 50 || frame.Height != 40 {
		t.Fatalf("size = %vx%v, want 50x40", frame.Width, frame.Height)
	}
	frame.Particles[0].Pos = r2.Vec{X: -1, Y: -1}
	if a.Snapshot().Particles[0].Pos == (r2.Vec{X: -1, Y: -1}) {
		t.Fatal("snapshot shares particle storage with the animator")
	}
}

type recordingSurface struct {
	ops     []string
	alphas  []float64
	circles int
	lines   int
}

func (r *recordingSurface) Clear() { r.ops = append(r.ops, "clear") }
func (r *recordingSurface) FillCircle(r2.Vec, float64, Color) {
	r.ops = append(r.ops, "circle")
	r.circles++
}
func (r *recordingSurface) StrokeLine(_, _ r2.Vec, _ float64, c Color) {
	r.ops = append(r.ops, "line")
	r.alphas = append(r.alphas, c.A)
	r.lines++
}

func TestFrameRenderOrder(t *testing.T) {
	t.Parallel()

	f := FromParticles(500, 500, []Particle{
		{Pos: r2.Vec{X: 0, Y: 0}, Radius: 1},
		{Pos: r2.Vec{X: 100, Y: 0}, Radius: 1},
		{Pos: r2.Vec{X: 400, Y: 400}, Radius: 1},
	})
	var s recordingSurface
	f.Render(&s)

	want := []string{"clear", "circle", "circle", "circle", "line"}
	if strings.Join(s.ops, ",") != strings.Join(want, ",") {
		t.Fatalf("ops = %v, want %v", s.ops, want)
	}
	if s.alphas[0] <= 0 || s.alphas[0] > 0.15 {
		t.Fatalf("line alpha = %v, want (0, 0.15]", s.alphas[0])
	}
}

func TestFrameRenderEmptyField(t *testing.T) {
	t.Parallel()

	var s recordingSurface
	Frame{Width: 10, Height: 10}.Render(&s)
	if len(s.ops) != 1 || s.ops[0] != "clear" {
		t.Fatalf("ops = %v, want [clear]", s.ops)
	}
	Frame{}.Render(nil)
}

func TestWriteSVG(t *testing.T) {
	t.Parallel()

	frame := FromParticles(120, 80, []Particle{
		{Pos: r2.Vec{X: 10, Y: 10}, Radius: 2},
		{Pos: r2.Vec{X: 20, Y: 10}, Radius: 1},
	})
	var buf bytes.Buffer
	if err := WriteSVG(&buf, Frame{Width: 120, Height: 80, Particles: frame.Particles()}); err != nil {
		t.Fatalf("WriteSVG() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `viewBox="0 0 1200 800"`) {
		t.Fatalf("svg missing scaled viewBox: %s", out)
	}
	if !strings.Contains(out, `preserveAspectRatio="xMidYMid slice"`) {
		t.Fatalf("svg does not cover its box: %s", out)
	}
	if got := strings.Count(out, "<circle"); got != 2 {
		t.Fatalf("circle count = %d, want 2", got)
	}
	if got := strings.Count(out, "<line"); got != 1 {
		t.Fatalf("line count = %d, want 1", got)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Fatalf("svg not closed: %s", out)
	}
}

func TestWritePNG(t *testing.T) {
	t.Parallel()

	frame := Frame{Width: 40, Height: 30, Particles: []Particle{{Pos: r2.Vec{X: 20, Y: 15}, Radius: 2.5}}}
	var buf bytes.Buffer
	if err := WritePNG(&buf, frame); err != nil {
		t.Fatalf("WritePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Fatalf("bounds = %v, want 40x30", b)
	}
	if _, _, _, a := img.At(20, 15).RGBA(); a == 0 {
		t.Fatal("particle center pixel is transparent")
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Fatal("corner pixel should stay transparent")
	}
}
