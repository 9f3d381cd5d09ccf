package particles

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultFPS is the target frame rate, matching a typical display refresh.
const DefaultFPS = 60

// FrameSource delivers frame ticks. Late ticks are not caught up.
type FrameSource interface {
	Frames() <-chan time.Time
	Stop()
}

type tickerSource struct {
	ticker *time.Ticker
}

func (t tickerSource) Frames() <-chan time.Time { return t.ticker.C }
func (t tickerSource) Stop()                    { t.ticker.Stop() }

// TickerSource returns a FrameSource ticking fps times per second.
func TickerSource(fps int) FrameSource {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return tickerSource{ticker: time.NewTicker(time.Second / time.Duration(fps))}
}

// ErrRunning is returned by Start when the loop is already running.
var ErrRunning = errors.New("particle animator already running")

// Animator advances a Field on every frame tick and serves consistent
// snapshots to concurrent readers.
type Animator struct {
	mu     sync.RWMutex
	field  *Field
	frame  uint64
	source func() FrameSource

	runMu  sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// AnimatorOption configures NewAnimator.
type AnimatorOption func(*Animator)

// WithFPS drives the loop from a ticker at fps.
func WithFPS(fps int) AnimatorOption {
	return func(a *Animator) {
		a.source = func() FrameSource { return TickerSource(fps) }
	}
}

// WithFrameSource drives the loop from a custom source, mainly for tests.
func WithFrameSource(newSource func() FrameSource) AnimatorOption {
	return func(a *Animator) {
		if newSource != nil {
			a.source = newSource
		}
	}
}

// NewAnimator wraps field. The animator takes ownership of field.
func NewAnimator(field *Field, opts ...AnimatorOption) *Animator {
	if field == nil {
		field = New(0, 0, WithCount(0))
	}
	a := &Animator{field: field}
	WithFPS(DefaultFPS)(a)
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

// Run advances the field on every tick until ctx is cancelled or Stop is
// called. It returns nil on a clean stop.
func (a *Animator) Run(ctx context.Context) error {
	if err := a.Start(ctx); err != nil {
		return err
	}
	a.runMu.Lock()
	done := a.done
	a.runMu.Unlock()
	<-done
	return nil
}

// Start launches the frame loop in a goroutine.
func (a *Animator) Start(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	a.runMu.Lock()
	defer a.runMu.Unlock()
	if a.done != nil {
		select {
		case <-a.done:
		default:
			return ErrRunning
		}
	}
	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	a.cancel = cancel
	a.done = done

	source := a.source()
	go func() {
		defer close(done)
		defer source.Stop()
		frames := source.Frames()
		for {
			select {
			case <-loopCtx.Done():
				return
			case _, ok := <-frames:
				if !ok {
					return
				}
				a.Step()
			}
		}
	}()
	return nil
}

// Stop ends the frame loop and waits for it to exit. Stopping an idle
// animator is a no-op.
func (a *Animator) Stop() {
	a.runMu.Lock()
	cancel, done := a.cancel, a.done
	a.runMu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done

	a.runMu.Lock()
	if a.done == done {
		a.cancel = nil
		a.done = nil
	}
	a.runMu.Unlock()
}

// Running reports whether the frame loop is active.
func (a *Animator) Running() bool {
	a.runMu.Lock()
	defer a.runMu.Unlock()
	if a.done == nil {
		return false
	}
	select {
	case <-a.done:
		return false
	default:
		return true
	}
}

// Step advances the field by one frame.
func (a *Animator) Step() {
	a.mu.Lock()
	a.field.Advance()
	a.frame++
	a.mu.Unlock()
}

// Resize updates the field extents.
func (a *Animator) Resize(width, height float64) {
	a.mu.Lock()
	a.field.Resize(width, height)
	a.mu.Unlock()
}

// Snapshot copies the current frame.
func (a *Animator) Snapshot() Frame {
	a.mu.RLock()
	defer a.mu.RUnlock()
	w, h := a.field.Size()
	return Frame{
		Index:     a.frame,
		Width:     w,
		Height:    h,
		Particles: a.field.Particles(),
	}
}
