// Package typing drives the hero banner's typed-text effect: phrases are typed
// out one rune at a time, held, deleted, and the next phrase starts.
package typing

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Timing holds the delays between steps.
type Timing struct {
	Initial   time.Duration
	Type      time.Duration
	Delete    time.Duration
	EndPause  time.Duration
	NextPause time.Duration
}

// DefaultTiming returns the banner delays.
func DefaultTiming() Timing {
	return Timing{
		Initial:   1000 * time.Millisecond,
		Type:      100 * time.Millisecond,
		Delete:    50 * time.Millisecond,
		EndPause:  2000 * time.Millisecond,
		NextPause: 500 * time.Millisecond,
	}
}

// DefaultPhrases are the banner phrases shown when no others are configured.
var DefaultPhrases = []string{
	"우리는 데이터로 더 나은 세상을 만듭니다.",
	"직관을 넘어선 수학적 분석과 추론.",
	"주변의 작은 문제에서 시작되는 거대한 혁신.",
	"모두를 위한 데이터 사이언스 연구소.",
}

// ErrRunning is returned by Start when the loop is already running.
var ErrRunning = errors.New("typewriter already running")

// Typewriter is the typing state machine plus an optional timer loop.
// Step may be driven directly; Start runs it on its own goroutine.
type Typewriter struct {
	mu       sync.RWMutex
	phrases  [][]rune
	phrase   int
	char     int
	deleting bool
	text     string
	timing   Timing

	runMu  sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// Option configures New.
type Option func(*Typewriter)

// WithTiming overrides DefaultTiming.
func WithTiming(t Timing) Option {
	return func(w *Typewriter) { w.timing = t }
}

// New builds a typewriter cycling through phrases. An empty list falls back to
// DefaultPhrases.
func New(phrases []string, opts ...Option) *Typewriter {
	if len(phrases) == 0 {
		phrases = DefaultPhrases
	}
	w := &Typewriter{timing: DefaultTiming()}
	w.phrases = make([][]rune, len(phrases))
	for i, p := range phrases {
		w.phrases[i] = []rune(p)
	}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	return w
}

// Step advances by one rune and returns the visible text and the delay before
// the next step.
func (w *Typewriter) Step() (string, time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()

	current := w.phrases[w.phrase]
	var delay time.Duration
	if w.deleting {
		w.char = max(0, w.char-1)
		delay = w.timing.Delete
	} else {
		w.char = min(len(current), w.char+1)
		delay = w.timing.Type
	}
	w.text = string(current[:w.char])

	switch {
	case !w.deleting && w.char == len(current):
		w.deleting = true
		delay = w.timing.EndPause
	case w.deleting && w.char == 0:
		w.deleting = false
		w.phrase = (w.phrase + 1) % len(w.phrases)
		delay = w.timing.NextPause
	}
	return w.text, delay
}

// Current returns the visible text.
func (w *Typewriter) Current() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.text
}

// Phrase returns the index of the phrase being typed or deleted.
func (w *Typewriter) Phrase() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.phrase
}

// Run steps on the configured schedule until ctx is cancelled or Stop is
// called.
func (w *Typewriter) Run(ctx context.Context) error {
	if err := w.Start(ctx); err != nil {
		return err
	}
	w.runMu.Lock()
	done := w.done
	w.runMu.Unlock()
	<-done
	return nil
}

// Start launches the timer loop in a goroutine.
func (w *Typewriter) Start(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	w.runMu.Lock()
	defer w.runMu.Unlock()
	if w.done != nil {
		select {
		case <-w.done:
		default:
			return ErrRunning
		}
	}
	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	w.cancel = cancel
	w.done = done

	go func() {
		defer close(done)
		timer := time.NewTimer(w.timing.Initial)
		defer timer.Stop()
		for {
			select {
			case <-loopCtx.Done():
				return
			case <-timer.C:
				_, next := w.Step()
				timer.Reset(next)
			}
		}
	}()
	return nil
}

// Stop ends the loop and waits for it to exit. Stopping an idle typewriter
// is a no-op.
func (w *Typewriter) Stop() {
	w.runMu.Lock()
	cancel, done := w.cancel, w.done
	w.runMu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done

	w.runMu.Lock()
	if w.done == done {
		w.cancel = nil
		w.done = nil
	}
	w.runMu.Unlock()
}

// Running reports whether the loop is active.
func (w *Typewriter) Running() bool {
	w.runMu.Lock()
	defer w.runMu.Unlock()
	if w.done == nil {
		return false
	}
	select {
	case <-w.done:
		return false
	default:
		return true
	}
}
