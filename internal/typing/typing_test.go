package typing

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestStepCyclesThroughPhrases(t *testing.T) {
	t.Parallel()

	w := New([]string{"ab", "c"})
	timing := DefaultTiming()
	steps := []struct {
		text  string
		delay time.Duration
	}{
		{"a", timing.Type},
		{"ab", timing.EndPause},
		{"a", timing.Delete},
		{"", timing.NextPause},
		{"c", timing.EndPause},
		{"", timing.NextPause},
		{"a", timing.Type},
	}
	for i, want := range steps {
		text, delay := w.Step()
		if text != want.text || delay != want.delay {
			t.Fatalf("step %d = (%q, %v), want (%q, %v)", i, text, delay, want.text, want.delay)
		}
	}
	if got := w.Current(); got != "a" {
		t.Fatalf("Current() = %q, want %q", got, "a")
	}
}

func TestStepCountsRunesNotBytes(t *testing.T) {
	t.Parallel()

	w := New([]string{"데이터"})
	for _, want := range []string{"데", "데이", "데이터"} {
		if got, _ := w.Step(); got != want {
			t.Fatalf("Step() = %q, want %q", got, want)
		}
	}
}

func TestStepSkipsEmptyPhrase(t *testing.T) {
	t.Parallel()

	w := New([]string{"", "x"})
	if text, delay := w.Step(); text != "" || delay != DefaultTiming().EndPause {
		t.Fatalf("first step = (%q, %v), want empty end pause", text, delay)
	}
	if text, delay := w.Step(); text != "" || delay != DefaultTiming().NextPause {
		t.Fatalf("second step = (%q, %v), want empty next pause", text, delay)
	}
	if got := w.Phrase(); got != 1 {
		t.Fatalf("Phrase() = %d, want 1", got)
	}
}

func TestNewDefaultsPhrases(t *testing.T) {
	t.Parallel()

	w := New(nil)
	text, _ := w.Step()
	if want := string([]rune(DefaultPhrases[0])[:1]); text != want {
		t.Fatalf("Step() = %q, want %q", text, want)
	}
}

func TestStartRunsLoopUntilStop(t *testing.T) {
	t.Parallel()

	w := New([]string{"hello"}, WithTiming(Timing{
		Initial:   time.Millisecond,
		Type:      time.Millisecond,
		Delete:    time.Millisecond,
		EndPause:  time.Hour,
		NextPause: time.Millisecond,
	}))
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := w.Start(context.Background()); !errors.Is(err, ErrRunning) {
		t.Fatalf("second Start() error = %v, want ErrRunning", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for w.Current() != "hello" {
		if time.Now().After(deadline) {
			t.Fatalf("Current() = %q, want %q before deadline", w.Current(), "hello")
		}
		time.Sleep(time.Millisecond)
	}
	w.Stop()
	w.Stop()
	if w.Running() {
		t.Fatal("Running() = true after Stop")
	}
}

func TestRunReturnsOnCancel(t *testing.T) {
	t.Parallel()

	w := New(nil)
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- w.Run(ctx) }()
	cancel()
	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("restart error = %v", err)
	}
	w.Stop()
}
