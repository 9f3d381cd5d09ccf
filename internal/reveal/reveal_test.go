package reveal

import (
	"reflect"
	"testing"
)

var viewport = Rect{X: 0, Y: 0, Width: 1000, Height: 800}

func TestUpdateActivatesAtThreshold(t *testing.T) {
	t.Parallel()

	tr := NewTracker(DefaultOptions())
	tr.Observe("hero", "about", "below")

	got := tr.Update(viewport, map[string]Rect{
		"hero":  {X: 0, Y: 0, Width: 1000, Height: 400},
		"about": {X: 0, Y: 745, Width: 1000, Height: 100}, // 5px inside the shrunk root
		"below": {X: 0, Y: 900, Width: 1000, Height: 100},
	})
	if want := []string{"hero"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Update() = %v, want %v", got, want)
	}
	if tr.Active("about") {
		t.Fatal("about active with 5% overlap above the bottom margin")
	}

	got = tr.Update(viewport, map[string]Rect{
		"about": {X: 0, Y: 700, Width: 1000, Height: 100}, // 50px inside
	})
	if want := []string{"about"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("second Update() = %v, want %v", got, want)
	}
}

func TestFlagsAreMonotonic(t *testing.T) {
	t.Parallel()

	tr := NewTracker(DefaultOptions())
	tr.Observe("card")
	tr.Update(viewport, map[string]Rect{"card": {Y: 10, Width: 100, Height: 100}})
	if !tr.Active("card") {
		t.Fatal("card not active after entering viewport")
	}

	got := tr.Update(viewport, map[string]Rect{"card": {Y: 5000, Width: 100, Height: 100}})
	if len(got) != 0 {
		t.Fatalf("Update() = %v, want no new activations", got)
	}
	if !tr.Active("card") {
		t.Fatal("card lost its flag after leaving the viewport")
	}

	tr.Observe("card")
	if !tr.Active("card") {
		t.Fatal("re-observing reset the flag")
	}
}

func TestRescanReplacesGroup(t *testing.T) {
	t.Parallel()

	tr := NewTracker(DefaultOptions())
	tr.Observe("members")
	tr.Rescan("projects", "p1", "p2")
	tr.Update(viewport, map[string]Rect{
		"members": {Width: 10, Height: 10},
		"p1":      {Width: 10, Height: 10},
		"p2":      {Width: 10, Height: 10},
	})

	tr.Rescan("projects", "p2", "p3")
	if want := []string{"members", "p2", "p3"}; !reflect.DeepEqual(tr.Observed(), want) {
		t.Fatalf("Observed() = %v, want %v", tr.Observed(), want)
	}
	if tr.Active("p1") {
		t.Fatal("dropped target still reported active")
	}
	if tr.Active("p2") {
		t.Fatal("replaced target kept its flag")
	}
	if !tr.Active("members") {
		t.Fatal("other group lost its flag")
	}
}

func TestRescanLeavesOtherGroupsFlagged(t *testing.T) {
	t.Parallel()

	tr := NewTracker(DefaultOptions())
	tr.Observe("members")
	tr.Update(viewport, map[string]Rect{"members": {Width: 10, Height: 10}})

	tr.Rescan("projects", "members", "p1")
	if !tr.Active("members") {
		t.Fatal("rescan of projects cleared the members flag")
	}
	if want := []string{"members", "p1"}; !reflect.DeepEqual(tr.Observed(), want) {
		t.Fatalf("Observed() = %v, want %v", tr.Observed(), want)
	}

	tr.Rescan("projects")
	if want := []string{"members"}; !reflect.DeepEqual(tr.Observed(), want) {
		t.Fatalf("Observed() after empty rescan = %v, want %v", tr.Observed(), want)
	}
}

func TestZeroAreaAndEdgeTouch(t *testing.T) {
	t.Parallel()

	tr := NewTracker(Options{Threshold: 0})
	tr.Observe("marker", "edge", "outside")
	got := tr.Update(viewport, map[string]Rect{
		"marker":  {X: 10, Y: 10},
		"edge":    {X: 1000, Y: 0, Width: 50, Height: 50},
		"outside": {X: 1001, Y: 0, Width: 50, Height: 50},
	})
	if want := []string{"marker", "edge"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Update() = %v, want %v", got, want)
	}
}

func TestUpdateIgnoresUnknownAndMissing(t *testing.T) {
	t.Parallel()

	tr := NewTracker(DefaultOptions())
	tr.Observe("a", "")
	got := tr.Update(viewport, map[string]Rect{"stranger": {Width: 10, Height: 10}})
	if len(got) != 0 {
		t.Fatalf("Update() = %v, want none", got)
	}
	if want := []string{"a"}; !reflect.DeepEqual(tr.Observed(), want) {
		t.Fatalf("Observed() = %v, want %v", tr.Observed(), want)
	}
}

func TestRectIntersect(t *testing.T) {
	t.Parallel()

	got, ok := Rect{Width: 10, Height: 10}.Intersect(Rect{X: 5, Y: 5, Width: 10, Height: 10})
	if !ok || got != (Rect{X: 5, Y: 5, Width: 5, Height: 5}) {
		t.Fatalf("Intersect() = %v, %v", got, ok)
	}
	if _, ok := (Rect{Width: 1, Height: 1}).Intersect(Rect{X: 3, Y: 3, Width: 1, Height: 1}); ok {
		t.Fatal("disjoint rects intersect")
	}
}
