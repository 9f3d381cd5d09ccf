// Package reveal tracks one-time entrance flags for page sections: an element
// becomes active the first time enough of it intersects the viewport, and
// stays active.
package reveal

import "sync"

// DefaultThreshold is the visible fraction needed to activate an element.
const DefaultThreshold = 0.1

// DefaultBottomMargin shrinks the viewport bottom so elements activate a
// little after they scroll into view.
const DefaultBottomMargin = 50.0

// Options tune the intersection test.
type Options struct {
	Threshold    float64
	BottomMargin float64
}

// DefaultOptions returns the site observer settings.
func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold, BottomMargin: DefaultBottomMargin}
}

// Rect is an axis-aligned box in page coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

// Area returns the rect area; negative extents count as zero.
func (r Rect) Area() float64 {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return r.Width * r.Height
}

// Intersect returns the overlap of r and o and whether they touch at all.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.Width, o.X+o.Width), min(r.Y+r.Height, o.Y+o.Height)
	if x1 < x0 || y1 < y0 {
		return Rect{}, false
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, true
}

type target struct {
	group  string
	active bool
}

// Tracker holds the observed targets and their flags. It is safe for
// concurrent use.
type Tracker struct {
	opts Options

	mu      sync.Mutex
	order   []string
	targets map[string]*target
}

// NewTracker creates a tracker. A zero threshold activates on any overlap.
func NewTracker(opts Options) *Tracker {
	if opts.Threshold < 0 {
		opts.Threshold = 0
	}
	if opts.Threshold > 1 {
		opts.Threshold = 1
	}
	return &Tracker{opts: opts, targets: map[string]*target{}}
}

// Options returns the tracker settings.
func (t *Tracker) Options() Options {
	return t.opts
}

// Observe registers ids in the default group. Already observed ids keep
// their flag.
func (t *Tracker) Observe(ids ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, id := range ids {
		t.add(id, "")
	}
}

func (t *Tracker) add(id, group string) {
	if id == "" {
		return
	}
	if _, ok := t.targets[id]; ok {
		return
	}
	t.targets[id] = &target{group: group}
	t.order = append(t.order, id)
}

// Rescan replaces the targets of group after a re-render. Previous members of
// the group are dropped and the ids given start unflagged, since the nodes
// behind them are new. Ids owned by another group are left as they are.
func (t *Tracker) Rescan(group string, ids ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	kept := t.order[:0]
	for _, id := range t.order {
		if tg := t.targets[id]; tg.group == group {
			delete(t.targets, id)
			continue
		}
		kept = append(kept, id)
	}
	t.order = kept
	for _, id := range ids {
		t.add(id, group)
	}
}

// Update tests every unflagged target against viewport and returns the ids
// that became active, in observation order. Targets missing from bounds are
// left untouched.
func (t *Tracker) Update(viewport Rect, bounds map[string]Rect) []string {
	root := viewport
	root.Height = max(0, root.Height-t.opts.BottomMargin)

	t.mu.Lock()
	defer t.mu.Unlock()

	var activated []string
	for _, id := range t.order {
		tg := t.targets[id]
		if tg.active {
			continue
		}
		b, ok := bounds[id]
		if !ok || !t.visible(root, b) {
			continue
		}
		tg.active = true
		activated = append(activated, id)
	}
	return activated
}

func (t *Tracker) visible(root, b Rect) bool {
	overlap, ok := root.Intersect(b)
	if !ok {
		return false
	}
	area := b.Area()
	if area == 0 {
		return true
	}
	return overlap.Area()/area >= t.opts.Threshold
}

// Active reports whether id has been flagged.
func (t *Tracker) Active(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	tg, ok := t.targets[id]
	return ok && tg.active
}

// Observed lists the tracked ids in observation order.
func (t *Tracker) Observed() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.order...)
}
