// Package particles simulates the drifting point field behind the hero banner
// and draws it with proximity connections.
package particles

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// DefaultCount is the number of particles a field starts with.
	DefaultCount = 80
	// MaxSpeed bounds each velocity component to [-MaxSpeed, MaxSpeed].
	MaxSpeed = 0.25
	// MinRadius and MaxRadius bound particle radii.
	MinRadius = 0.5
	MaxRadius = 2.5
	// ConnectDistance is the exclusive distance under which two particles are
	// joined by a line.
	ConnectDistance = 150.0
	// LineWidth is the stroke width of connection lines.
	LineWidth = 0.5
)

// Particle is one moving point.
type Particle struct {
	Pos    r2.Vec
	Vel    r2.Vec
	Radius float64
}

// Field owns the particle set and its extents. A Field is not safe for
// concurrent use; Animator serializes access.
type Field struct {
	width, height float64
	particles     []Particle
}

type fieldOptions struct {
	count int
	rng   *rand.Rand
}

// Option configures New.
type Option func(*fieldOptions)

// WithCount overrides DefaultCount. Negative counts are treated as zero.
func WithCount(n int) Option {
	return func(o *fieldOptions) {
		if n < 0 {
			n = 0
		}
		o.count = n
	}
}

// WithRand sets the random source used for initial placement.
func WithRand(rng *rand.Rand) Option {
	return func(o *fieldOptions) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// WithSeed makes initial placement deterministic.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// New creates a field of the given size populated with randomly placed
// particles.
func New(width, height float64, opts ...Option) *Field {
	o := fieldOptions{count: DefaultCount}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	f := &Field{width: nonNegative(width), height: nonNegative(height)}
	f.particles = make([]Particle, o.count)
	for i := range f.particles {
		f.particles[i] = Particle{
			Pos:    r2.Vec{X: o.rng.Float64() * f.width, Y: o.rng.Float64() * f.height},
			Vel:    r2.Vec{X: (o.rng.Float64() - 0.5) * 2 * MaxSpeed, Y: (o.rng.Float64() - 0.5) * 2 * MaxSpeed},
			Radius: MinRadius + o.rng.Float64()*(MaxRadius-MinRadius),
		}
	}
	return f
}

// FromParticles builds a field around an explicit particle set.
func FromParticles(width, height float64, particles []Particle) *Field {
	return &Field{
		width:     nonNegative(width),
		height:    nonNegative(height),
		particles: append([]Particle(nil), particles...),
	}
}

// Size returns the current field extents.
func (f *Field) Size() (width, height float64) {
	return f.width, f.height
}

// Particles returns a copy of the current particle set.
func (f *Field) Particles() []Particle {
	return append([]Particle(nil), f.particles...)
}

// Resize changes the field extents. Existing positions are not rescaled, so
// particles may sit outside a shrunken field until the next Advance brings
// them back.
func (f *Field) Resize(width, height float64) {
	f.width = nonNegative(width)
	f.height = nonNegative(height)
}

// Advance moves every particle by its velocity. A particle that crosses a
// wall is mirrored back inside and the matching velocity component takes the
// sign pointing into the field; speed is never changed. When a single step
// overshoots by more than the field size the position is clamped to the wall.
func (f *Field) Advance() {
	for i := range f.particles {
		p := &f.particles[i]
		p.Pos = r2.Add(p.Pos, p.Vel)
		p.Pos.X, p.Vel.X = reflect(p.Pos.X, p.Vel.X, f.width)
		p.Pos.Y, p.Vel.Y = reflect(p.Pos.Y, p.Vel.Y, f.height)
	}
}

func reflect(pos, vel, extent float64) (float64, float64) {
	switch {
	case pos < 0:
		pos = -pos
		vel = math.Abs(vel)
	case pos > extent:
		pos = 2*extent - pos
		vel = -math.Abs(vel)
	default:
		return pos, vel
	}
	return math.Min(math.Max(pos, 0), extent), vel
}

// Connections lists every unordered particle pair closer than
// ConnectDistance.
func (f *Field) Connections() []Connection {
	return Connections(f.particles)
}

// Render draws the current frame on s.
func (f *Field) Render(s Surface) {
	Frame{Width: f.width, Height: f.height, Particles: f.particles}.Render(s)
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}
