package particles

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Color is an RGB color with a [0,1] alpha.
type Color struct {
	R, G, B uint8
	A       float64
}

// WithAlpha returns c with a replaced alpha.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// CSS formats c as an rgba() value.
func (c Color) CSS() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", c.R, c.G, c.B, c.A)
}

// Accent is the brand blue used for dots and lines.
var Accent = Color{R: 79, G: 110, B: 247, A: 1}

// ParticleColor is the fill for particle dots.
var ParticleColor = Accent.WithAlpha(0.5)

// Surface is a 2D drawing target.
type Surface interface {
	Clear()
	FillCircle(center r2.Vec, radius float64, c Color)
	StrokeLine(from, to r2.Vec, width float64, c Color)
}

// Frame is an immutable copy of a field at one instant.
type Frame struct {
	Index     uint64
	Width     float64
	Height    float64
	Particles []Particle
}

// Render clears s, fills every particle and strokes every visible
// connection.
func (f Frame) Render(s Surface) {
	if s == nil {
		return
	}
	s.Clear()
	for _, p := range f.Particles {
		s.FillCircle(p.Pos, p.Radius, ParticleColor)
	}
	for _, c := range Connections(f.Particles) {
		if c.Opacity <= 0 {
			continue
		}
		s.StrokeLine(c.From, c.To, LineWidth, Accent.WithAlpha(c.Opacity))
	}
}
