package particles

import (
	"fmt"
	"image"
	"io"
	"math"

	"git.sr.ht/~sbinet/gg"
	"gonum.org/v1/gonum/spatial/r2"
)

// RasterSurface draws onto an in-memory RGBA image.
type RasterSurface struct {
	dc *gg.Context
}

// NewRasterSurface allocates a width x height image. Sizes are rounded up and
// kept at least one pixel.
func NewRasterSurface(width, height float64) *RasterSurface {
	pw := max(1, int(math.Ceil(nonNegative(width))))
	ph := max(1, int(math.Ceil(nonNegative(height))))
	return &RasterSurface{dc: gg.NewContext(pw, ph)}
}

// Clear resets every pixel to transparent.
func (s *RasterSurface) Clear() {
	s.dc.SetRGBA(0, 0, 0, 0)
	s.dc.Clear()
}

// FillCircle draws a filled dot.
func (s *RasterSurface) FillCircle(center r2.Vec, radius float64, c Color) {
	s.setColor(c)
	s.dc.DrawCircle(center.X, center.Y, radius)
	s.dc.Fill()
}

// StrokeLine draws a line segment.
func (s *RasterSurface) StrokeLine(from, to r2.Vec, width float64, c Color) {
	s.setColor(c)
	s.dc.SetLineWidth(width)
	s.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	s.dc.Stroke()
}

func (s *RasterSurface) setColor(c Color) {
	s.dc.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, c.A)
}

// Image returns the rendered image.
func (s *RasterSurface) Image() image.Image {
	return s.dc.Image()
}

// EncodePNG writes the image as PNG.
func (s *RasterSurface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// WritePNG renders frame as a PNG image.
func WritePNG(w io.Writer, frame Frame) error {
	if w == nil {
		return fmt.Errorf("png writer is required")
	}
	surface := NewRasterSurface(frame.Width, frame.Height)
	frame.Render(surface)
	if err := surface.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
