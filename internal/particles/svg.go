package particles

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"gonum.org/v1/gonum/spatial/r2"
)

// svgScale maps field units onto svgo's integer coordinates; the viewBox
// scales them back down.
const svgScale = 10

// SVGSurface draws onto an SVG document.
type SVGSurface struct {
	canvas        *svg.SVG
	width, height int
	closed        bool
}

// NewSVGSurface starts an SVG document of the given pixel size on w. The
// document covers any box it is scaled into, cropping the overflow.
func NewSVGSurface(w io.Writer, width, height float64) *SVGSurface {
	pw := int(math.Ceil(nonNegative(width)))
	ph := int(math.Ceil(nonNegative(height)))
	canvas := svg.New(w)
	canvas.Start(pw, ph,
		fmt.Sprintf(`viewBox="0 0 %d %d"`, pw*svgScale, ph*svgScale),
		`preserveAspectRatio="xMidYMid slice"`,
	)
	return &SVGSurface{canvas: canvas, width: pw, height: ph}
}

// Clear paints a transparent backdrop covering the document.
func (s *SVGSurface) Clear() {
	s.canvas.Rect(0, 0, s.width*svgScale, s.height*svgScale, "fill:none")
}

// FillCircle draws a filled dot.
func (s *SVGSurface) FillCircle(center r2.Vec, radius float64, c Color) {
	r := scaled(radius)
	if r < 1 {
		r = 1
	}
	s.canvas.Circle(scaled(center.X), scaled(center.Y), r, "fill:"+c.CSS())
}

// StrokeLine draws a line segment.
func (s *SVGSurface) StrokeLine(from, to r2.Vec, width float64, c Color) {
	s.canvas.Line(scaled(from.X), scaled(from.Y), scaled(to.X), scaled(to.Y),
		fmt.Sprintf("stroke:%s;stroke-width:%d", c.CSS(), max(1, scaled(width))))
}

// Close ends the document. It is safe to call more than once.
func (s *SVGSurface) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.canvas.End()
}

func scaled(v float64) int {
	return int(math.Round(v * svgScale))
}

// WriteSVG renders frame as a standalone SVG document.
func WriteSVG(w io.Writer, frame Frame) error {
	if w == nil {
		return fmt.Errorf("svg writer is required")
	}
	surface := NewSVGSurface(w, frame.Width, frame.Height)
	frame.Render(surface)
	surface.Close()
	return nil
}
