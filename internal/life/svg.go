package life

import (
	"fmt"
	"io"
	"strings"
)

// SVGSurface records drawing calls and writes them out as an SVG document.
type SVGSurface struct {
	Stroke      string
	StrokeWidth float64

	width, height float64
	rects         strings.Builder
	count         int
}

// NewSVGSurface returns a surface with a thin grey stroke.
func NewSVGSurface() *SVGSurface {
	return &SVGSurface{Stroke: "#888888", StrokeWidth: 1}
}

func (s *SVGSurface) Clear(width, height float64) {
	s.width, s.height = width, height
	s.rects.Reset()
	s.count = 0
}

func (s *SVGSurface) StrokeRect(x, y, w, h float64) {
	fmt.Fprintf(&s.rects, `<rect x="%g" y="%g" width="%g" height="%g"/>`, x, y, w, h)
	s.count++
}

// Rects is the number of squares drawn since the last Clear.
func (s *SVGSurface) Rects() int { return s.count }

// WriteTo writes the SVG document.
func (s *SVGSurface) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+
			`<g fill="none" stroke="%s" stroke-width="%g">%s</g></svg>`,
		s.width, s.height, s.width, s.height, s.Stroke, s.StrokeWidth, s.rects.String())
	return int64(n), err
}
