package orbitals

import (
	"strconv"
	"strings"
)

// PathElement represents a single element in a glyph path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve from the current point.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// Path is the stroke of a glyph: one MoveTo followed by QuadTo segments.
// The zero value is an empty path.
type Path struct {
	elements []PathElement
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	p.elements = append(p.elements, MoveTo{Point: Pt(x, y)})
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	if p == nil {
		return nil
	}
	return p.elements
}

// Segments returns the number of curve segments in the path.
func (p *Path) Segments() int {
	n := 0
	for _, e := range p.Elements() {
		if _, ok := e.(QuadTo); ok {
			n++
		}
	}
	return n
}

// String returns the path as SVG path data ("M x y Q cx cy x y ...") with
// coordinates fixed to two decimal digits.
//
// A path without curve segments renders as the empty string: a lone MoveTo
// draws nothing, so single-letter glyphs are represented by their dot only.
func (p *Path) String() string {
	if p.Segments() == 0 {
		return ""
	}

	var b strings.Builder
	for _, e := range p.Elements() {
		switch e := e.(type) {
		case MoveTo:
			b.WriteString("M ")
			writeCoords(&b, e.Point)
		case QuadTo:
			b.WriteString(" Q ")
			writeCoords(&b, e.Control)
			b.WriteByte(' ')
			writeCoords(&b, e.Point)
		}
	}
	return b.String()
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = append(result.elements, p.Elements()...)
	return result
}

func writeCoords(b *strings.Builder, pt Point) {
	b.WriteString(FormatCoord(pt.X))
	b.WriteByte(' ')
	b.WriteString(FormatCoord(pt.Y))
}

// FormatCoord formats a coordinate with two decimal digits, the precision
// used for all emitted glyph geometry. Values that round to zero print as
// "0.00", never "-0.00".
func FormatCoord(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if s == "-0.00" {
		return "0.00"
	}
	return s
}
