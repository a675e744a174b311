package orbitals

// Glyph is the drawable form of one word on one alphabet wheel.
// A Glyph is computed in full by Builder.Build and never modified after.
type Glyph struct {
	// Path is the continuous stroke: a MoveTo to the lead-in point
	// followed by one QuadTo per consecutive vertex pair.
	Path *Path

	// StartDot is the exact position of the first letter, before the
	// lead-in offset. It is nil when the word produced no points.
	StartDot *Point

	// Rings marks letters that immediately repeat their predecessor,
	// in word order.
	Rings []Point

	// Vertices are the path points in order, the first one offset by
	// the lead-in.
	Vertices []Vertex

	// Palindrome reports whether the leaf-shaped palindrome rule was used.
	Palindrome bool
}

// emptyGlyph returns the glyph of a word with no usable letters.
func emptyGlyph() Glyph {
	return Glyph{
		Path:  NewPath(),
		Rings: []Point{},
	}
}

// IsEmpty reports whether the glyph draws nothing.
func (g Glyph) IsEmpty() bool {
	return g.StartDot == nil
}

// D returns the SVG path data of the stroke.
func (g Glyph) D() string {
	return g.Path.String()
}
