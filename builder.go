package orbitals

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Builder turns words into glyphs using a fixed geometry.
// A Builder is immutable and safe for concurrent use.
type Builder struct {
	cfg Config
}

// NewBuilder creates a builder with the default geometry adjusted by opts.
func NewBuilder(opts ...Option) *Builder {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Builder{cfg: cfg}
}

// Config returns the builder geometry.
func (b *Builder) Config() Config {
	return b.cfg
}

var defaultBuilder = NewBuilder()

// Build builds a glyph with the default geometry.
func Build(alphabet *Alphabet, word string, wheelRadius, center float64) Glyph {
	return defaultBuilder.Build(alphabet, word, wheelRadius, center)
}

// Build converts word into a glyph on a wheel of wheelRadius centered at
// (center, center).
//
// Letters missing from the alphabet are skipped. A letter equal to the one
// right before it becomes a ring marker instead of a path vertex, provided
// that previous letter was on the wheel. A word with no usable letters
// yields an empty glyph, as does a nil alphabet; a single usable letter
// yields a dot and a path with no curve segments.
func (b *Builder) Build(alphabet *Alphabet, word string, wheelRadius, center float64) Glyph {
	letters := Letters(word)
	if len(letters) == 0 || alphabet == nil {
		return emptyGlyph()
	}

	cfg := b.cfg
	c := Pt(center, center)
	baseRadius := wheelRadius - cfg.RingMargin
	pal := isPalindrome(letters)
	half := (len(letters) - 1) / 2

	var (
		verts      []Vertex
		rings      = []Point{}
		skipped    int
		prevMapped bool
	)
	for i, l := range letters {
		angle, ok := angleOf(alphabet, l, cfg.Rotation)
		if !ok {
			skipped++
			prevMapped = false
			continue
		}

		r := baseRadius
		if pal {
			if i <= half {
				r += cfg.Split
			} else {
				r -= cfg.Split
			}
		}
		p := PolarToXY(angle, r, center)

		if i > 0 && prevMapped && l == letters[i-1] {
			rings = append(rings, p)
		} else {
			verts = append(verts, Vertex{Point: p, Angle: angle, Index: i})
		}
		prevMapped = true
	}

	log := Logger()
	if len(verts) == 0 {
		log.Debug("orbitals: empty glyph", "word", word, "alphabet", alphabet.Name(), "skipped", skipped)
		return emptyGlyph()
	}

	dot := verts[0].Point
	verts[0].Point = dot.Add(c.Sub(dot).Unit().Mul(cfg.LeadIn))

	path := NewPath()
	path.MoveTo(verts[0].X, verts[0].Y)
	for i := 1; i < len(verts); i++ {
		a, bv := verts[i-1], verts[i]

		var ctrl Point
		if pal {
			ctrl = b.bowControl(a, bv, half, baseRadius)
		} else {
			ctrl = b.orbitControl(a.Point, bv.Point, c)
		}
		path.QuadraticTo(ctrl.X, ctrl.Y, bv.X, bv.Y)
	}

	log.Debug("orbitals: glyph built",
		"word", word,
		"alphabet", alphabet.Name(),
		"vertices", len(verts),
		"rings", len(rings),
		"skipped", skipped,
		"palindrome", pal)

	return Glyph{
		Path:       path,
		StartDot:   &dot,
		Rings:      rings,
		Vertices:   verts,
		Palindrome: pal,
	}
}

// bowControl places the control point of a palindrome segment to one side
// of the chord, switching sides once the source letter of a passes the
// middle of the word.
func (b *Builder) bowControl(a, bv Vertex, half int, baseRadius float64) Point {
	perp := bv.Sub(a.Point).Unit().Perp()
	sign := 1.0
	if a.Index <= half {
		sign = -1
	}
	return a.Midpoint(bv.Point).Add(perp.Mul(b.cfg.BowFactor * baseRadius * sign))
}

// orbitControl pulls the chord midpoint toward the center, then part of
// the way back out toward the segment end.
func (b *Builder) orbitControl(a, bv, center Point) Point {
	ctrl := a.Midpoint(bv).Lerp(center, b.cfg.RadialFactor)
	return ctrl.Lerp(bv, b.cfg.PullFactor)
}

// BuildAll builds one glyph per word in parallel. The result is in the
// same order as words. It stops early and returns ctx.Err() if ctx is
// cancelled.
func (b *Builder) BuildAll(ctx context.Context, alphabet *Alphabet, words []string, wheelRadius, center float64) ([]Glyph, error) {
	glyphs := make([]Glyph, len(words))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, w := range words {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			glyphs[i] = b.Build(alphabet, w, wheelRadius, center)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return glyphs, nil
}
