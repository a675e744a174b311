package orbitals

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"testing"
)

const (
	testRadius = 80.0
	testCenter = 85.0
)

var testC = Pt(testCenter, testCenter)

func quads(t *testing.T, g Glyph) []QuadTo {
	t.Helper()
	var out []QuadTo
	for i, e := range g.Path.Elements() {
		switch e := e.(type) {
		case MoveTo:
			if i != 0 {
				t.Errorf("MoveTo at element %d, want only at 0", i)
			}
		case QuadTo:
			out = append(out, e)
		default:
			t.Errorf("unexpected element %T", e)
		}
	}
	return out
}

func TestBuild_Counts(t *testing.T) {
	tests := []struct {
		word     string
		vertices int
		rings    int
		pal      bool
	}{
		{"HELLO", 4, 1, false},
		{"LOVE", 4, 0, false},
		{"EARTH", 5, 0, false},
		{"ANNA", 3, 1, true},
		{"LLL", 1, 2, true},
		{"BOOKKEEPER", 7, 3, false},
		{"L1L", 2, 0, true},
		{"L L", 2, 0, true},
		{"hello", 4, 1, false},
		{"A", 1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			g := Build(English, tt.word, testRadius, testCenter)
			if len(g.Vertices) != tt.vertices {
				t.Errorf("vertices = %d, want %d", len(g.Vertices), tt.vertices)
			}
			if len(g.Rings) != tt.rings {
				t.Errorf("rings = %d, want %d", len(g.Rings), tt.rings)
			}
			if g.Palindrome != tt.pal {
				t.Errorf("Palindrome = %v, want %v", g.Palindrome, tt.pal)
			}
			if got := len(quads(t, g)); got != tt.vertices-1 {
				t.Errorf("segments = %d, want %d", got, tt.vertices-1)
			}
		})
	}
}

func TestBuild_HelloVertexOrder(t *testing.T) {
	g := Build(English, "HELLO", testRadius, testCenter)
	base := testRadius - DefaultRingMargin

	wantIdx := []int{0, 1, 2, 4}
	for i, v := range g.Vertices {
		if v.Index != wantIdx[i] {
			t.Errorf("vertex %d Index = %d, want %d", i, v.Index, wantIdx[i])
		}
	}
	for i, l := range []string{"H", "E", "L", "O"} {
		if want := mustAngle(t, l); !approxEqual(g.Vertices[i].Angle, want) {
			t.Errorf("vertex %d angle = %v, want %v (%s)", i, g.Vertices[i].Angle, want, l)
		}
	}

	wantRing := PolarToXY(mustAngle(t, "L"), base, testCenter)
	if g.Rings[0] != wantRing {
		t.Errorf("ring = %v, want %v", g.Rings[0], wantRing)
	}
}

func TestBuild_Empty(t *testing.T) {
	for _, word := range []string{"", "123", "   ", "!?", "ΑΒΓ"} {
		t.Run(fmt.Sprintf("%q", word), func(t *testing.T) {
			g := Build(English, word, testRadius, testCenter)
			if !g.IsEmpty() {
				t.Error("IsEmpty() = false, want true")
			}
			if g.StartDot != nil {
				t.Errorf("StartDot = %v, want nil", *g.StartDot)
			}
			if g.D() != "" {
				t.Errorf("D() = %q, want empty", g.D())
			}
			if g.Rings == nil || len(g.Rings) != 0 {
				t.Errorf("Rings = %#v, want empty non-nil slice", g.Rings)
			}
		})
	}
}

func TestBuild_NilAlphabet(t *testing.T) {
	g := Build(nil, "HELLO", testRadius, testCenter)
	if !g.IsEmpty() || g.StartDot != nil || g.D() != "" {
		t.Errorf("Build(nil alphabet) = %+v, want empty glyph", g)
	}
	if _, ok := AngleOf(nil, "A"); ok {
		t.Error("AngleOf(nil alphabet) reported ok")
	}
	if n := len(LabelPositions(nil, testRadius, testCenter, 0)); n != 0 {
		t.Errorf("LabelPositions(nil alphabet) = %d points, want 0", n)
	}
}

func TestBuild_SingleLetter(t *testing.T) {
	g := Build(English, "A", testRadius, testCenter)
	if g.IsEmpty() {
		t.Fatal("single letter glyph is empty")
	}
	if g.D() != "" {
		t.Errorf("D() = %q, want empty path data", g.D())
	}
	if n := len(g.Path.Elements()); n != 1 {
		t.Errorf("elements = %d, want a single MoveTo", n)
	}
	if len(g.Rings) != 0 {
		t.Errorf("rings = %d, want 0", len(g.Rings))
	}
	// A lone letter is a palindrome, so it sits one split outward.
	want := PolarToXY(math.Pi/2, testRadius-DefaultRingMargin+DefaultSplit, testCenter)
	if *g.StartDot != want {
		t.Errorf("StartDot = %v, want %v", *g.StartDot, want)
	}
}

func TestBuild_LeadIn(t *testing.T) {
	for _, word := range []string{"HELLO", "LOVE", "ANNA", "Z"} {
		t.Run(word, func(t *testing.T) {
			g := Build(English, word, testRadius, testCenter)
			dot := *g.StartDot
			first := g.Vertices[0].Point

			dDot := dot.Distance(testC)
			dFirst := first.Distance(testC)
			if !(dFirst < dDot) {
				t.Fatalf("first vertex at %v from center, dot at %v: not closer", dFirst, dDot)
			}
			if !approxEqual(dDot-dFirst, DefaultLeadIn) {
				t.Errorf("lead-in = %v, want %v", dDot-dFirst, DefaultLeadIn)
			}
			if !approxEqual(first.Distance(dot), DefaultLeadIn) {
				t.Errorf("offset length = %v, want %v", first.Distance(dot), DefaultLeadIn)
			}
			mv := g.Path.Elements()[0].(MoveTo)
			if mv.Point != first {
				t.Errorf("MoveTo = %v, want lead-in point %v", mv.Point, first)
			}
		})
	}
}

func TestBuild_LeadInDegenerate(t *testing.T) {
	// Zero radius puts the letter on the center: the direction falls back
	// to a zero offset instead of NaN.
	b := NewBuilder(WithRingMargin(0), WithSplit(0))
	g := b.Build(English, "A", 0, 50)
	if g.StartDot == nil {
		t.Fatal("expected a start dot")
	}
	first := g.Vertices[0].Point
	if math.IsNaN(first.X) || math.IsNaN(first.Y) {
		t.Fatalf("first vertex is NaN: %v", first)
	}
	if first != *g.StartDot {
		t.Errorf("first vertex = %v, want unmoved %v", first, *g.StartDot)
	}
}

func TestBuild_OrbitRule(t *testing.T) {
	g := Build(English, "LOVE", testRadius, testCenter)
	qs := quads(t, g)
	if len(qs) != 3 {
		t.Fatalf("segments = %d, want 3", len(qs))
	}
	for i, q := range qs {
		a, b := g.Vertices[i].Point, g.Vertices[i+1].Point
		mid := Pt((a.X+b.X)/2, (a.Y+b.Y)/2)
		ctrl1 := Pt(mid.X+(testCenter-mid.X)*0.8, mid.Y+(testCenter-mid.Y)*0.8)
		want := Pt(ctrl1.X+(b.X-ctrl1.X)*0.4, ctrl1.Y+(b.Y-ctrl1.Y)*0.4)
		if !approxEqual(q.Control.X, want.X) || !approxEqual(q.Control.Y, want.Y) {
			t.Errorf("segment %d control = %v, want %v", i, q.Control, want)
		}
		if q.Point != b {
			t.Errorf("segment %d end = %v, want %v", i, q.Point, b)
		}
	}
}

func TestBuild_PalindromeRadii(t *testing.T) {
	g := Build(English, "ABCBA", testRadius, testCenter)
	base := testRadius - DefaultRingMargin

	if d := g.StartDot.Distance(testC); !approxEqual(d, base+DefaultSplit) {
		t.Errorf("start dot radius = %v, want %v", d, base+DefaultSplit)
	}
	want := []float64{0, base + 1, base + 1, base - 1, base - 1}
	for i := 1; i < len(g.Vertices); i++ {
		if d := g.Vertices[i].Distance(testC); !approxEqual(d, want[i]) {
			t.Errorf("vertex %d radius = %v, want %v", i, d, want[i])
		}
	}
}

func TestBuild_PalindromeBowUsesSourceIndex(t *testing.T) {
	// Rings drop indices 1 and 6, so the vertex list is A0 B2 C3 B4 A5.
	// half = 3; only the segment leaving B4 bows to the other side.
	g := Build(English, "AABCBAA", testRadius, testCenter)
	if !g.Palindrome {
		t.Fatal("AABCBAA should be a palindrome")
	}
	if len(g.Rings) != 2 || len(g.Vertices) != 5 {
		t.Fatalf("got %d vertices, %d rings; want 5, 2", len(g.Vertices), len(g.Rings))
	}

	base := testRadius - DefaultRingMargin
	signs := []float64{-1, -1, -1, 1}
	for i, q := range quads(t, g) {
		a, b := g.Vertices[i].Point, g.Vertices[i+1].Point
		seg := b.Sub(a)
		l := math.Hypot(seg.X, seg.Y)
		perp := Pt(seg.Y/l, -seg.X/l)
		f := base * DefaultBowFactor * signs[i]
		want := Pt((a.X+b.X)/2+perp.X*f, (a.Y+b.Y)/2+perp.Y*f)
		if !approxEqual(q.Control.X, want.X) || !approxEqual(q.Control.Y, want.Y) {
			t.Errorf("segment %d control = %v, want %v", i, q.Control, want)
		}
	}
}

func TestBuild_PathString(t *testing.T) {
	d := Build(English, "HELLO", testRadius, testCenter).D()
	if !strings.HasPrefix(d, "M ") {
		t.Errorf("D() = %q, want M prefix", d)
	}
	if n := strings.Count(d, " Q "); n != 3 {
		t.Errorf("D() has %d Q commands, want 3", n)
	}
	for _, f := range strings.Fields(d) {
		if f == "M" || f == "Q" {
			continue
		}
		dot := strings.IndexByte(f, '.')
		if dot < 0 || len(f)-dot-1 != 2 {
			t.Errorf("coordinate %q not fixed to 2 decimals", f)
		}
	}
}

func TestBuild_Idempotent(t *testing.T) {
	for _, w := range []string{"HELLO", "ANNA", "orbitals", "Ünïcode"} {
		a := Build(English, w, testRadius, testCenter)
		b := Build(English, w, testRadius, testCenter)
		if a.D() != b.D() {
			t.Errorf("%s: D() differs between calls: %q vs %q", w, a.D(), b.D())
		}
	}
}

func TestBuild_CaseInsensitive(t *testing.T) {
	upper := Build(English, "EARTH", testRadius, testCenter)
	lower := Build(English, "earth", testRadius, testCenter)
	if upper.D() != lower.D() {
		t.Errorf("case changed the glyph: %q vs %q", upper.D(), lower.D())
	}
}

func TestBuild_OtherAlphabets(t *testing.T) {
	tests := []struct {
		alphabet *Alphabet
		word     string
		vertices int
		rings    int
	}{
		{German, "Straße", 6, 0},
		{German, "schön", 5, 0},
		{Greek, "ΓΕΙΑ", 4, 0},
		{Greek, "αγάπη", 4, 0},
		{Russian, "привет", 6, 0},
		{Russian, "ЖЖ", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.alphabet.Name()+"/"+tt.word, func(t *testing.T) {
			g := Build(tt.alphabet, tt.word, testRadius, testCenter)
			if len(g.Vertices) != tt.vertices || len(g.Rings) != tt.rings {
				t.Errorf("got %d vertices, %d rings; want %d, %d",
					len(g.Vertices), len(g.Rings), tt.vertices, tt.rings)
			}
		})
	}
}

func TestBuilder_Options(t *testing.T) {
	b := NewBuilder(WithLeadIn(3), WithRingMargin(10), WithRotation(13))
	cfg := b.Config()
	if cfg.LeadIn != 3 || cfg.RingMargin != 10 || cfg.Rotation != 13 {
		t.Fatalf("Config() = %+v", cfg)
	}
	if cfg.PullFactor != DefaultPullFactor {
		t.Errorf("PullFactor = %v, want default %v", cfg.PullFactor, DefaultPullFactor)
	}

	// Rotated by half a wheel, A sits at 6 o'clock.
	g := b.Build(English, "AB", testRadius, testCenter)
	want := Pt(testCenter, testCenter+testRadius-10)
	if !approxEqual(g.StartDot.X, want.X) || !approxEqual(g.StartDot.Y, want.Y) {
		t.Errorf("StartDot = %v, want %v", *g.StartDot, want)
	}
	if d := g.StartDot.Distance(g.Vertices[0].Point); !approxEqual(d, 3) {
		t.Errorf("lead-in = %v, want 3", d)
	}
}

func TestBuilder_WithConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BowFactor = 0.5
	b := NewBuilder(WithConfig(cfg), WithCurveFactors(0.5, 0.5), WithSplit(2), WithBowFactor(0.1))
	got := b.Config()
	if got.BowFactor != 0.1 || got.Split != 2 || got.RadialFactor != 0.5 || got.PullFactor != 0.5 {
		t.Errorf("Config() = %+v", got)
	}
}

func TestBuilder_ConcurrentBuild(t *testing.T) {
	want := Build(English, "CONCURRENT", testRadius, testCenter).D()

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := Build(English, "CONCURRENT", testRadius, testCenter).D(); got != want {
				t.Errorf("concurrent build differs: %q", got)
			}
		}()
	}
	wg.Wait()
}

func TestBuildAll(t *testing.T) {
	words := Words(English.Sample())
	glyphs, err := NewBuilder().BuildAll(context.Background(), English, words, testRadius, testCenter)
	if err != nil {
		t.Fatalf("BuildAll() error = %v", err)
	}
	if len(glyphs) != len(words) {
		t.Fatalf("len = %d, want %d", len(glyphs), len(words))
	}
	for i, w := range words {
		if want := Build(English, w, testRadius, testCenter).D(); glyphs[i].D() != want {
			t.Errorf("glyph %d (%s) out of order", i, w)
		}
	}
}

func TestBuildAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewBuilder().BuildAll(ctx, English, []string{"A", "B"}, testRadius, testCenter)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("BuildAll() error = %v, want context.Canceled", err)
	}
}

func BenchmarkBuild(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		Build(English, "ORBITALS", testRadius, testCenter)
	}
}
