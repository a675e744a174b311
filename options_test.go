package orbitals

import "testing"

// TestNewBuilderDefault tests that NewBuilder uses the standard geometry.
func TestNewBuilderDefault(t *testing.T) {
	b := NewBuilder()
	if got, want := b.Config(), DefaultConfig(); got != want {
		t.Errorf("Config() = %+v, want %+v", got, want)
	}
}

// TestOptionsApplyInOrder tests that later options win.
func TestOptionsApplyInOrder(t *testing.T) {
	b := NewBuilder(
		WithLeadIn(3),
		WithRingMargin(10),
		WithSplit(2),
		WithBowFactor(0.5),
		WithCurveFactors(0.6, 0.2),
		WithRotation(5),
		WithLeadIn(4),
	)

	want := Config{
		LeadIn:       4,
		RingMargin:   10,
		Split:        2,
		BowFactor:    0.5,
		RadialFactor: 0.6,
		PullFactor:   0.2,
		Rotation:     5,
	}
	if got := b.Config(); got != want {
		t.Errorf("Config() = %+v, want %+v", got, want)
	}
}

// TestWithConfigReplacesAll tests that WithConfig discards earlier options.
func TestWithConfigReplacesAll(t *testing.T) {
	b := NewBuilder(WithRotation(7), WithConfig(Config{LeadIn: 1}))
	if got := b.Config(); got != (Config{LeadIn: 1}) {
		t.Errorf("Config() = %+v, want only LeadIn set", got)
	}
}

// TestLeadInMovesFirstVertex tests the first vertex sits LeadIn units
// inside the start dot.
func TestLeadInMovesFirstVertex(t *testing.T) {
	for _, d := range []float64{0, 3, DefaultLeadIn} {
		g := NewBuilder(WithLeadIn(d)).Build(English, "LOVE", 80, 85)
		if got := g.Vertices[0].Distance(*g.StartDot); !approxEqual(got, d) {
			t.Errorf("lead-in %v: vertex is %v from the dot", d, got)
		}
	}
}
