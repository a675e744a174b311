package orbitals

import (
	"math"
	"testing"
)

func TestPath_String(t *testing.T) {
	tests := []struct {
		name  string
		build func(p *Path)
		want  string
	}{
		{"empty", func(p *Path) {}, ""},
		{"move only", func(p *Path) { p.MoveTo(1, 2) }, ""},
		{
			"one quad",
			func(p *Path) {
				p.MoveTo(1, 2)
				p.QuadraticTo(3.333, 4.5, 5, -6.006)
			},
			"M 1.00 2.00 Q 3.33 4.50 5.00 -6.01",
		},
		{
			"two quads",
			func(p *Path) {
				p.MoveTo(0, 0)
				p.QuadraticTo(1, 1, 2, 2)
				p.QuadraticTo(3, 3, 4, 4)
			},
			"M 0.00 0.00 Q 1.00 1.00 2.00 2.00 Q 3.00 3.00 4.00 4.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath()
			tt.build(p)
			if got := p.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPath_NilAndZero(t *testing.T) {
	var nilPath *Path
	if nilPath.String() != "" || len(nilPath.Elements()) != 0 || nilPath.Segments() != 0 {
		t.Error("nil path should behave as empty")
	}

	var zero Path
	zero.MoveTo(1, 1)
	zero.QuadraticTo(2, 2, 3, 3)
	if zero.Segments() != 1 {
		t.Errorf("Segments() = %d, want 1", zero.Segments())
	}
}

func TestPath_Clone(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.QuadraticTo(1, 1, 2, 2)

	c := p.Clone()
	c.QuadraticTo(3, 3, 4, 4)
	if p.Segments() != 1 || c.Segments() != 2 {
		t.Errorf("Segments() = %d, %d; want 1, 2", p.Segments(), c.Segments())
	}
}

func TestFormatCoord(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0.00"},
		{85, "85.00"},
		{1.005, "1.00"},
		{1.006, "1.01"},
		{-12.345678, "-12.35"},
		{-0.001, "0.00"},
		{-0.0049, "0.00"},
		{math.Copysign(0, -1), "0.00"},
		{-0.02, "-0.02"},
	}
	for _, tt := range tests {
		if got := FormatCoord(tt.v); got != tt.want {
			t.Errorf("FormatCoord(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
