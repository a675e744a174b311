package orbitals

// Default glyph geometry, in canvas units.
const (
	DefaultLeadIn       = 7
	DefaultRingMargin   = 15
	DefaultSplit        = 1
	DefaultBowFactor    = 0.3
	DefaultRadialFactor = 0.8
	DefaultPullFactor   = 0.4
)

// Config holds the geometry constants used by a Builder.
type Config struct {
	// LeadIn is how far the first vertex is moved toward the center, so
	// the stroke starts just inside the start dot.
	LeadIn float64 `yaml:"lead_in"`

	// RingMargin insets glyph points from the wheel radius, leaving room
	// for the letter labels.
	RingMargin float64 `yaml:"ring_margin"`

	// Split is the radius offset for palindromes: added in the first half
	// of the word, subtracted in the second.
	Split float64 `yaml:"split"`

	// BowFactor scales the perpendicular control-point offset of
	// palindrome segments, as a fraction of the base radius.
	BowFactor float64 `yaml:"bow_factor"`

	// RadialFactor pulls the segment midpoint toward the center.
	RadialFactor float64 `yaml:"radial_factor"`

	// PullFactor then pulls the control point toward the segment end.
	PullFactor float64 `yaml:"pull_factor"`

	// Rotation shifts every letter by this many wheel positions.
	Rotation int `yaml:"rotation"`
}

// DefaultConfig returns the standard orbitals geometry.
func DefaultConfig() Config {
	return Config{
		LeadIn:       DefaultLeadIn,
		RingMargin:   DefaultRingMargin,
		Split:        DefaultSplit,
		BowFactor:    DefaultBowFactor,
		RadialFactor: DefaultRadialFactor,
		PullFactor:   DefaultPullFactor,
	}
}

// Option configures a Builder during creation.
//
// Example:
//
//	b := orbitals.NewBuilder(orbitals.WithLeadIn(4), orbitals.WithRotation(13))
type Option func(*Config)

// WithConfig replaces the whole geometry.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

// WithLeadIn sets the lead-in distance of the first vertex.
func WithLeadIn(d float64) Option {
	return func(c *Config) {
		c.LeadIn = d
	}
}

// WithRingMargin sets the inset between the wheel and glyph points.
func WithRingMargin(m float64) Option {
	return func(c *Config) {
		c.RingMargin = m
	}
}

// WithSplit sets the palindrome radius offset.
func WithSplit(s float64) Option {
	return func(c *Config) {
		c.Split = s
	}
}

// WithBowFactor sets the palindrome bow strength.
func WithBowFactor(f float64) Option {
	return func(c *Config) {
		c.BowFactor = f
	}
}

// WithCurveFactors sets the radial and pull factors of the standard
// curve rule.
func WithCurveFactors(radial, pull float64) Option {
	return func(c *Config) {
		c.RadialFactor = radial
		c.PullFactor = pull
	}
}

// WithRotation rotates the wheel by n letter positions.
func WithRotation(n int) Option {
	return func(c *Config) {
		c.Rotation = n
	}
}
