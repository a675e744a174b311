// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

// Style controls how a glyph is drawn. Lengths are in canvas units.
type Style struct {
	// Size is the width and height of the square canvas holding the wheel.
	Size int `yaml:"size"`

	// WheelRadius is the radius at which letter labels are placed.
	WheelRadius float64 `yaml:"wheel_radius"`

	// ShowWheel draws the alphabet letters around the glyph.
	ShowWheel bool `yaml:"show_wheel"`

	// ShowCaption writes the word under the glyph.
	ShowCaption bool `yaml:"show_caption"`

	// Background fills the canvas; empty leaves it transparent in SVG and
	// white in PNG.
	Background string `yaml:"background"`

	StrokeColor  string  `yaml:"stroke_color"`
	StrokeWidth  float64 `yaml:"stroke_width"`
	HaloWidth    float64 `yaml:"halo_width"` // wide translucent stroke under the main one; 0 disables it
	HaloOpacity  float64 `yaml:"halo_opacity"`
	DotRadius    float64 `yaml:"dot_radius"`
	RingRadius   float64 `yaml:"ring_radius"`
	RingWidth    float64 `yaml:"ring_width"`
	LabelColor   string  `yaml:"label_color"`
	LabelSize    float64 `yaml:"label_size"`
	CaptionSize  float64 `yaml:"caption_size"`
	CaptionColor string  `yaml:"caption_color"`
}

// DefaultStyle returns the standard glyph look: a 170-unit canvas with the
// wheel at radius 80, grey labels and a 2-unit black stroke.
func DefaultStyle() Style {
	return Style{
		Size:         170,
		WheelRadius:  80,
		ShowWheel:    true,
		ShowCaption:  true,
		StrokeColor:  "#000000",
		StrokeWidth:  2,
		HaloWidth:    0,
		HaloOpacity:  0.25,
		DotRadius:    3,
		RingRadius:   4.5,
		RingWidth:    2,
		LabelColor:   "#bbbbbb",
		LabelSize:    8,
		CaptionSize:  12,
		CaptionColor: "#333333",
	}
}

// Center returns the canvas center coordinate.
func (s Style) Center() float64 {
	return float64(s.Size) / 2
}

// Height returns the full frame height, including the caption band.
func (s Style) Height() int {
	if !s.ShowCaption {
		return s.Size
	}
	return s.Size + s.captionBand()
}

func (s Style) captionBand() int {
	return int(s.CaptionSize*2 + 0.5)
}
