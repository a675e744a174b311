// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"io"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/orbitals"
)

// labelFont is parsed once on first use; Go Regular covers the Latin,
// Greek and Cyrillic wheels.
var labelFont = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// PNG renders frames as PNG images using gg's software rasterizer.
type PNG struct{}

// ContentType implements Renderer.
func (PNG) ContentType() string { return "image/png" }

// Ext implements Renderer.
func (PNG) Ext() string { return ".png" }

// Render implements Renderer.
func (PNG) Render(w io.Writer, f Frame) error {
	if err := f.validate(); err != nil {
		return err
	}

	dc, err := Rasterize(f)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: png %q: %w", f.Word, err)
	}
	return nil
}

// Rasterize draws the frame into a new gg context. The caller owns the
// returned context and must Close it.
func Rasterize(f Frame) (*gg.Context, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	s := f.Style
	dc := gg.NewContext(s.Size, s.Height())
	if s.Background != "" {
		dc.ClearWithColor(gg.Hex(s.Background))
	} else {
		dc.ClearWithColor(gg.White)
	}

	if err := drawFrame(dc, f); err != nil {
		_ = dc.Close()
		return nil, fmt.Errorf("render: rasterize %q: %w", f.Word, err)
	}
	return dc, nil
}

func drawFrame(dc *gg.Context, f Frame) error {
	s := f.Style
	c := s.Center()

	if s.ShowWheel || s.ShowCaption {
		src, err := labelFont()
		if err != nil {
			return err
		}
		if s.ShowWheel {
			dc.SetFont(src.Face(s.LabelSize))
			dc.SetHexColor(s.LabelColor)
			letters := f.Alphabet.Letters()
			for i, p := range orbitals.LabelPositions(f.Alphabet, s.WheelRadius, c, f.Rotation) {
				dc.DrawStringAnchored(letters[i], p.X, p.Y, 0.5, 0.5)
			}
		}
		if s.ShowCaption {
			dc.SetFont(src.Face(s.CaptionSize))
			dc.SetHexColor(s.CaptionColor)
			dc.DrawStringAnchored(f.Word, c, float64(s.Size)+float64(s.captionBand())/2, 0.5, 0.5)
		}
	}

	g := f.Glyph
	if g.IsEmpty() {
		return nil
	}

	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	stroke := gg.Hex(s.StrokeColor)

	if g.Path.Segments() > 0 {
		if s.HaloWidth > 0 {
			dc.SetRGBA(stroke.R, stroke.G, stroke.B, s.HaloOpacity)
			dc.SetLineWidth(s.HaloWidth)
			tracePath(dc, g.Path)
			if err := dc.Stroke(); err != nil {
				return err
			}
		}
		dc.SetRGBA(stroke.R, stroke.G, stroke.B, stroke.A)
		dc.SetLineWidth(s.StrokeWidth)
		tracePath(dc, g.Path)
		if err := dc.Stroke(); err != nil {
			return err
		}
	}

	dc.SetRGBA(stroke.R, stroke.G, stroke.B, stroke.A)
	dc.DrawCircle(g.StartDot.X, g.StartDot.Y, s.DotRadius)
	if err := dc.Fill(); err != nil {
		return err
	}

	dc.SetLineWidth(s.RingWidth)
	for _, p := range g.Rings {
		dc.DrawCircle(p.X, p.Y, s.RingRadius)
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

// tracePath replays a glyph path into the context's current path.
func tracePath(dc *gg.Context, p *orbitals.Path) {
	for _, e := range p.Elements() {
		switch e := e.(type) {
		case orbitals.MoveTo:
			dc.MoveTo(e.Point.X, e.Point.Y)
		case orbitals.QuadTo:
			dc.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		}
	}
}
