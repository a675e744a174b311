// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/gogpu/orbitals"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// SVG renders frames as standalone SVG documents.
type SVG struct{}

// ContentType implements Renderer.
func (SVG) ContentType() string { return "image/svg+xml" }

// Ext implements Renderer.
func (SVG) Ext() string { return ".svg" }

// Render implements Renderer.
func (SVG) Render(w io.Writer, f Frame) error {
	if err := f.validate(); err != nil {
		return err
	}

	sw := newSVGWriter(w)
	sw.document(f.Style.Size, f.Style.Height())
	writeFrame(sw, f)
	sw.end("svg")
	if err := sw.close(); err != nil {
		return fmt.Errorf("render: svg %q: %w", f.Word, err)
	}
	return nil
}

// writeFrame emits the elements of one frame, back to front: background,
// wheel labels, stroke, start dot, rings, caption.
func writeFrame(sw *svgWriter, f Frame) {
	s := f.Style
	c := s.Center()

	if s.Background != "" {
		sw.leaf("rect",
			attr("width", strconv.Itoa(s.Size)),
			attr("height", strconv.Itoa(s.Height())),
			attr("fill", s.Background))
	}

	if s.ShowWheel {
		sw.start("g",
			attr("class", "wheel"),
			attr("fill", s.LabelColor),
			attr("font-family", "sans-serif"),
			attr("font-size", num(s.LabelSize)),
			attr("text-anchor", "middle"),
			attr("dominant-baseline", "middle"))
		letters := f.Alphabet.Letters()
		for i, p := range orbitals.LabelPositions(f.Alphabet, s.WheelRadius, c, f.Rotation) {
			sw.text("text", letters[i], attr("x", num(p.X)), attr("y", num(p.Y)))
		}
		sw.end("g")
	}

	g := f.Glyph
	if !g.IsEmpty() {
		sw.start("g",
			attr("class", "glyph"),
			attr("stroke", s.StrokeColor),
			attr("fill", "none"),
			attr("stroke-linecap", "round"),
			attr("stroke-linejoin", "round"))

		if d := g.D(); d != "" {
			if s.HaloWidth > 0 {
				sw.leaf("path",
					attr("d", d),
					attr("stroke-width", num(s.HaloWidth)),
					attr("stroke-opacity", num(s.HaloOpacity)))
			}
			sw.leaf("path", attr("d", d), attr("stroke-width", num(s.StrokeWidth)))
		}

		sw.leaf("circle",
			attr("class", "dot"),
			attr("cx", num(g.StartDot.X)),
			attr("cy", num(g.StartDot.Y)),
			attr("r", num(s.DotRadius)),
			attr("fill", s.StrokeColor),
			attr("stroke", "none"))

		for _, p := range g.Rings {
			sw.leaf("circle",
				attr("class", "ring"),
				attr("cx", num(p.X)),
				attr("cy", num(p.Y)),
				attr("r", num(s.RingRadius)),
				attr("stroke-width", num(s.RingWidth)))
		}
		sw.end("g")
	}

	if s.ShowCaption {
		sw.text("text", f.Word,
			attr("class", "caption"),
			attr("x", num(c)),
			attr("y", num(float64(s.Size)+float64(s.captionBand())/2)),
			attr("fill", s.CaptionColor),
			attr("font-family", "sans-serif"),
			attr("font-size", num(s.CaptionSize)),
			attr("text-anchor", "middle"),
			attr("dominant-baseline", "middle"))
	}
}

// svgWriter streams SVG elements through an xml.Encoder, keeping the
// first error so callers can check once at the end.
type svgWriter struct {
	enc *xml.Encoder
	err error
}

func newSVGWriter(w io.Writer) *svgWriter {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	return &svgWriter{enc: enc}
}

func (sw *svgWriter) token(t xml.Token) {
	if sw.err == nil {
		sw.err = sw.enc.EncodeToken(t)
	}
}

// document opens the root <svg> element, preceded by the XML declaration.
func (sw *svgWriter) document(width, height int) {
	sw.token(xml.ProcInst{Target: "xml", Inst: []byte(`version="1.0" encoding="UTF-8"`)})
	sw.start("svg",
		attr("xmlns", svgNamespace),
		attr("width", strconv.Itoa(width)),
		attr("height", strconv.Itoa(height)),
		attr("viewBox", fmt.Sprintf("0 0 %d %d", width, height)))
}

func (sw *svgWriter) start(name string, attrs ...xml.Attr) {
	sw.token(xml.StartElement{Name: xml.Name{Local: name}, Attr: attrs})
}

func (sw *svgWriter) end(name string) {
	sw.token(xml.EndElement{Name: xml.Name{Local: name}})
}

func (sw *svgWriter) leaf(name string, attrs ...xml.Attr) {
	sw.start(name, attrs...)
	sw.end(name)
}

func (sw *svgWriter) text(name, content string, attrs ...xml.Attr) {
	sw.start(name, attrs...)
	sw.token(xml.CharData(content))
	sw.end(name)
}

func (sw *svgWriter) close() error {
	if sw.err != nil {
		return sw.err
	}
	return sw.enc.Flush()
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

// num formats a length with the same fixed precision as path data.
func num(v float64) string {
	return orbitals.FormatCoord(v)
}
