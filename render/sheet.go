// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/gogpu/orbitals"
)

// DefaultColumns is the number of glyphs per sheet row when none is given.
const DefaultColumns = 4

// NewFrames builds one frame per word in parallel, keeping word order.
func NewFrames(ctx context.Context, b *orbitals.Builder, alphabet *orbitals.Alphabet, words []string, style Style) ([]Frame, error) {
	glyphs, err := b.BuildAll(ctx, alphabet, words, style.WheelRadius, style.Center())
	if err != nil {
		return nil, err
	}

	frames := make([]Frame, len(glyphs))
	for i, g := range glyphs {
		frames[i] = Frame{
			Alphabet: alphabet,
			Word:     words[i],
			Glyph:    g,
			Style:    style,
			Rotation: b.Config().Rotation,
		}
	}
	return frames, nil
}

// Sheet writes frames as a grid inside a single SVG document, columns
// glyphs per row. Cell size comes from the first frame's style.
func Sheet(w io.Writer, frames []Frame, columns int) error {
	if columns <= 0 {
		columns = DefaultColumns
	}
	for i, f := range frames {
		if err := f.validate(); err != nil {
			return fmt.Errorf("render: sheet frame %d: %w", i, err)
		}
	}

	var cellW, cellH, cols, rows int
	if len(frames) > 0 {
		cellW, cellH = frames[0].Style.Size, frames[0].Style.Height()
		cols = min(columns, len(frames))
		rows = (len(frames) + columns - 1) / columns
	}

	sw := newSVGWriter(w)
	sw.document(cols*cellW, rows*cellH)
	for i, f := range frames {
		x, y := (i%columns)*cellW, (i/columns)*cellH
		sw.start("g",
			attr("class", "cell"),
			attr("transform", "translate("+strconv.Itoa(x)+" "+strconv.Itoa(y)+")"))
		writeFrame(sw, f)
		sw.end("g")
	}
	sw.end("svg")
	if err := sw.close(); err != nil {
		return fmt.Errorf("render: sheet: %w", err)
	}

	orbitals.Logger().Debug("render: sheet written", "frames", len(frames), "columns", cols, "rows", rows)
	return nil
}
