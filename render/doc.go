// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws orbital glyphs.
//
// A Frame bundles everything needed to draw one word: the alphabet wheel,
// the glyph built from the word and the Style. Renderers write a frame in
// a given output format:
//
//   - "svg": vector output, one <svg> element per frame
//   - "png": raster output through gg's software rasterizer
//
// Renderers are looked up by format name:
//
//	r, err := render.ForFormat("svg")
//	if err != nil {
//	    return err
//	}
//	g := orbitals.Build(orbitals.English, "HELLO", 80, 85)
//	err = r.Render(w, render.Frame{
//	    Alphabet: orbitals.English,
//	    Word:     "HELLO",
//	    Glyph:    g,
//	    Style:    render.DefaultStyle(),
//	})
//
// Sheet lays out many words in a grid within a single SVG document.
package render
