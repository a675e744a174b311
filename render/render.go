// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/gogpu/orbitals"
)

// ErrNoAlphabet is returned when a frame has no alphabet to draw.
var ErrNoAlphabet = errors.New("render: frame has no alphabet")

// Frame is one word ready to draw.
type Frame struct {
	Alphabet *orbitals.Alphabet
	Word     string
	Glyph    orbitals.Glyph
	Style    Style

	// Rotation is the wheel rotation the glyph was built with, so the
	// labels line up with it.
	Rotation int
}

// NewFrame builds the glyph for word with b and wraps it in a frame.
// The glyph is centered on the canvas and sized to the style's wheel.
func NewFrame(b *orbitals.Builder, alphabet *orbitals.Alphabet, word string, style Style) Frame {
	return Frame{
		Alphabet: alphabet,
		Word:     word,
		Glyph:    b.Build(alphabet, word, style.WheelRadius, style.Center()),
		Style:    style,
		Rotation: b.Config().Rotation,
	}
}

func (f Frame) validate() error {
	if f.Alphabet == nil {
		return ErrNoAlphabet
	}
	if f.Style.Size <= 0 {
		return fmt.Errorf("render: invalid canvas size %d", f.Style.Size)
	}
	return nil
}

// Renderer writes frames in one output format.
// Implementations are safe for concurrent use.
type Renderer interface {
	// Render writes a complete document holding the frame.
	Render(w io.Writer, f Frame) error

	// ContentType returns the MIME type of the output.
	ContentType() string

	// Ext returns the file name extension of the output, with the dot.
	Ext() string
}

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	renderers  = map[string]Renderer{
		"svg": SVG{},
		"png": PNG{},
	}
)

// Register makes a renderer available under the given format name.
//
// Register panics if r is nil or the format is already registered, so
// duplicate registrations are caught during program initialization.
func Register(format string, r Renderer) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if r == nil {
		panic("render: Register renderer is nil")
	}
	if _, dup := renderers[format]; dup {
		panic("render: Register called twice for " + format)
	}
	renderers[format] = r
}

// ForFormat returns the renderer for a format name such as "svg" or "png".
func ForFormat(format string) (Renderer, error) {
	registryMu.RLock()
	r, ok := renderers[format]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("render: unknown format %q (available: %v)", format, Formats())
	}
	return r, nil
}

// Formats returns the registered format names in sorted order.
func Formats() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
