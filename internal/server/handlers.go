// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/gogpu/orbitals"
	"github.com/gogpu/orbitals/render"
)

// errBadRequest marks errors caused by request parameters.
var errBadRequest = errors.New("bad request")

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errBadRequest, fmt.Sprintf(format, args...))
}

// reply converts a handler error into a JSON error response.
func reply(c fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, errBadRequest):
		status = fiber.StatusBadRequest
	case errors.Is(err, orbitals.ErrUnknownAlphabet):
		status = fiber.StatusNotFound
	}
	orbitals.Logger().Warn("orbitals: request failed",
		"path", c.Path(),
		"status", status,
		"request_id", c.Locals(requestIDKey),
		"err", err)
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// alphabetJSON describes one wheel.
type alphabetJSON struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Letters []string `json:"letters"`
	Sample  string   `json:"sample"`
}

func (s *Server) listAlphabets(c fiber.Ctx) error {
	names := s.registry.Names()
	out := make([]alphabetJSON, 0, len(names))
	for _, name := range names {
		a, err := s.registry.Lookup(name)
		if err != nil {
			return reply(c, err)
		}
		out = append(out, alphabetJSON{
			Name:    a.Name(),
			Label:   a.Label(),
			Letters: a.Letters(),
			Sample:  a.Sample(),
		})
	}
	return c.JSON(fiber.Map{"default": s.cfg.Alphabet, "alphabets": out})
}

// renderGlyph serves GET /glyph/:word as an image.
//
// Query parameters: alphabet, format (svg|png), size, radius, wheel,
// caption.
func (s *Server) renderGlyph(c fiber.Ctx) error {
	word, err := url.PathUnescape(c.Params("word"))
	if err != nil {
		return reply(c, badRequest("word: %v", err))
	}

	alphabet, err := s.alphabet(c.Query("alphabet"))
	if err != nil {
		return reply(c, err)
	}

	format := c.Query("format", "svg")
	r, err := render.ForFormat(format)
	if err != nil {
		return reply(c, badRequest("%v", err))
	}

	style, err := s.style(c)
	if err != nil {
		return reply(c, err)
	}

	// fiber reuses request buffers; cache keys need their own copies.
	key := imageKey{
		alphabet: alphabet.Name(),
		word:     strings.Clone(word),
		format:   strings.Clone(format),
		style:    style,
	}
	img, hit, err := s.images.GetOrCreate(key, func() ([]byte, error) {
		var buf bytes.Buffer
		if err := r.Render(&buf, render.NewFrame(s.builder, alphabet, word, style)); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
	if err != nil {
		return reply(c, err)
	}

	cacheStatus := "MISS"
	if hit {
		cacheStatus = "HIT"
	}
	c.Set("X-Cache", cacheStatus)
	c.Set(fiber.HeaderContentType, r.ContentType())
	return c.Send(img)
}

// batchRequest is the body of POST /glyphs.
type batchRequest struct {
	Alphabet string   `json:"alphabet"`
	Words    []string `json:"words"`
	Text     string   `json:"text"`
	Radius   float64  `json:"radius"`
	Center   float64  `json:"center"`
}

type pointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type glyphJSON struct {
	Word       string      `json:"word"`
	D          string      `json:"d"`
	StartDot   *pointJSON  `json:"start_dot"`
	Rings      []pointJSON `json:"rings"`
	Vertices   int         `json:"vertices"`
	Palindrome bool        `json:"palindrome"`
}

func toPoint(p orbitals.Point) pointJSON {
	return pointJSON{X: round2(p.X), Y: round2(p.Y)}
}

// round2 matches the two-digit precision of path data.
func round2(v float64) float64 {
	f, _ := strconv.ParseFloat(orbitals.FormatCoord(v), 64)
	return f
}

// buildGlyphs serves POST /glyphs: glyph geometry for many words at once.
// Words come from the words array, or from text split on white space.
func (s *Server) buildGlyphs(c fiber.Ctx) error {
	if len(c.Body()) == 0 {
		return reply(c, badRequest("body required"))
	}

	var req batchRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return reply(c, badRequest("invalid JSON payload: %v", err))
	}

	words := req.Words
	if len(words) == 0 {
		words = orbitals.Words(req.Text)
	}
	if len(words) > s.cfg.Server.MaxWords {
		return reply(c, badRequest("%d words exceeds the limit of %d", len(words), s.cfg.Server.MaxWords))
	}

	alphabet, err := s.alphabet(req.Alphabet)
	if err != nil {
		return reply(c, err)
	}

	radius, center := req.Radius, req.Center
	if radius <= 0 {
		radius = s.cfg.Style.WheelRadius
	}
	if center <= 0 {
		center = s.cfg.Style.Center()
	}
	if err := s.cfg.CheckRadius(radius); err != nil {
		return reply(c, badRequest("%v", err))
	}

	glyphs, err := s.builder.BuildAll(c.Context(), alphabet, words, radius, center)
	if err != nil {
		return reply(c, err)
	}

	out := make([]glyphJSON, len(glyphs))
	for i, g := range glyphs {
		gj := glyphJSON{
			Word:       words[i],
			D:          g.D(),
			Rings:      make([]pointJSON, len(g.Rings)),
			Vertices:   len(g.Vertices),
			Palindrome: g.Palindrome,
		}
		if g.StartDot != nil {
			dot := toPoint(*g.StartDot)
			gj.StartDot = &dot
		}
		for j, p := range g.Rings {
			gj.Rings[j] = toPoint(p)
		}
		out[i] = gj
	}
	return c.JSON(fiber.Map{"alphabet": alphabet.Name(), "glyphs": out})
}

// alphabet resolves a registry name, falling back to the configured
// default for an empty name.
func (s *Server) alphabet(name string) (*orbitals.Alphabet, error) {
	if name == "" {
		name = s.cfg.Alphabet
	}
	return s.registry.Lookup(name)
}

// style applies the size, radius, wheel and caption query parameters to
// the configured style. Without an explicit radius the wheel scales with
// the canvas.
func (s *Server) style(c fiber.Ctx) (render.Style, error) {
	style := s.cfg.Style

	if v := c.Query("size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size <= 0 || size > s.cfg.Server.MaxSize {
			return style, badRequest("size must be an integer in 1..%d, got %q", s.cfg.Server.MaxSize, v)
		}
		style.WheelRadius = style.WheelRadius * float64(size) / float64(style.Size)
		style.Size = size
	}
	if v := c.Query("radius"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || r <= 0 {
			return style, badRequest("radius must be a positive number, got %q", v)
		}
		style.WheelRadius = r
	}
	for _, flag := range []struct {
		name string
		dst  *bool
	}{
		{"wheel", &style.ShowWheel},
		{"caption", &style.ShowCaption},
	} {
		if v := c.Query(flag.name); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return style, badRequest("%s must be a boolean, got %q", flag.name, v)
			}
			*flag.dst = b
		}
	}
	if err := s.cfg.CheckRadius(style.WheelRadius); err != nil {
		return style, badRequest("%v", err)
	}
	return style, nil
}
