// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package server exposes glyph rendering over HTTP.
package server

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/gogpu/orbitals"
	"github.com/gogpu/orbitals/internal/cache"
	"github.com/gogpu/orbitals/internal/config"
	"github.com/gogpu/orbitals/render"
)

// imageKey identifies one rendered image.
type imageKey struct {
	alphabet string
	word     string
	format   string
	style    render.Style
}

// Server is the orbitals HTTP service.
type Server struct {
	cfg      *config.Config
	registry *orbitals.Registry
	builder  *orbitals.Builder
	images   *cache.Cache[imageKey, []byte]
	app      *fiber.App
}

// New creates a server from a validated configuration and registers its
// routes.
func New(cfg *config.Config) (*Server, error) {
	reg, err := cfg.Registry()
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:      cfg,
		registry: reg,
		builder:  cfg.Builder(),
		images:   cache.New[imageKey, []byte](cfg.Server.CacheSize),
		app: fiber.New(fiber.Config{
			ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
			WriteTimeout: cfg.Server.WriteTimeoutDuration(),
			AppName:      "Orbitals",
		}),
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	app := s.app

	app.Use(recover.New())
	app.Use(requestID())
	app.Use(accessLog())
	app.Use(allowBrowsers())

	app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})
	app.Get("/health/ready", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ready"})
	})

	app.Get("/stats", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"cache": s.images.Stats()})
	})

	app.Get("/alphabets", s.listAlphabets)
	app.Get("/glyph/:word", s.renderGlyph)
	app.Post("/glyphs", s.buildGlyphs)
}

// App returns the underlying fiber application, for tests and embedding.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on the configured port until Shutdown is called.
func (s *Server) Listen() error {
	addr := fmt.Sprintf(":%s", s.cfg.Server.Port)
	orbitals.Logger().Info("orbitals: listening",
		"addr", addr,
		"env", s.cfg.Server.Environment,
		"alphabets", s.registry.Names())
	return s.app.Listen(addr)
}

// Shutdown stops the server, waiting for active requests until ctx ends.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
