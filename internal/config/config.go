// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads settings for the orbitals commands: glyph geometry,
// drawing style, HTTP server options and extra alphabets. Values come from
// built-in defaults, then an optional YAML file, then environment
// variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/orbitals"
	"github.com/gogpu/orbitals/render"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

// Config is the complete command configuration.
type Config struct {
	// Alphabet is the registry name used when a request names none.
	Alphabet  string           `yaml:"alphabet"`
	Geometry  orbitals.Config  `yaml:"geometry"`
	Style     render.Style     `yaml:"style"`
	Server    Server           `yaml:"server"`
	Alphabets []AlphabetConfig `yaml:"alphabets"`
}

// Server holds HTTP service settings.
type Server struct {
	Port         string `yaml:"port"`
	Environment  string `yaml:"environment"`
	ReadTimeout  int    `yaml:"read_timeout"`  // seconds
	WriteTimeout int    `yaml:"write_timeout"` // seconds
	MaxWords     int    `yaml:"max_words"`     // per batch request
	MaxSize      int    `yaml:"max_size"`      // largest canvas a request may ask for
	CacheSize    int    `yaml:"cache_size"`    // rendered images kept; 0 disables
}

// AlphabetConfig declares an extra alphabet. Letters lists every letter
// in wheel order as one string.
type AlphabetConfig struct {
	Name    string `yaml:"name"`
	Label   string `yaml:"label"`
	Letters string `yaml:"letters"`
	Sample  string `yaml:"sample"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Alphabet: orbitals.DefaultAlphabet,
		Geometry: orbitals.DefaultConfig(),
		Style:    render.DefaultStyle(),
		Server: Server{
			Port:         "3000",
			Environment:  "development",
			ReadTimeout:  10,
			WriteTimeout: 10,
			MaxWords:     64,
			MaxSize:      2048,
			CacheSize:    256,
		},
	}
}

// Load reads the YAML file at path over the defaults, applies environment
// overrides and validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides settings from ORBITALS_* environment variables.
func (c *Config) applyEnv() {
	c.Alphabet = getEnv("ORBITALS_ALPHABET", c.Alphabet)
	c.Server.Port = getEnv("ORBITALS_PORT", c.Server.Port)
	c.Server.Environment = getEnv("ORBITALS_ENV", c.Server.Environment)
	c.Server.ReadTimeout = getEnvAsInt("ORBITALS_READ_TIMEOUT", c.Server.ReadTimeout)
	c.Server.WriteTimeout = getEnvAsInt("ORBITALS_WRITE_TIMEOUT", c.Server.WriteTimeout)
	c.Server.MaxWords = getEnvAsInt("ORBITALS_MAX_WORDS", c.Server.MaxWords)
	c.Server.CacheSize = getEnvAsInt("ORBITALS_CACHE_SIZE", c.Server.CacheSize)
	c.Style.Size = getEnvAsInt("ORBITALS_SIZE", c.Style.Size)
	c.Style.WheelRadius = getEnvAsFloat("ORBITALS_WHEEL_RADIUS", c.Style.WheelRadius)
}

// Validate checks the configuration for values no glyph can be drawn with.
func (c *Config) Validate() error {
	switch {
	case c.Style.Size <= 0:
		return fmt.Errorf("%w: style.size must be positive, got %d", ErrInvalid, c.Style.Size)
	case c.Style.WheelRadius <= 0:
		return fmt.Errorf("%w: style.wheel_radius must be positive, got %v", ErrInvalid, c.Style.WheelRadius)
	case c.Server.MaxWords <= 0:
		return fmt.Errorf("%w: server.max_words must be positive, got %d", ErrInvalid, c.Server.MaxWords)
	case c.Server.CacheSize < 0:
		return fmt.Errorf("%w: server.cache_size must not be negative, got %d", ErrInvalid, c.Server.CacheSize)
	case c.Server.MaxSize < c.Style.Size:
		return fmt.Errorf("%w: server.max_size %d is below style.size %d", ErrInvalid, c.Server.MaxSize, c.Style.Size)
	}
	if err := c.CheckRadius(c.Style.WheelRadius); err != nil {
		return fmt.Errorf("%w: style.wheel_radius: %w", ErrInvalid, err)
	}

	reg, err := c.Registry()
	if err != nil {
		return err
	}
	if _, err := reg.Lookup(c.Alphabet); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// CheckRadius reports whether glyphs fit on a wheel of radius r. Glyph
// points sit Geometry.RingMargin inside the wheel, so a radius at or below
// the margin would flip every letter to the opposite side.
func (c *Config) CheckRadius(r float64) error {
	if !(r > c.Geometry.RingMargin) {
		return fmt.Errorf("wheel radius %v must exceed the ring margin %v", r, c.Geometry.RingMargin)
	}
	return nil
}

// Registry returns the built-in alphabets plus the configured ones.
func (c *Config) Registry() (*orbitals.Registry, error) {
	reg := orbitals.DefaultRegistry()
	for i, ac := range c.Alphabets {
		a, err := orbitals.ParseAlphabet(ac.Name, ac.Label, ac.Letters, ac.Sample)
		if err != nil {
			return nil, fmt.Errorf("%w: alphabets[%d]: %w", ErrInvalid, i, err)
		}
		if err := reg.Add(a); err != nil {
			return nil, fmt.Errorf("%w: alphabets[%d]: %w", ErrInvalid, i, err)
		}
	}
	return reg, nil
}

// Builder returns a glyph builder with the configured geometry.
func (c *Config) Builder() *orbitals.Builder {
	return orbitals.NewBuilder(orbitals.WithConfig(c.Geometry))
}

// ReadTimeoutDuration returns the server read timeout as a duration.
func (s Server) ReadTimeoutDuration() time.Duration {
	return time.Duration(s.ReadTimeout) * time.Second
}

// WriteTimeoutDuration returns the server write timeout as a duration.
func (s Server) WriteTimeoutDuration() time.Duration {
	return time.Duration(s.WriteTimeout) * time.Second
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsFloat(key string, defaultVal float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
