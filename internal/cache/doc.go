// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cache holds rendered glyph images between requests.
//
//	c := cache.New[Key, []byte](256)
//	img, hit, err := c.GetOrCreate(key, func() ([]byte, error) { return draw(key) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
