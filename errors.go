package orbitals

import "errors"

// Sentinel errors returned by alphabet construction and lookup.
var (
	// ErrEmptyAlphabet is returned when an alphabet has no letters.
	// Angle computation divides by the alphabet length, so this is the one
	// input the glyph builder cannot degrade gracefully.
	ErrEmptyAlphabet = errors.New("orbitals: alphabet has no letters")

	// ErrDuplicateLetter is returned when two letters of an alphabet fold to
	// the same comparison key.
	ErrDuplicateLetter = errors.New("orbitals: duplicate letter in alphabet")

	// ErrUnknownAlphabet is returned by Lookup for unregistered names.
	ErrUnknownAlphabet = errors.New("orbitals: unknown alphabet")
)
