// Package orbitals turns words into orbital glyphs.
//
// # Overview
//
// Every letter of an alphabet sits at an evenly spaced position on a
// circle, the alphabet wheel, with the first letter at 12 o'clock and the
// rest following clockwise. A word becomes one continuous stroke that
// visits the positions of its letters in order, joined by quadratic
// curves that bow toward the wheel center.
//
// # Quick Start
//
//	import "github.com/gogpu/orbitals"
//
//	g := orbitals.Build(orbitals.English, "HELLO", 80, 85)
//	fmt.Println(g.D())        // SVG path data
//	fmt.Println(*g.StartDot)  // where the word starts
//	fmt.Println(len(g.Rings)) // 1: the second L
//
// The render package draws glyphs as SVG or PNG.
//
// # Glyph Rules
//
//   - Letters missing from the alphabet are skipped.
//   - A letter equal to the one before it is drawn as a ring marker
//     instead of a vertex.
//   - The stroke starts a few units inside the first letter; a dot marks
//     the exact position.
//   - Palindromes split into two halves at slightly different radii and
//     use a leaf-shaped bow that flips sides halfway through the word.
//
// # Coordinate System
//
// Uses screen coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Wheel angles in radians, π/2 at 12 o'clock
//
// # Concurrency
//
// Builders, alphabets and glyphs are immutable. Build is a pure function of
// its inputs and may be called from any number of goroutines.
package orbitals

// Version is the current version of the library.
const Version = "0.1.0"
