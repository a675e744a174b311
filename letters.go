package orbitals

import (
	"strings"
	"unicode"

	"github.com/go-text/typesetting/segmenter"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Fold returns the comparison key of a letter: NFC-composed and Unicode
// case folded, so "a" and "A" compare equal, as do the precomposed and
// decomposed forms of "é".
func Fold(s string) string {
	// A Caser is stateful; one per call keeps Fold safe for concurrent use.
	return cases.Fold().String(norm.NFC.String(s))
}

// Letters splits word into grapheme clusters and returns their comparison
// keys in input order. Every cluster is kept, including spaces and
// punctuation; clusters missing from an alphabet are skipped later, when
// they fail to map to an angle.
func Letters(word string) []string {
	letters := Graphemes(word)
	for i, l := range letters {
		letters[i] = Fold(l)
	}
	return letters
}

// Graphemes splits s into NFC-composed grapheme clusters without folding
// case.
func Graphemes(s string) []string {
	if s == "" {
		return nil
	}

	var seg segmenter.Segmenter
	seg.Init([]rune(norm.NFC.String(s)))

	var clusters []string
	iter := seg.GraphemeIterator()
	for iter.Next() {
		clusters = append(clusters, string(iter.Grapheme().Text))
	}
	return clusters
}

// Words splits free text into words on runs of white space, dropping empty
// entries.
func Words(input string) []string {
	return strings.FieldsFunc(input, unicode.IsSpace)
}
