package orbitals

import "fmt"

// Alphabet is an ordered set of letters laid out around the wheel.
// Letter order determines angular position; matching is case-insensitive.
//
// An Alphabet is immutable and safe for concurrent use.
type Alphabet struct {
	name    string
	label   string
	sample  string
	letters []string
	index   map[string]int
}

// NewAlphabet creates an alphabet from its letters in wheel order.
// Each letter is a single grapheme cluster; letters are stored as given
// (after NFC composition) and matched through Fold.
//
// Returns ErrEmptyAlphabet for an empty letter list and ErrDuplicateLetter
// when two letters fold to the same key.
func NewAlphabet(name, label string, letters []string, sample string) (*Alphabet, error) {
	if len(letters) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyAlphabet, name)
	}

	a := &Alphabet{
		name:    name,
		label:   label,
		sample:  sample,
		letters: make([]string, 0, len(letters)),
		index:   make(map[string]int, len(letters)),
	}
	for i, l := range letters {
		g := Graphemes(l)
		if len(g) != 1 {
			return nil, fmt.Errorf("orbitals: alphabet %q: letter %d (%q) is not a single grapheme", name, i, l)
		}
		key := Fold(g[0])
		if prev, dup := a.index[key]; dup {
			return nil, fmt.Errorf("%w: %q repeats %q in %q", ErrDuplicateLetter, l, a.letters[prev], name)
		}
		a.index[key] = len(a.letters)
		a.letters = append(a.letters, g[0])
	}
	return a, nil
}

// ParseAlphabet creates an alphabet from a string holding every letter in
// wheel order, e.g. "ABCDEFGHIJKLMNOPQRSTUVWXYZ".
func ParseAlphabet(name, label, letters, sample string) (*Alphabet, error) {
	return NewAlphabet(name, label, Graphemes(letters), sample)
}

// MustAlphabet is like ParseAlphabet but panics on error.
// It is intended for package-level alphabet tables.
func MustAlphabet(name, label, letters, sample string) *Alphabet {
	a, err := ParseAlphabet(name, label, letters, sample)
	if err != nil {
		panic(err)
	}
	return a
}

// Name returns the short registry name, e.g. "en".
func (a *Alphabet) Name() string { return a.name }

// Label returns the human-readable name, e.g. "English".
func (a *Alphabet) Label() string { return a.label }

// Sample returns an example phrase written in the alphabet.
func (a *Alphabet) Sample() string { return a.sample }

// Len returns the number of letters on the wheel; 0 for a nil alphabet.
func (a *Alphabet) Len() int {
	if a == nil {
		return 0
	}
	return len(a.letters)
}

// Letters returns a copy of the letters in wheel order.
func (a *Alphabet) Letters() []string {
	out := make([]string, len(a.letters))
	copy(out, a.letters)
	return out
}

// Index returns the wheel position of letter, matching case-insensitively.
func (a *Alphabet) Index(letter string) (int, bool) {
	return a.indexKey(Fold(letter))
}

// indexKey looks up an already folded letter.
func (a *Alphabet) indexKey(key string) (int, bool) {
	if a == nil {
		return 0, false
	}
	i, ok := a.index[key]
	return i, ok
}
