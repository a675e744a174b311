package orbitals

import (
	"fmt"
	"sort"
	"sync"
)

// Built-in alphabets. English is the reference wheel: A at 12 o'clock,
// proceeding clockwise to Z.
var (
	English = MustAlphabet("en", "English", "ABCDEFGHIJKLMNOPQRSTUVWXYZ", "HELLO SUN EARTH LOVE")
	German  = MustAlphabet("de", "Deutsch", "ABCDEFGHIJKLMNOPQRSTUVWXYZÄÖÜß", "HALLO SONNE ERDE LIEBE")
	Greek   = MustAlphabet("el", "Ελληνικά", "ΑΒΓΔΕΖΗΘΙΚΛΜΝΞΟΠΡΣΤΥΦΧΨΩ", "ΓΕΙΑ ΗΛΙΟΣ ΓΗ ΑΓΑΠΗ")
	Russian = MustAlphabet("ru", "Русский", "АБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ", "ПРИВЕТ СОЛНЦЕ ЗЕМЛЯ ЛЮБОВЬ")
)

// DefaultAlphabet is the registry name used when none is given.
const DefaultAlphabet = "en"

// Registry maps alphabet names to alphabets. It is safe for concurrent use.
// The zero value is an empty registry ready to use.
type Registry struct {
	mu        sync.RWMutex
	alphabets map[string]*Alphabet
}

// NewRegistry creates a registry holding the given alphabets.
// Later alphabets replace earlier ones with the same name.
func NewRegistry(alphabets ...*Alphabet) *Registry {
	r := &Registry{}
	for _, a := range alphabets {
		r.Set(a)
	}
	return r
}

// Add registers an alphabet, failing if the name is already taken.
func (r *Registry) Add(a *Alphabet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.alphabets[a.Name()]; dup {
		return fmt.Errorf("orbitals: alphabet %q already registered", a.Name())
	}
	r.setLocked(a)
	return nil
}

// Set registers an alphabet, replacing any alphabet with the same name.
func (r *Registry) Set(a *Alphabet) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.setLocked(a)
}

func (r *Registry) setLocked(a *Alphabet) {
	if r.alphabets == nil {
		r.alphabets = make(map[string]*Alphabet)
	}
	r.alphabets[a.Name()] = a
}

// Lookup returns the alphabet registered under name.
// Returns an error wrapping ErrUnknownAlphabet if there is none.
func (r *Registry) Lookup(name string) (*Alphabet, error) {
	r.mu.RLock()
	a, ok := r.alphabets[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlphabet, name)
	}
	return a, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.alphabets))
	for name := range r.alphabets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent registry with the same alphabets.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := &Registry{alphabets: make(map[string]*Alphabet, len(r.alphabets))}
	for name, a := range r.alphabets {
		c.alphabets[name] = a
	}
	return c
}

var defaultRegistry = NewRegistry(English, German, Greek, Russian)

// Register adds an alphabet to the default registry.
// It is typically called from init() and panics if the name is taken,
// so duplicate registrations are caught at program start.
func Register(a *Alphabet) {
	if err := defaultRegistry.Add(a); err != nil {
		panic(err)
	}
}

// Lookup returns an alphabet from the default registry.
func Lookup(name string) (*Alphabet, error) {
	return defaultRegistry.Lookup(name)
}

// Names returns the names in the default registry in sorted order.
func Names() []string {
	return defaultRegistry.Names()
}

// DefaultRegistry returns a copy of the default registry, for callers that
// add their own alphabets without touching global state.
func DefaultRegistry() *Registry {
	return defaultRegistry.Clone()
}
