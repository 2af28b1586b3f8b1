package patterns

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrPatternNotFound is returned when a name is not a library key.
var ErrPatternNotFound = errors.New("pattern not found")

//go:embed patterns.toml
var catalogue []byte

// Library maps normalized names to patterns.
type Library struct {
	patterns map[string]Pattern
}

// NewLibrary returns an empty library.
func NewLibrary() *Library {
	return &Library{patterns: map[string]Pattern{}}
}

// Default returns the built-in stamps plus the embedded catalogue.
func Default() *Library {
	lib := NewLibrary()
	for _, p := range builtins() {
		lib.Add(p)
	}
	extra, err := LoadTOML(catalogue)
	if err != nil {
		panic(fmt.Sprintf("embedded pattern catalogue: %v", err))
	}
	lib.Merge(extra)
	return lib
}

// Normalize folds a user-supplied name into a library key.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Add registers a pattern under its normalized name, replacing any entry
// with the same key.
func (l *Library) Add(p Pattern) {
	key := Normalize(p.name)
	p.name = key
	l.patterns[key] = p
}

// Merge adds every pattern of m.
func (l *Library) Merge(m map[string]Pattern) {
	for _, p := range m {
		l.Add(p)
	}
}

// Get looks up a pattern by name.
func (l *Library) Get(name string) (Pattern, error) {
	p, ok := l.patterns[Normalize(name)]
	if !ok {
		return Pattern{}, fmt.Errorf("%q: %w", name, ErrPatternNotFound)
	}
	return p, nil
}

// Names returns the sorted library keys.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.patterns))
	for k := range l.patterns {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of patterns.
func (l *Library) Len() int { return len(l.patterns) }

func builtins() []Pattern {
	return []Pattern{
		mustMatrix("glider", [][]uint8{
			{0, 1, 0},
			{0, 0, 1},
			{1, 1, 1},
		}),
		mustMatrix("blinker", [][]uint8{
			{1, 1, 1},
		}),
		mustMatrix("gosper_glider_gun", [][]uint8{
			{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0},
			{1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 1, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			{1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 1, 0, 1, 1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		}),
	}
}
