// Package sim owns the simulation state and the start/stop/reset state
// machine that drives it.
package sim

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMode is returned for an unrecognized mode selector.
var ErrInvalidMode = errors.New("invalid mode")

// Mode selects the rule model for a run.
type Mode uint8

const (
	Classical Mode = iota + 1
	Quantum
)

func (m Mode) String() string {
	switch m {
	case Classical:
		return "classical"
	case Quantum:
		return "quantum"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool { return m == Classical || m == Quantum }

// ParseMode maps a case-insensitive selector onto a Mode. Both the full
// names and their first letters are accepted.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "classical", "c":
		return Classical, nil
	case "quantum", "q":
		return Quantum, nil
	}
	return 0, fmt.Errorf("%q (want classical or quantum): %w", s, ErrInvalidMode)
}
