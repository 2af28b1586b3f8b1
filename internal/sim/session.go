package sim

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"qlife/internal/core"
	"qlife/internal/patterns"
)

// ErrIllegalTransition is returned when a control is not valid in the
// current phase.
var ErrIllegalTransition = errors.New("illegal transition")

// Phase is the run state of a Session.
type Phase uint8

const (
	Idle Phase = iota
	Running
	Stopped
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// Config holds everything a Session needs to seed and advance a run.
type Config struct {
	Mode     Mode
	Size     core.Size
	Edge     core.EdgePolicy
	CellSize int
	Seed     Seed
	Library  *patterns.Library
	Logger   *zerolog.Logger
}

// Frame is what a Renderer receives after each step.
type Frame struct {
	Generation int
	Mode       Mode
	Phase      Phase
	Categories core.Categories
}

// Session owns the current generation and the Idle -> Running -> Stopped
// state machine. Reset returns to Idle with a freshly seeded generation.
// A Session is not safe for concurrent use.
type Session struct {
	cfg    Config
	state  State
	phase  Phase
	resets int
	log    zerolog.Logger
}

// NewSession validates cfg and seeds generation zero.
func NewSession(cfg Config) (*Session, error) {
	if !cfg.Mode.Valid() {
		return nil, fmt.Errorf("%s: %w", cfg.Mode, ErrInvalidMode)
	}
	if cfg.Library == nil {
		cfg.Library = patterns.Default()
	}
	if cfg.CellSize <= 0 {
		cfg.CellSize = 1
	}
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	s := &Session{
		cfg: cfg,
		log: log.With().
			Str("run_id", uuid.NewString()).
			Stringer("mode", cfg.Mode).
			Logger(),
	}
	state, err := NewState(cfg.Mode, cfg.Size, cfg.Edge, cfg.Library, cfg.Seed)
	if err != nil {
		return nil, err
	}
	s.state = state
	s.log.Info().
		Str("pattern", cfg.Seed.Pattern).
		Int("rows", state.Size().Rows).
		Int("cols", state.Size().Cols).
		Stringer("edge", cfg.Edge).
		Msg("session seeded")
	return s, nil
}

// Phase returns the current run state.
func (s *Session) Phase() Phase { return s.phase }

// State returns the current generation.
func (s *Session) State() State { return s.state }

// Mode returns the rule model of the run.
func (s *Session) Mode() Mode { return s.cfg.Mode }

// CellSize returns the pixel size handed to renderers.
func (s *Session) CellSize() int { return s.cfg.CellSize }

// Frame returns the current generation as a renderable frame.
func (s *Session) Frame() Frame {
	return Frame{
		Generation: s.state.Generation(),
		Mode:       s.state.Mode(),
		Phase:      s.phase,
		Categories: s.state.Categories(),
	}
}

// Start begins advancing generations from Idle or Stopped.
func (s *Session) Start() error {
	if s.phase == Running {
		return fmt.Errorf("start while %s: %w", s.phase, ErrIllegalTransition)
	}
	s.transition(Running)
	return nil
}

// Stop pauses a running session.
func (s *Session) Stop() error {
	if s.phase != Running {
		return fmt.Errorf("stop while %s: %w", s.phase, ErrIllegalTransition)
	}
	s.transition(Stopped)
	return nil
}

// TogglePause starts an idle or stopped session and stops a running one.
func (s *Session) TogglePause() error {
	if s.phase == Running {
		return s.Stop()
	}
	return s.Start()
}

// Reset replaces the generation with a freshly seeded one and returns to
// Idle. Random seeds advance on every reset so each board differs.
func (s *Session) Reset() error {
	seed := s.cfg.Seed
	seed.Seed += int64(s.resets + 1)
	state, err := NewState(s.cfg.Mode, s.cfg.Size, s.cfg.Edge, s.cfg.Library, seed)
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	s.resets++
	s.state = state
	s.transition(Idle)
	s.log.Info().Int("resets", s.resets).Msg("session reset")
	return nil
}

// Tick advances exactly one generation when running. The new generation
// is adopted only after the step completes. It reports whether a step
// was taken.
func (s *Session) Tick() (Frame, bool) {
	if s.phase != Running {
		return s.Frame(), false
	}
	s.state = s.state.advance()
	s.log.Debug().Int("generation", s.state.Generation()).Msg("step")
	return s.Frame(), true
}

// Toggle flips the classical cell at (r, c). It is refused while running
// or in quantum mode, and out-of-range coordinates are ignored.
func (s *Session) Toggle(r, c int) bool {
	if s.phase == Running {
		return false
	}
	cs, ok := s.state.(*ClassicalState)
	if !ok {
		return false
	}
	return cs.toggle(r, c)
}

// ToggleAtPixel maps canvas coordinates onto a cell and toggles it.
func (s *Session) ToggleAtPixel(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	return s.Toggle(y/s.cfg.CellSize, x/s.cfg.CellSize)
}

func (s *Session) transition(to Phase) {
	if s.phase == to {
		return
	}
	s.log.Info().Stringer("from", s.phase).Stringer("to", to).Msg("phase change")
	s.phase = to
}
