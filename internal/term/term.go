// Package term runs a session inside a terminal using tcell.
package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"qlife/internal/render"
	"qlife/internal/sim"
)

// Shell connects keyboard and mouse input on a tcell screen to a session.
type Shell struct {
	screen  tcell.Screen
	session *sim.Session
	painter *render.Terminal
	tick    time.Duration
	log     zerolog.Logger

	buttons tcell.ButtonMask
}

// New wraps an initialized screen. Mouse reporting is enabled so clicks
// toggle cells.
func New(screen tcell.Screen, session *sim.Session, tick time.Duration, log zerolog.Logger) *Shell {
	screen.EnableMouse()
	if tick <= 0 {
		tick = 100 * time.Millisecond
	}
	return &Shell{
		screen:  screen,
		session: session,
		painter: render.NewTerminal(screen),
		tick:    tick,
		log:     log,
	}
}

// Run draws the session and processes events until the user quits or ctx
// is cancelled. The caller owns the screen and calls Fini afterwards.
func (s *Shell) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	s.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !s.Handle(ev) {
				return nil
			}
		case <-ticker.C:
			if _, stepped := s.session.Tick(); stepped {
				s.draw()
			}
		}
	}
}

// Handle applies one event and reports whether the shell should keep
// running.
func (s *Shell) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			if err := s.session.Start(); err != nil {
				s.log.Warn().Err(err).Msg("start")
			}
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case ' ':
				if err := s.session.TogglePause(); err != nil {
					s.log.Warn().Err(err).Msg("toggle pause")
				}
			case 'r', 'R':
				if err := s.session.Reset(); err != nil {
					s.log.Error().Err(err).Msg("reset")
				}
				s.draw()
			}
		}

	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0 && s.buttons&tcell.Button1 == 0
		s.buttons = ev.Buttons()
		if pressed {
			x, y := ev.Position()
			if s.session.Toggle(y, x/render.ColumnsPerCell) {
				s.draw()
			}
		}

	case *tcell.EventResize:
		s.screen.Sync()
		s.draw()
	}
	return true
}

func (s *Shell) draw() {
	if err := s.painter.Draw(s.session.State().Categories(), s.session.CellSize()); err != nil {
		s.log.Error().Err(err).Msg("draw")
	}
}
