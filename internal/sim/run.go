package sim

import (
	"context"
	"time"

	"qlife/internal/core"
)

// Renderer draws one frame of categories at the given cell pixel size.
type Renderer interface {
	Draw(cats core.Categories, cellSize int) error
}

// Run draws the current frame, then advances and redraws once per value
// received on ticks while the session is running. It returns nil once
// limit generations have been reached (limit <= 0 means no limit), and
// ctx.Err() when ctx is cancelled. Cancellation is checked between ticks.
func (s *Session) Run(ctx context.Context, r Renderer, ticks <-chan time.Time, limit int) error {
	if err := r.Draw(s.state.Categories(), s.cfg.CellSize); err != nil {
		return err
	}
	for {
		if limit > 0 && s.state.Generation() >= limit {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticks:
			frame, stepped := s.Tick()
			if !stepped {
				continue
			}
			if err := r.Draw(frame.Categories, s.cfg.CellSize); err != nil {
				return err
			}
		}
	}
}
