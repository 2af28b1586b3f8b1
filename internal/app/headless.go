package app

import (
	"context"
	"io"
	"time"

	"qlife/internal/core"
	"qlife/internal/render"
	"qlife/internal/sim"
)

// RunHeadless starts the session and writes every frame to w as text,
// advancing once per value on ticks. With Options.Collapse set, a quantum
// run finishes by printing one sampled classical board.
func RunHeadless(ctx context.Context, session *sim.Session, opts Options, ticks <-chan time.Time, w io.Writer) error {
	log := opts.logger()
	txt := render.NewText(w)
	if err := session.Start(); err != nil {
		return err
	}
	err := session.Run(ctx, txt, ticks, opts.Steps)
	if err != nil {
		return err
	}
	log.Info().Int("generation", session.State().Generation()).Msg("headless run finished")

	if !opts.Collapse {
		return nil
	}
	qs, ok := session.State().(*sim.QuantumState)
	if !ok {
		return nil
	}
	if _, err := io.WriteString(w, "-- observed\n"); err != nil {
		return err
	}
	txt.Heading = false
	return txt.WriteGrid(qs.Amplitudes().Observe(core.NewRNG(opts.Seed).Source()))
}

// Ticker returns a channel ticking at interval and a stop function.
func Ticker(interval time.Duration) (<-chan time.Time, func()) {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	t := time.NewTicker(interval)
	return t.C, t.Stop
}
