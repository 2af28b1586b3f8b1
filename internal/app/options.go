// Package app hosts the window and headless front ends around a
// sim.Session.
package app

import (
	"time"

	"github.com/rs/zerolog"

	"qlife/internal/sim"
)

// Options configures a front end.
type Options struct {
	Tick     time.Duration
	Title    string
	Steps    int
	Collapse bool
	Seed     int64
	Logger   *zerolog.Logger
}

func (o Options) logger() zerolog.Logger {
	if o.Logger == nil {
		return zerolog.Nop()
	}
	return *o.Logger
}

func (o Options) title(s *sim.Session) string {
	if o.Title != "" {
		return o.Title
	}
	return "Game of Life - " + s.Mode().String()
}
