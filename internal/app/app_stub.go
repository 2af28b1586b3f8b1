//go:build !ebiten

package app

import (
	"errors"

	"qlife/internal/sim"
)

// ErrNoGUI is returned by Run in builds without the ebiten tag.
var ErrNoGUI = errors.New("the GUI front end requires building with -tags ebiten")

// Run reports that the GUI build tag is missing.
func Run(*sim.Session, Options) error { return ErrNoGUI }
