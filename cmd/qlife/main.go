package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"qlife/internal/app"
	"qlife/internal/config"
	"qlife/internal/logger"
	"qlife/internal/sim"
	"qlife/internal/term"
)

func main() {
	fs := pflag.NewFlagSet("qlife", pflag.ExitOnError)
	cfg, err := config.Load(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	lib, err := cfg.Library()
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.PatternsFile).Msg("load patterns")
	}
	log.Debug().Int("patterns", lib.Len()).Str("file", cfg.PatternsFile).Msg("pattern library ready")
	if cfg.ListPatterns {
		fmt.Println(strings.Join(append(lib.Names(), sim.RandomPattern), "\n"))
		return
	}

	sc, err := cfg.Session(lib, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("configure session")
	}
	session, err := sim.NewSession(sc)
	if err != nil {
		log.Fatal().Err(err).Str("pattern", cfg.Pattern).Msg("seed session")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := app.Options{
		Tick:     cfg.Tick,
		Steps:    cfg.Steps,
		Collapse: cfg.Collapse,
		Seed:     cfg.Seed,
		Logger:   &log,
	}

	switch cfg.UI {
	case config.UIGUI:
		err = app.Run(session, opts)
	case config.UITerm:
		err = runTerminal(ctx, session, cfg, log)
	default:
		ticks, stopTicks := app.Ticker(cfg.Tick)
		err = app.RunHeadless(ctx, session, opts, ticks, os.Stdout)
		stopTicks()
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Str("ui", cfg.UI).Msg("run")
	}
}

func runTerminal(ctx context.Context, session *sim.Session, cfg *config.Config, log zerolog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	return term.New(screen, session, cfg.Tick, log).Run(ctx)
}
