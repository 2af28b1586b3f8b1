//go:build ebiten

package app

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"qlife/internal/core"
	"qlife/internal/render"
	"qlife/internal/sim"
)

// Game adapts a sim.Session to the ebiten.Game interface.
type Game struct {
	session *sim.Session
	painter *render.GridPainter
	clock   *core.FixedStep
	log     zerolog.Logger
}

// New constructs a Game for the provided session.
func New(session *sim.Session, opts Options) *Game {
	return &Game{
		session: session,
		painter: render.NewGridPainter(),
		clock:   core.NewFixedStep(opts.Tick),
		log:     opts.logger(),
	}
}

// Update handles per-frame input and advances the session when the tick
// interval has elapsed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if err := g.session.TogglePause(); err != nil {
			g.log.Warn().Err(err).Msg("toggle pause")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if err := g.session.Start(); err != nil {
			g.log.Warn().Err(err).Msg("start")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.session.Reset(); err != nil {
			return err
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.session.ToggleAtPixel(x, y)
	}

	if g.clock.ShouldStep() {
		g.session.Tick()
	}
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.SetTarget(screen)
	if err := g.painter.Draw(g.session.State().Categories(), g.session.CellSize()); err != nil {
		g.log.Error().Err(err).Msg("draw")
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.State().Size()
	return s.Cols * g.session.CellSize(), s.Rows * g.session.CellSize()
}

// Run opens a window and blocks until it is closed.
func Run(session *sim.Session, opts Options) error {
	game := New(session, opts)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle(opts.title(session))
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
