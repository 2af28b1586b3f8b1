package sim

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"qlife/internal/core"
)

func classicalConfig(pattern string, row, col int) Config {
	return Config{
		Mode:     Classical,
		Size:     core.Size{Rows: 5, Cols: 5},
		CellSize: 10,
		Seed:     Seed{Pattern: pattern, Row: row, Col: col},
	}
}

func TestSessionStateMachine(t *testing.T) {
	Convey("Given a classical session seeded with a blinker", t, func() {
		s, err := NewSession(classicalConfig("blinker", 2, 1))
		So(err, ShouldBeNil)
		So(s.Phase(), ShouldEqual, Idle)
		So(s.State().Generation(), ShouldEqual, 0)

		Convey("Ticking while idle does not advance", func() {
			_, stepped := s.Tick()
			So(stepped, ShouldBeFalse)
			So(s.State().Generation(), ShouldEqual, 0)
		})

		Convey("Stopping while idle is rejected", func() {
			So(errors.Is(s.Stop(), ErrIllegalTransition), ShouldBeTrue)
			So(s.Phase(), ShouldEqual, Idle)
		})

		Convey("When started", func() {
			So(s.Start(), ShouldBeNil)
			So(s.Phase(), ShouldEqual, Running)

			Convey("Each tick advances exactly one generation", func() {
				frame, stepped := s.Tick()
				So(stepped, ShouldBeTrue)
				So(frame.Generation, ShouldEqual, 1)
				So(frame.Mode, ShouldEqual, Classical)
				So(frame.Categories.At(1, 2), ShouldEqual, core.Alive)
				So(frame.Categories.At(2, 1), ShouldEqual, core.AboutToDie)

				frame, _ = s.Tick()
				So(frame.Generation, ShouldEqual, 2)
			})

			Convey("Starting again is rejected", func() {
				So(errors.Is(s.Start(), ErrIllegalTransition), ShouldBeTrue)
			})

			Convey("Toggling is refused", func() {
				So(s.Toggle(0, 0), ShouldBeFalse)
				So(s.State().(*ClassicalState).Grid().Alive(0, 0), ShouldBeFalse)
			})

			Convey("Then stopped, it can resume", func() {
				s.Tick()
				So(s.Stop(), ShouldBeNil)
				So(s.Phase(), ShouldEqual, Stopped)

				_, stepped := s.Tick()
				So(stepped, ShouldBeFalse)

				So(s.Start(), ShouldBeNil)
				frame, _ := s.Tick()
				So(frame.Generation, ShouldEqual, 2)
			})

			Convey("Reset returns to idle with generation zero", func() {
				s.Tick()
				s.Tick()
				So(s.Reset(), ShouldBeNil)
				So(s.Phase(), ShouldEqual, Idle)
				So(s.State().Generation(), ShouldEqual, 0)
				g := s.State().(*ClassicalState).Grid()
				So(g.Alive(2, 1), ShouldBeTrue)
				So(g.Alive(2, 3), ShouldBeTrue)
				So(g.Population(), ShouldEqual, 3)
			})
		})

		Convey("TogglePause flips between running and stopped", func() {
			So(s.TogglePause(), ShouldBeNil)
			So(s.Phase(), ShouldEqual, Running)
			So(s.TogglePause(), ShouldBeNil)
			So(s.Phase(), ShouldEqual, Stopped)
		})
	})
}

func TestSessionToggle(t *testing.T) {
	Convey("Given a stopped classical session", t, func() {
		s, err := NewSession(classicalConfig("block", 0, 0))
		So(err, ShouldBeNil)
		grid := func() *core.Grid { return s.State().(*ClassicalState).Grid() }

		Convey("Toggling the same cell twice restores it", func() {
			So(s.Toggle(3, 3), ShouldBeTrue)
			So(grid().Alive(3, 3), ShouldBeTrue)
			So(s.State().Categories().At(3, 3), ShouldEqual, core.Alive)
			So(s.Toggle(3, 3), ShouldBeTrue)
			So(grid().Alive(3, 3), ShouldBeFalse)
		})

		Convey("Pixel coordinates are floor-divided by the cell size", func() {
			So(s.ToggleAtPixel(39, 21), ShouldBeTrue)
			So(grid().Alive(2, 3), ShouldBeTrue)
		})

		Convey("Out-of-range pixels are ignored", func() {
			before := grid().Clone()
			So(s.ToggleAtPixel(-1, 5), ShouldBeFalse)
			So(s.ToggleAtPixel(5, 50), ShouldBeFalse)
			So(s.ToggleAtPixel(500, 5), ShouldBeFalse)
			So(grid().Equal(before), ShouldBeTrue)
		})
	})

	Convey("Given a quantum session", t, func() {
		cfg := classicalConfig("blinker", 2, 1)
		cfg.Mode = Quantum
		s, err := NewSession(cfg)
		So(err, ShouldBeNil)

		Convey("Toggling is not supported", func() {
			So(s.Toggle(2, 2), ShouldBeFalse)
		})

		Convey("Ticks keep the amplitudes normalized", func() {
			So(s.Start(), ShouldBeNil)
			for i := 0; i < 3; i++ {
				s.Tick()
			}
			qs, ok := s.State().(*QuantumState)
			So(ok, ShouldBeTrue)
			So(qs.Generation(), ShouldEqual, 3)
			So(qs.Amplitudes().Normalized(1e-12), ShouldBeTrue)
		})
	})
}

func TestNewSessionErrors(t *testing.T) {
	Convey("Construction fails before any grid is built", t, func() {
		Convey("for an unknown mode", func() {
			cfg := classicalConfig("blinker", 0, 0)
			cfg.Mode = Mode(9)
			_, err := NewSession(cfg)
			So(errors.Is(err, ErrInvalidMode), ShouldBeTrue)
		})

		Convey("for an unknown pattern", func() {
			_, err := NewSession(classicalConfig("nope", 0, 0))
			So(err, ShouldNotBeNil)
		})

		Convey("for a placement that does not fit", func() {
			_, err := NewSession(classicalConfig("blinker", 0, 3))
			So(err, ShouldNotBeNil)
		})
	})
}
