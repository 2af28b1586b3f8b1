package classical

import (
	"testing"

	"qlife/internal/core"
	"qlife/internal/patterns"
)

func seeded(t *testing.T, rows, cols int, name string, r, c int) *core.Grid {
	t.Helper()
	p, err := patterns.Default().Get(name)
	if err != nil {
		t.Fatal(err)
	}
	g := core.NewGrid(rows, cols)
	if err := patterns.PlaceGrid(g, p, r, c); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestBlinkerOscillation(t *testing.T) {
	e := New(core.Bounded)
	g := core.NewGrid(5, 5)
	g.Set(1, 2, 1)
	g.Set(2, 2, 1)
	g.Set(3, 2, 1)

	nxt, _ := e.Step(g)

	expects := map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}

	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			_, shouldBeAlive := expects[[2]int{r, c}]
			if shouldBeAlive != nxt.Alive(r, c) {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", r, c, nxt.Alive(r, c), shouldBeAlive)
			}
		}
	}

	back, _ := e.Step(nxt)
	if !back.Equal(g) {
		t.Fatal("blinker did not return to its starting phase after two steps")
	}
}

func TestBlinkerScenario(t *testing.T) {
	g := seeded(t, 5, 5, "blinker", 2, 1)
	nxt, cats := New(core.Bounded).Step(g)

	for r := 0; r < 5; r++ {
		want := r >= 1 && r <= 3
		if nxt.Alive(r, 2) != want {
			t.Fatalf("column 2 row %d alive=%v, expected %v", r, nxt.Alive(r, 2), want)
		}
	}
	for c := 0; c < 5; c++ {
		if c != 2 && nxt.Alive(2, c) {
			t.Fatalf("row 2 col %d still alive", c)
		}
	}
	if cats.At(2, 1) != core.AboutToDie || cats.At(2, 3) != core.AboutToDie {
		t.Fatal("blinker ends should be about to die")
	}
	if cats.At(2, 2) != core.Alive || cats.At(1, 2) != core.Alive {
		t.Fatal("surviving and born cells should be alive")
	}
	if cats.At(0, 0) != core.Background {
		t.Fatal("empty cell should be background")
	}
	if got := cats.Count(core.Alive); got != 3 {
		t.Fatalf("alive category count = %d, expected 3", got)
	}
}

func TestGliderTranslation(t *testing.T) {
	e := New(core.Bounded)
	g := seeded(t, 12, 12, "glider", 1, 1)
	want := seeded(t, 12, 12, "glider", 2, 2)

	cur := g
	for i := 0; i < 4; i++ {
		cur, _ = e.Step(cur)
	}
	if !cur.Equal(want) {
		t.Fatal("glider did not translate by (1,1) after four steps")
	}
}

func TestStepIsPure(t *testing.T) {
	g := seeded(t, 10, 10, "r_pentomino", 3, 3)
	before := g.Clone()
	a, catsA := New(core.Bounded).Step(g)
	b, catsB := New(core.Bounded).Step(g)

	if !g.Equal(before) {
		t.Fatal("Step mutated its input")
	}
	if !a.Equal(b) {
		t.Fatal("Step is not deterministic")
	}
	if a.Size() != g.Size() {
		t.Fatalf("size changed from %+v to %+v", g.Size(), a.Size())
	}
	for i, v := range catsA.Values() {
		if catsB.Values()[i] != v {
			t.Fatal("categories are not deterministic")
		}
	}
}

func TestStillLifeStaysPut(t *testing.T) {
	g := seeded(t, 6, 6, "beehive", 1, 1)
	nxt, cats := New(core.Bounded).Step(g)
	if !nxt.Equal(g) {
		t.Fatal("beehive changed")
	}
	if cats.Count(core.AboutToDie) != 0 {
		t.Fatal("still life has no dying cells")
	}
}

func TestToroidalBlinkerAcrossEdge(t *testing.T) {
	e := New(core.Toroidal)
	g := core.NewGrid(6, 6)
	g.Set(0, 5, 1)
	g.Set(0, 0, 1)
	g.Set(0, 1, 1)

	nxt, _ := e.Step(g)
	for _, r := range []int{5, 0, 1} {
		if !nxt.Alive(r, 0) {
			t.Fatalf("wrapped blinker missing cell (%d,0)", r)
		}
	}
	if nxt.Population() != 3 {
		t.Fatalf("population = %d, expected 3", nxt.Population())
	}
	back, _ := e.Step(nxt)
	if !back.Equal(g) {
		t.Fatal("wrapped blinker did not oscillate")
	}
}

func TestBoundedEdgeBlinkerDies(t *testing.T) {
	// A blinker lying on the top edge loses its vertical phase.
	g := core.NewGrid(5, 5)
	g.Set(0, 1, 1)
	g.Set(0, 2, 1)
	g.Set(0, 3, 1)
	nxt, _ := New(core.Bounded).Step(g)
	if nxt.Population() != 2 {
		t.Fatalf("population = %d, expected 2", nxt.Population())
	}
}

func TestClassify(t *testing.T) {
	g := seeded(t, 4, 4, "block", 1, 1)
	cats := Classify(g)
	if cats.Count(core.Alive) != 4 || cats.At(0, 0) != core.Background {
		t.Fatal("Classify should mark exactly the live cells")
	}
}
