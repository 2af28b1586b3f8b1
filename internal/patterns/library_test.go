package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qlife/internal/core"
)

func TestDefaultLibraryContents(t *testing.T) {
	lib := Default()
	shapes := map[string]core.Size{
		"glider":            {Rows: 3, Cols: 3},
		"blinker":           {Rows: 1, Cols: 3},
		"gosper_glider_gun": {Rows: 9, Cols: 38},
		"block":             {Rows: 2, Cols: 2},
		"beehive":           {Rows: 3, Cols: 4},
		"loaf":              {Rows: 4, Cols: 4},
		"boat":              {Rows: 3, Cols: 3},
		"toad":              {Rows: 2, Cols: 4},
		"beacon":            {Rows: 4, Cols: 4},
		"lwss":              {Rows: 4, Cols: 5},
		"r_pentomino":       {Rows: 3, Cols: 3},
		"diehard":           {Rows: 3, Cols: 8},
		"acorn":             {Rows: 3, Cols: 7},
	}
	assert.Equal(t, len(shapes), lib.Len())
	for name, size := range shapes {
		p, err := lib.Get(name)
		require.NoError(t, err, name)
		assert.Equal(t, size, p.Size(), name)
		assert.Equal(t, name, p.Name())
	}
	assert.Equal(t, 36, mustGet(t, lib, "gosper_glider_gun").Population())
	assert.Equal(t, 5, mustGet(t, lib, "glider").Population())
}

func TestGetNormalizesName(t *testing.T) {
	lib := Default()
	p, err := lib.Get("  Glider ")
	require.NoError(t, err)
	assert.Equal(t, "glider", p.Name())
	assert.True(t, p.At(0, 1))
	assert.False(t, p.At(0, 0))
}

func TestGetUnknownPattern(t *testing.T) {
	_, err := Default().Get("spaceship-42")
	require.ErrorIs(t, err, ErrPatternNotFound)
}

func TestNamesSorted(t *testing.T) {
	names := Default().Names()
	require.NotEmpty(t, names)
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, "blinker")
}

func TestLoadTOML(t *testing.T) {
	data := []byte(`
[Tub]
alive_cells = [[0, 1], [1, 0], [1, 2], [2, 1]]
`)
	got, err := LoadTOML(data)
	require.NoError(t, err)
	tub, ok := got["tub"]
	require.True(t, ok)
	assert.Equal(t, core.Size{Rows: 3, Cols: 3}, tub.Size())
	assert.Equal(t, 4, tub.Population())
	assert.False(t, tub.At(1, 1))
}

func TestLoadTOMLRejectsBadEntries(t *testing.T) {
	cases := map[string]string{
		"syntax":   `[broken`,
		"triple":   "[x]\nalive_cells = [[0, 1, 2]]\n",
		"negative": "[x]\nalive_cells = [[-1, 0]]\n",
		"empty":    "[x]\nalive_cells = []\n",
	}
	for name, data := range cases {
		_, err := LoadTOML([]byte(data))
		assert.Error(t, err, name)
	}
}

func TestMergeOverrides(t *testing.T) {
	lib := Default()
	dot, err := FromCells("BLINKER", [][2]int{{0, 0}})
	require.NoError(t, err)
	lib.Merge(map[string]Pattern{"blinker": dot})
	assert.Equal(t, core.Size{Rows: 1, Cols: 1}, mustGet(t, lib, "blinker").Size())
}

func TestFromMatrixRejectsRagged(t *testing.T) {
	_, err := FromMatrix("ragged", [][]uint8{{1, 0}, {1}})
	assert.Error(t, err)
	_, err = FromMatrix("empty", nil)
	assert.Error(t, err)
}

func mustGet(t *testing.T, lib *Library, name string) Pattern {
	t.Helper()
	p, err := lib.Get(name)
	require.NoError(t, err)
	return p
}
