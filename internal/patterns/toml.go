package patterns

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type catalogueEntry struct {
	AliveCells [][]int `toml:"alive_cells"`
}

// LoadTOML decodes a pattern catalogue. Each top-level table names a
// pattern and lists its live cells as [row, col] pairs.
func LoadTOML(data []byte) (map[string]Pattern, error) {
	var raw map[string]catalogueEntry
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode pattern catalogue: %w", err)
	}
	out := make(map[string]Pattern, len(raw))
	for name, entry := range raw {
		cells := make([][2]int, 0, len(entry.AliveCells))
		for _, rc := range entry.AliveCells {
			if len(rc) != 2 {
				return nil, fmt.Errorf("%s: cell %v is not a [row, col] pair: %w", name, rc, errMalformed)
			}
			cells = append(cells, [2]int{rc[0], rc[1]})
		}
		p, err := FromCells(Normalize(name), cells)
		if err != nil {
			return nil, err
		}
		out[p.name] = p
	}
	return out, nil
}

// LoadFile reads a catalogue from disk.
func LoadFile(path string) (map[string]Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pattern catalogue: %w", err)
	}
	return LoadTOML(data)
}
