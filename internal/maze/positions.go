package maze

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/button-maze/internal/core"
)

// GeneratePositions draws count distinct cells uniformly from a width x height
// grid, none of them in exclude. It uses rejection sampling and fails fast with
// ErrNotEnoughCells when count would fill every free cell.
func GeneratePositions(rng *rand.Rand, exclude core.CoordSet, count, width, height int) (core.CoordSet, error) {
	if count < 0 {
		return nil, fmt.Errorf("maze: cannot generate %d positions", count)
	}
	out := core.NewCoordSet()
	if count == 0 {
		return out, nil
	}

	free := width * height
	for c := range exclude {
		if c.In(width, height) {
			free--
		}
	}
	if count >= free {
		return nil, fmt.Errorf("%w: want %d of %d free cells", ErrNotEnoughCells, count, free)
	}

	for out.Len() < count {
		c := core.C(rng.Intn(height), rng.Intn(width))
		if exclude.Has(c) || out.Has(c) {
			continue
		}
		out.Add(c)
	}
	return out, nil
}
