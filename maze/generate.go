package maze

import "fmt"

// Rand is the source of randomness used by Generate. *math/rand.Rand
// satisfies it.
type Rand interface {
	Perm(n int) []int
	Shuffle(n int, swap func(i, j int))
	Intn(n int) int
}

// minMergesBeforeStop is how many walls a cell opens before each further
// neighbor becomes a coin flip. It keeps the tree sparse.
const minMergesBeforeStop = 2

// Generate opens walls in g until every cell belongs to a single group and
// the open walls form a spanning tree.
//
// Each pass visits the cells in a shuffled order. A visited cell walks its
// neighbors in shuffled order and merges every neighbor that belongs to
// another group, opening the wall between them. Passes repeat until one group
// remains. On return every cell's Group holds the id of the single group.
func Generate(g *Grid, rng Rand) error {
	if len(g.Cells) == 0 {
		return ErrEmptyGrid
	}

	sets := newDisjointSet(g.Cells)
	for pass := 1; sets.count > 1; pass++ {
		merged, err := g.mergePass(sets, rng)
		if err != nil {
			return err
		}
		if merged == 0 {
			return fmt.Errorf("pass %d with %d groups left: %w", pass, sets.count, ErrGenerationStalled)
		}
	}

	for i := range g.Cells {
		g.Cells[i].Group = sets.find(i)
	}
	return nil
}

// mergePass runs a single shuffled pass over all cells and returns the number
// of merges it made.
func (g *Grid) mergePass(sets *disjointSet, rng Rand) (int, error) {
	n := len(g.Cells)
	merged := 0

	for _, ci := range rng.Perm(n) {
		if ci < 0 || ci >= n {
			return merged, fmt.Errorf("visit index %d of %d cells: %w", ci, n, ErrInvariantViolation)
		}

		neighbors := Neighbors(ci, n, g.CellsX)
		rng.Shuffle(len(neighbors), func(i, j int) {
			neighbors[i], neighbors[j] = neighbors[j], neighbors[i]
		})

		processed := 0
		for _, nb := range neighbors {
			if processed >= minMergesBeforeStop && rng.Intn(2) == 0 {
				break
			}

			if nb.Index < 0 || nb.Index >= n {
				return merged, fmt.Errorf("neighbor %d (%s) of cell %d, %d cells, width %d: %w",
					nb.Index, nb.Direction, ci, n, g.CellsX, ErrInvariantViolation)
			}

			if !sets.union(ci, nb.Index) {
				continue
			}
			g.open(ci, nb)
			processed++
			merged++
		}
	}

	return merged, nil
}
