// grid.go — Grid(rows, cols) fixture, adapted from lvlath/builder's
// impl_grid.go: same row-major "r,c" ID scheme, same deterministic
// right-then-bottom edge emission order, retargeted from core.Graph's
// mutable AddVertex/AddEdge calls to a single graph.FromAdjacency build
// (this module's Graph is frozen at construction, not grown in place).
package builder

import (
	"fmt"

	"github.com/mggg/gerrychain-go/graph"
)

const gridIDFmt = "%d,%d"

// Grid builds a rows x cols orthogonal grid with 4-neighborhood adjacency
// (right and bottom neighbors per cell), row-major node order, IDs "r,c" —
// the shape of spec.md's S1 scenario (4x4 grid, single-flip contiguity).
func Grid(rows, cols int, opts ...Option) (*graph.Graph, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("Grid: rows=%d, cols=%d (each must be >= 1): %w", rows, cols, ErrTooFewNodes)
	}
	cfg := newConfig(opts...)

	n := rows * cols
	ids := make([]string, n)
	index := func(r, c int) int { return r*cols + c }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			ids[index(r, c)] = fmt.Sprintf(gridIDFmt, r, c)
		}
	}

	var edges []graph.EdgeSpec
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := index(r, c)
			if c+1 < cols {
				edges = append(edges, graph.EdgeSpec{From: u, To: index(r, c+1)})
			}
			if r+1 < rows {
				edges = append(edges, graph.EdgeSpec{From: u, To: index(r+1, c)})
			}
		}
	}

	return buildWithPopulation(ids, edges, cfg)
}
