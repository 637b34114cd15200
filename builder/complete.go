// complete.go — Complete(n) fixture, adapted from lvlath/builder's
// Complete(n) contract in api.go (K_n, n >= 1), rebuilt against
// graph.FromAdjacency.
package builder

import (
	"fmt"

	"github.com/mggg/gerrychain-go/graph"
)

// Complete builds the complete simple graph K_n. Useful for the
// trivial-chain boundary cases of spec.md's testable properties (all
// nodes reachable from all nodes, so any single part covers the graph).
func Complete(n int, opts ...Option) (*graph.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("Complete: n=%d (must be >= 1): %w", n, ErrTooFewNodes)
	}
	cfg := newConfig(opts...)

	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("%d", i)
	}
	var edges []graph.EdgeSpec
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, graph.EdgeSpec{From: i, To: j})
		}
	}

	return buildWithPopulation(ids, edges, cfg)
}
