// path.go — Path(n) fixture, adapted from lvlath/builder's topology
// factories (declared but never implemented in impl form for Path in the
// teacher's own tree — api.go only sketches its contract); implemented
// here in the same "validate, build, deterministic emission order" shape
// as Grid.
package builder

import (
	"fmt"

	"github.com/mggg/gerrychain-go/graph"
)

// Path builds a simple path of n nodes, 0-1-...-(n-1) — the shape
// of spec.md's S3 scenario (8-node path, ReCom balanced split).
func Path(n int, opts ...Option) (*graph.Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("Path: n=%d (must be >= 2): %w", n, ErrTooFewNodes)
	}
	cfg := newConfig(opts...)

	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("%d", i)
	}
	edges := make([]graph.EdgeSpec, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, graph.EdgeSpec{From: i, To: i + 1})
	}

	return buildWithPopulation(ids, edges, cfg)
}
