// random_sparse.go — RandomSparse(n, p) fixture, adapted from
// lvlath/builder's RandomSparse contract in api.go: an Erdos-Renyi-style
// graph over every unordered pair, included independently with
// probability p, using cfg.rng for determinism under a fixed seed.
// It matches the shape of spec.md's S5 scenario (20-node random graph,
// short-bursts optimizer).
package builder

import (
	"fmt"

	"github.com/mggg/gerrychain-go/graph"
)

// RandomSparse builds an n-node graph where each of the n*(n-1)/2
// unordered pairs becomes an edge independently with probability p,
// redrawn (fresh draws from the same rng, same p, up to 50 attempts,
// then an error) until the result is connected, since a
// disconnected graph cannot seed a valid initial Assignment (spec 4.2's
// from_random / SeedFailure).
func RandomSparse(n int, p float64, opts ...Option) (*graph.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("RandomSparse: n=%d (must be >= 1): %w", n, ErrTooFewNodes)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSparse: p=%g: %w", p, ErrInvalidProbability)
	}
	cfg := newConfig(opts...)

	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("%d", i)
	}

	const maxAttempts = 50
	for attempt := 0; attempt < maxAttempts; attempt++ {
		var edges []graph.EdgeSpec
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					edges = append(edges, graph.EdgeSpec{From: i, To: j})
				}
			}
		}
		g, err := buildWithPopulation(ids, edges, cfg)
		if err != nil {
			return nil, err
		}
		all := graph.NewIntSet()
		for i := 0; i < n; i++ {
			all.Add(i)
		}
		if len(g.ConnectedComponents(g.Subgraph(all))) == 1 {
			return g, nil
		}
	}
	return nil, fmt.Errorf("RandomSparse: n=%d p=%g did not converge to a connected graph in %d attempts", n, p, maxAttempts)
}
