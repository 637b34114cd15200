package spanningtree

import (
	"math/rand"

	"github.com/mggg/gerrychain-go/graph"
)

// RecursiveSeedPart implements spec 4.5's recursive_seed_part: repeatedly
// bipartition the remaining pool into one ideal-sized part and a
// remainder sized for the rest, until one part remains. Returns a
// node -> part id map with parts numbered 0..nParts-1 in the order they
// were carved off. onWarning, if non-nil, receives every bipartition
// attempt's warnings as they occur.
func RecursiveSeedPart(g *graph.Graph, nParts int, popCol string, epsilon float64, rng *rand.Rand, onWarning func(Warning)) (map[int]int, error) {
	if nParts < 1 {
		return nil, ErrEmptySubgraph
	}
	total := 0.0
	pool := graph.IntSet{}
	for v := 0; v < g.N(); v++ {
		val, err := g.NodeAttr(v, popCol)
		if err != nil {
			return nil, ErrMissingPopulation
		}
		f, err := val.AsFloat()
		if err != nil {
			return nil, ErrMissingPopulation
		}
		total += f
		pool.Add(v)
	}
	ideal := total / float64(nParts)

	result := make(map[int]int, g.N())
	remainingParts := nParts
	partID := 0
	for remainingParts > 1 {
		sub := g.Subgraph(pool)
		sides, _, err := BipartitionTree(sub, popCol, ideal, rng, BipartitionOptions{Epsilon: epsilon, MaxAttempts: 10000, OnWarning: onWarning})
		if err != nil {
			return nil, err
		}
		newPool := graph.IntSet{}
		for v, side := range sides {
			if side == 0 {
				result[v] = partID
			} else {
				newPool.Add(v)
			}
		}
		pool = newPool
		partID++
		remainingParts--
	}
	for _, v := range pool.Sorted() {
		result[v] = partID
	}
	return result, nil
}
