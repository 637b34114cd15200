package spanningtree

import (
	"math/rand"

	"github.com/mggg/gerrychain-go/graph"
)

// Draw returns a uniformly-weighted spanning tree over the induced
// subgraph on members, as a plain edge list — the general-purpose entry
// point used by update.SpanningTrees, distinct from BipartitionTree's
// balance-seeking cut search.
func Draw(g *graph.Graph, members graph.IntSet, rng *rand.Rand) ([]graph.EdgeRef, error) {
	sub := g.Subgraph(members)
	tree, ok := drawSpanningTree(sub, rng, nil)
	if !ok {
		return nil, ErrDisconnectedSubgraph
	}
	out := make([]graph.EdgeRef, len(tree))
	for i, e := range tree {
		u, v := e.u, e.v
		if u > v {
			u, v = v, u
		}
		out[i] = graph.EdgeRef{U: u, V: v}
	}
	return out, nil
}
