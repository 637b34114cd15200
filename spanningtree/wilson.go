package spanningtree

import (
	"math/rand"

	"github.com/mggg/gerrychain-go/graph"
)

// drawUniformSpanningTree implements Wilson's algorithm: loop-erased
// random walks from every vertex not yet in the growing tree until they
// hit it, which samples a spanning tree uniformly among all of the
// subgraph's spanning trees (spec 4.5's opt-in alternative to weighted
// Kruskal). Region surcharges have no meaning here — a uniform sampler by
// definition ignores edge weights — so the draw itself is weight-free;
// crossed/surchSum on the returned treeEdges are still filled in, though
// chooseCut recomputes them for each candidate cut.
func drawUniformSpanningTree(sub *graph.Subgraph, rng *rand.Rand, rs RegionSurcharge) ([]treeEdge, bool) {
	g := sub.Graph()
	members := sub.Members().Sorted()
	if len(members) == 0 {
		return nil, false
	}

	inTree := make(map[int]bool, len(members))
	next := make(map[int]int) // node -> next node on its path into the tree
	root := members[0]
	inTree[root] = true

	for _, start := range members {
		if inTree[start] {
			continue
		}
		// Loop-erased random walk from start until it reaches the tree.
		u := start
		for !inTree[u] {
			nbrs := sub.Neighbors(u)
			if len(nbrs) == 0 {
				return nil, false
			}
			next[u] = nbrs[rng.Intn(len(nbrs))]
			u = next[u]
		}
		// Walk the path from start, erasing loops, and commit it.
		u = start
		for !inTree[u] {
			inTree[u] = true
			u = next[u]
		}
	}

	var tree []treeEdge
	for v, u := range next {
		if !edgeUsed(tree, v, u) {
			crossed, sum := crossedRegions(g, v, u, rs)
			tree = append(tree, treeEdge{u: v, v: u, crossed: crossed, surchSum: sum})
		}
	}
	return tree, len(tree) == len(members)-1
}

func edgeUsed(tree []treeEdge, u, v int) bool {
	for _, e := range tree {
		if (e.u == u && e.v == v) || (e.u == v && e.v == u) {
			return true
		}
	}
	return false
}
