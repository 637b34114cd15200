package spanningtree

import (
	"math/rand"
	"sort"

	"github.com/mggg/gerrychain-go/graph"
)

// weightedEdge is one candidate edge for the Kruskal draw: a uniform base
// weight plus the region surcharge sum, matching spec 4.5 step 1.
type weightedEdge struct {
	graph.EdgeRef
	weight   float64
	crossed  []string
	surchSum float64
}

// drawSpanningTree runs weighted Kruskal over sub's induced edges using
// rng for the base weights, following graph/prim_kruskal.go's Kruskal
// (sort candidate edges ascending, union-find by rank, take an edge iff
// its endpoints are in different components) generalized from a fixed
// Edge.Weight field to a per-draw random-plus-surcharge weight.
func drawSpanningTree(sub *graph.Subgraph, rng *rand.Rand, rs RegionSurcharge) ([]treeEdge, bool) {
	g := sub.Graph()
	edges := sub.Edges()
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}
		return edges[i].V < edges[j].V
	})

	candidates := make([]weightedEdge, len(edges))
	for i, e := range edges {
		crossed, sum := crossedRegions(g, e.U, e.V, rs)
		candidates[i] = weightedEdge{
			EdgeRef:  e,
			weight:   rng.Float64() + sum,
			crossed:  crossed,
			surchSum: sum,
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].weight < candidates[j].weight
	})

	parent := make(map[int]int, sub.Members().Len())
	rank := make(map[int]int, sub.Members().Len())
	for _, v := range sub.Members().Sorted() {
		parent[v] = v
	}
	var find func(int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}
	union := func(x, y int) {
		rx, ry := find(x), find(y)
		if rx == ry {
			return
		}
		if rank[rx] < rank[ry] {
			parent[rx] = ry
		} else {
			parent[ry] = rx
			if rank[rx] == rank[ry] {
				rank[rx]++
			}
		}
	}

	n := sub.Members().Len()
	tree := make([]treeEdge, 0, n-1)
	for _, e := range candidates {
		if find(e.U) != find(e.V) {
			union(e.U, e.V)
			tree = append(tree, treeEdge{u: e.U, v: e.V, crossed: e.crossed, surchSum: e.surchSum})
		}
	}
	return tree, len(tree) == n-1
}
