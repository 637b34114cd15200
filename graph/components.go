// Connected-component discovery over a Subgraph view. Each component is
// found by one algorithms.BFS flood fill seeded from the smallest
// unvisited member, the same visited-set/queue shape lvlath's gridgraph
// package used for 2D flood fill, generalized to arbitrary adjacency and
// factored out into algorithms so both Graph.ConnectedComponents (spec
// 4.1) and the constraint package's contiguity check share one walker.
package graph

import "github.com/mggg/gerrychain-go/algorithms"

// ConnectedComponents returns the connected components of sub, each
// component a sorted slice of node ids, components themselves ordered by
// their smallest member ascending — the deterministic order spec 4.1
// requires.
func (g *Graph) ConnectedComponents(sub *Subgraph) [][]int {
	visited := make(map[int]bool, sub.members.Len())
	var components [][]int

	for _, start := range sub.members.Sorted() {
		if visited[start] {
			continue
		}
		res, _ := algorithms.BFS(sub, start, nil)
		comp := make(IntSet, len(res.Order))
		for _, v := range res.Order {
			visited[v] = true
			comp.Add(v)
		}
		components = append(components, comp.Sorted())
	}
	return components
}
