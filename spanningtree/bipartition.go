package spanningtree

import (
	"math"
	"math/rand"
	"sort"

	"github.com/mggg/gerrychain-go/graph"
)

// BipartitionTree implements spec 4.5's bipartition_tree: draw a spanning
// tree over sub, root it at a random node, and cut one tree edge so both
// resulting sides fall within epsilon of target population. Returns a
// plain map[int]int naming which side ("new part") each node not already
// matching its side's canonical assignment should move to is left to the
// caller (proposal.ReCom) — BipartitionTree itself only reports, for every
// node, which of the two sides {0, 1} it landed on, via the returned
// sides map (0 = same side as the cut subtree, 1 = the complement).
func BipartitionTree(sub *graph.Subgraph, popCol string, target float64, rng *rand.Rand, opts BipartitionOptions) (sides map[int]int, warnings []Warning, err error) {
	members := sub.Members()
	if members.Len() < 2 {
		return nil, nil, ErrEmptySubgraph
	}
	g := sub.Graph()
	pop := make(map[int]float64, members.Len())
	for _, v := range members.Sorted() {
		val, attrErr := g.NodeAttr(v, popCol)
		if attrErr != nil {
			return nil, nil, ErrMissingPopulation
		}
		f, convErr := val.AsFloat()
		if convErr != nil {
			return nil, nil, ErrMissingPopulation
		}
		pop[v] = f
	}

	lo := math.Ceil(target * (1 - opts.Epsilon))
	hi := math.Floor(target * (1 + opts.Epsilon))

	maxAttempts := opts.maxAttempts()
	var collected []Warning
	for attempt := 0; attempt < maxAttempts; attempt++ {
		attemptRNG := deriveRNG(rng, uint64(attempt))

		var tree []treeEdge
		var ok bool
		if opts.Uniform {
			tree, ok = drawUniformSpanningTree(sub, attemptRNG, opts.RegionSurcharge)
		} else {
			tree, ok = drawSpanningTree(sub, attemptRNG, opts.RegionSurcharge)
		}
		if !ok {
			opts.warn(attempt, "subgraph disconnected or spanning tree draw failed")
			if attempt == 0 {
				return nil, collected, ErrDisconnectedSubgraph
			}
			continue
		}

		rootedChildren, parentOf := rootTree(tree, members.Sorted(), attemptRNG)
		subtreePop := subtreePopulations(rootedChildren, members.Sorted(), pop)

		cut, found := chooseCut(g, rootedChildren, parentOf, subtreePop, lo, hi, opts.RegionSurcharge, attemptRNG)
		if !found {
			w := Warning{Attempt: attempt, Message: "no balanced cut in this draw"}
			collected = append(collected, w)
			opts.warn(attempt, w.Message)
			continue
		}

		return sidesFromCut(rootedChildren, cut, members.Sorted()), collected, nil
	}

	if opts.AllowReselection {
		return nil, collected, ErrReselectPair
	}
	return nil, collected, ErrBipartitionFailure
}

// rootTree picks a uniformly random root and returns each node's children
// in the rooted tree plus a parent map, via one BFS pass over the
// adjacency the tree edges define.
func rootTree(tree []treeEdge, members []int, rng *rand.Rand) (children map[int][]int, parent map[int]int) {
	adj := make(map[int][]int, len(members))
	for _, e := range tree {
		adj[e.u] = append(adj[e.u], e.v)
		adj[e.v] = append(adj[e.v], e.u)
	}
	root := members[rng.Intn(len(members))]

	children = make(map[int][]int, len(members))
	parent = make(map[int]int, len(members))
	visited := make(map[int]bool, len(members))
	queue := []int{root}
	visited[root] = true
	parent[root] = -1
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		nbrs := append([]int(nil), adj[u]...)
		sort.Ints(nbrs)
		for _, v := range nbrs {
			if !visited[v] {
				visited[v] = true
				parent[v] = u
				children[u] = append(children[u], v)
				queue = append(queue, v)
			}
		}
	}
	return children, parent
}

// subtreePopulations computes p(S(u)) for every node via one post-order
// traversal (spec 4.5 step 2).
func subtreePopulations(children map[int][]int, postOrder []int, pop map[int]float64) map[int]float64 {
	// postOrder here is just the member list; compute an actual
	// post-order by DFS from whichever node has parent==-1 implicitly via
	// children map (root is whoever never appears as a value... simpler:
	// recursive accumulation memoized with a visited guard).
	result := make(map[int]float64, len(postOrder))
	var visit func(u int) float64
	visited := make(map[int]bool, len(postOrder))
	visit = func(u int) float64 {
		if visited[u] {
			return result[u]
		}
		visited[u] = true
		total := pop[u]
		for _, c := range children[u] {
			total += visit(c)
		}
		result[u] = total
		return total
	}
	for _, v := range postOrder {
		visit(v)
	}
	return result
}

// cutCandidate is one non-root node u whose edge to parent(u) is a
// candidate cut; cutting it yields subtree S(u) on one side.
type cutCandidate struct {
	node     int
	crossed  []string
	surchSum float64
}

// classKey returns the two primary tie-break keys for a candidate's
// region-crossing class: cardinality (descending) and surcharge sum
// (descending). Candidates are grouped by identical (cardinality, sum,
// sorted region-name subset) per spec 4.5 step 4.
func classKey(c cutCandidate) (int, float64) {
	return len(c.crossed), c.surchSum
}

func subsetLess(a, b []string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// chooseCut implements spec 4.5 step 3 (enumerate balanced cuts) and step
// 4 (cut_choice): among balanced candidates, prefer the edge class with
// the most crossed regions, then the highest surcharge sum, then the
// lexicographically earliest region-name subset; uniform random within
// the winning class. When rs is empty this degrades to uniform random
// choice among all balanced candidates, per spec.
func chooseCut(g *graph.Graph, children map[int][]int, parent map[int]int, subtreePop map[int]float64, lo, hi float64, rs RegionSurcharge, rng *rand.Rand) (int, bool) {
	var balanced []cutCandidate
	for node, p := range parent {
		if p == -1 {
			continue // root has no parent edge to cut
		}
		sp := subtreePop[node]
		if sp >= lo && sp <= hi {
			crossed, sum := crossedRegions(g, node, p, rs)
			balanced = append(balanced, cutCandidate{node: node, crossed: crossed, surchSum: sum})
		}
	}
	if len(balanced) == 0 {
		return 0, false
	}
	sort.Slice(balanced, func(i, j int) bool { return balanced[i].node < balanced[j].node })
	if len(rs) == 0 {
		return balanced[rng.Intn(len(balanced))].node, true
	}

	best := balanced[0]
	for _, c := range balanced[1:] {
		bc, bs := classKey(best)
		cc, cs := classKey(c)
		switch {
		case cc != bc:
			if cc > bc {
				best = c
			}
		case cs != bs:
			if cs > bs {
				best = c
			}
		default:
			if subsetLess(c.crossed, best.crossed) {
				best = c
			}
		}
	}

	var winners []int
	bc, bs := classKey(best)
	for _, c := range balanced {
		cc, cs := classKey(c)
		if cc == bc && cs == bs && subsetEqual(c.crossed, best.crossed) {
			winners = append(winners, c.node)
		}
	}
	return winners[rng.Intn(len(winners))], true
}

func subsetEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
