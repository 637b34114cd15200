package assignment

import (
	"sort"

	"github.com/mggg/gerrychain-go/graph"
)

// Flip is a finite partial reassignment: node id -> new part id. Applying
// a Flip mutates or rebuilds an Assignment in O(|Flip|). spanningtree and
// proposal build these as plain map[int]int and convert to Flip at the
// package boundary (identical underlying type), which keeps spanningtree
// free of an import-cycle back onto this package.
type Flip map[int]int

// Assignment is the bidirectional node<->part map described in spec 4.2.
// partOf and members are kept in lockstep by every mutating method;
// direct field mutation from outside the package is impossible, which is
// what makes that invariant checkable in one place.
type Assignment struct {
	partOf      []int // partOf[v] = part id, indexed by graph-internal node id
	members     map[int]graph.IntSet
	sortedParts []int
}

// PartOf returns the part id owning node v.
func (a *Assignment) PartOf(v int) int { return a.partOf[v] }

// Members returns the (cloned) member set of part p. Returns an empty set
// for an id that never existed — callers check Parts() if they need to
// distinguish "empty" from "not a part."
func (a *Assignment) Members(p int) graph.IntSet {
	if s, ok := a.members[p]; ok {
		return s.Clone()
	}
	return graph.IntSet{}
}

// Parts returns every part id, ascending — the deterministic iteration
// order spec 4.2 requires.
func (a *Assignment) Parts() []int {
	out := make([]int, len(a.sortedParts))
	copy(out, a.sortedParts)
	return out
}

// NumNodes returns |V| as tracked by this assignment.
func (a *Assignment) NumNodes() int { return len(a.partOf) }

func (a *Assignment) recomputeSortedParts() {
	parts := make([]int, 0, len(a.members))
	for p := range a.members {
		parts = append(parts, p)
	}
	sort.Ints(parts)
	a.sortedParts = parts
}

// OfMapping builds an Assignment from an explicit node->part map. Every
// node the graph defines must appear exactly once.
func OfMapping(g *graph.Graph, m map[int]int) (*Assignment, error) {
	n := g.N()
	a := &Assignment{
		partOf:  make([]int, n),
		members: make(map[int]graph.IntSet),
	}
	for v := 0; v < n; v++ {
		p, ok := m[v]
		if !ok {
			return nil, ErrUnassignedNode
		}
		a.partOf[v] = p
		if a.members[p] == nil {
			a.members[p] = graph.IntSet{}
		}
		a.members[p].Add(v)
	}
	a.recomputeSortedParts()
	return a, nil
}
