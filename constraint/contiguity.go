package constraint

import (
	"errors"
	"fmt"

	"github.com/mggg/gerrychain-go/algorithms"
	"github.com/mggg/gerrychain-go/partition"
)

// Contiguous requires every part's induced subgraph to be a single
// connected component, checked from scratch via graph.ConnectedComponents
// (mirroring algorithms.BFS's walker shape, one flood-fill per part).
func Contiguous() Predicate {
	return func(p *partition.Partition) (Outcome, string) {
		g := p.Graph()
		for _, part := range p.Assignment().Parts() {
			members := p.Assignment().Members(part)
			comps := g.ConnectedComponents(g.Subgraph(members))
			if len(comps) > 1 {
				return Fail, fmt.Sprintf("part %d is split into %d connected components", part, len(comps))
			}
		}
		return Pass, ""
	}
}

// SingleFlipContiguous implements the cheap local check of spec 4.4: when
// exactly one node v moved from p_old to p_new, p_old stays contiguous
// iff v's neighbors still in p_old form a single connected component
// among themselves relative to p_old (equivalently, removing v doesn't
// disconnect p_old), checked via one DFS from one of those neighbors
// through the rest of p_old that stops as soon as all of them are
// reached, rather than a whole-part flood fill; p_new is always
// contiguous after gaining a node adjacent to it. Falls back to
// Indeterminate whenever the last flip didn't touch exactly one node, so
// a following Contiguous() in the same Validator performs the full
// check.
func SingleFlipContiguous() Predicate {
	return func(p *partition.Partition) (Outcome, string) {
		flip := p.LastFlip()
		if len(flip) != 1 {
			return Indeterminate, ""
		}
		var v, newPart int
		for node, part := range flip {
			v, newPart = node, part
		}
		parent := p.Parent()
		if parent == nil {
			return Indeterminate, ""
		}
		oldPart := parent.Assignment().PartOf(v)
		if oldPart == newPart {
			return Pass, ""
		}

		g := p.Graph()
		remaining := parent.Assignment().Members(oldPart)
		remaining.Remove(v)
		if remaining.Len() == 0 {
			return Pass, "" // part fully vacated; nothing left to be discontiguous
		}

		neighbors, err := g.Neighbors(v)
		if err != nil {
			return Indeterminate, ""
		}
		var seeds []int
		for _, n := range neighbors {
			if remaining.Has(n) {
				seeds = append(seeds, n)
			}
		}
		if len(seeds) == 0 {
			return Fail, fmt.Sprintf("removing node %d from part %d leaves it with no remaining neighbor", v, oldPart)
		}

		pending := make(map[int]bool, len(seeds))
		for _, n := range seeds {
			pending[n] = true
		}
		errReached := errors.New("every old-part neighbor reached")
		sub := g.Subgraph(remaining)
		_, err = algorithms.DFS(sub, seeds[0], &algorithms.DFSOptions{OnVisit: func(u, _ int) error {
			if delete(pending, u); len(pending) == 0 {
				return errReached
			}
			return nil
		}})
		if err != nil && !errors.Is(err, errReached) {
			return Indeterminate, ""
		}
		if len(pending) > 0 {
			return Fail, fmt.Sprintf("part %d became discontiguous after flipping node %d", oldPart, v)
		}
		return Pass, ""
	}
}

// NoMoreDiscontiguous allows a chain seeded from an already-discontiguous
// initial partition to proceed, as long as no step increases the number
// of discontiguous parts beyond the initial count (spec's allowance for
// imperfect real-world starting data).
func NoMoreDiscontiguous(initial *partition.Partition) Predicate {
	baseline := countDiscontiguousParts(initial)
	return func(p *partition.Partition) (Outcome, string) {
		if n := countDiscontiguousParts(p); n > baseline {
			return Fail, fmt.Sprintf("%d parts are discontiguous, more than the initial %d", n, baseline)
		}
		return Pass, ""
	}
}

func countDiscontiguousParts(p *partition.Partition) int {
	g := p.Graph()
	n := 0
	for _, part := range p.Assignment().Parts() {
		comps := g.ConnectedComponents(g.Subgraph(p.Assignment().Members(part)))
		if len(comps) > 1 {
			n++
		}
	}
	return n
}
