package proposal

import (
	"math/rand"
	"sort"

	"github.com/mggg/gerrychain-go/assignment"
	"github.com/mggg/gerrychain-go/graph"
	"github.com/mggg/gerrychain-go/partition"
	"github.com/mggg/gerrychain-go/spanningtree"
)

// ReComOptions configures the ReCom (recombination) proposal of spec
// 4.6.
type ReComOptions struct {
	PopCol    string
	PopTarget float64
	Epsilon   float64

	// NodeRepeats scales how many spanning-tree redraws are tried before
	// giving up on a chosen adjacent pair: when MaxAttempts is positive,
	// effective attempts are MaxAttempts * max(NodeRepeats, 1); when
	// MaxAttempts is zero, spanningtree's default applies unscaled and
	// NodeRepeats has no effect. Every redraw here already
	// re-roots independently (there is no separate "same tree, new root"
	// retry the way the original implementation's node_repeats models).
	NodeRepeats int
	// MaxAttempts bounds spanning-tree redraws per chosen pair before
	// giving up (or reselecting, if AllowReselection). Zero uses
	// spanningtree's own default.
	MaxAttempts int

	RegionSurcharge  spanningtree.RegionSurcharge
	AllowReselection bool
	Uniform          bool
	OnWarning        func(spanningtree.Warning)
}

type partPair struct{ a, b int }

func canonicalPair(a, b int) partPair {
	if a > b {
		a, b = b, a
	}
	return partPair{a, b}
}

// ReCom returns a proposal closure capturing opts — following the
// teacher's "options struct + dispatch function" shape (dijkstra.Dijkstra(g, opts)).
func ReCom(opts ReComOptions) func(p *partition.Partition, rng *rand.Rand) (assignment.Flip, error) {
	return func(p *partition.Partition, rng *rand.Rand) (assignment.Flip, error) {
		pairs := adjacentPartPairs(p)
		if len(pairs) == 0 {
			return nil, ErrNoAdjacentParts
		}

		tried := map[partPair]bool{}
		for len(tried) < len(pairs) {
			pair := pairs[rng.Intn(len(pairs))]
			if tried[pair] {
				continue
			}
			tried[pair] = true

			flip, err := recombinePair(p, pair, opts, rng)
			if err == nil {
				return flip, nil
			}
			if err != spanningtree.ErrReselectPair && err != spanningtree.ErrBipartitionFailure {
				return nil, err
			}
			if !opts.AllowReselection {
				return nil, err
			}
		}
		return nil, spanningtree.ErrBipartitionFailure
	}
}

// adjacentPartPairs returns every distinct pair of parts joined by at
// least one cut edge, sorted for deterministic iteration.
func adjacentPartPairs(p *partition.Partition) []partPair {
	seen := map[partPair]bool{}
	var out []partPair
	for _, e := range p.CutEdges() {
		pair := canonicalPair(p.Assignment().PartOf(e.U), p.Assignment().PartOf(e.V))
		if !seen[pair] {
			seen[pair] = true
			out = append(out, pair)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].a != out[j].a {
			return out[i].a < out[j].a
		}
		return out[i].b < out[j].b
	})
	return out
}

func recombinePair(p *partition.Partition, pair partPair, opts ReComOptions, rng *rand.Rand) (assignment.Flip, error) {
	merged := graph.Union(p.Assignment().Members(pair.a), p.Assignment().Members(pair.b))
	sub := p.Graph().Subgraph(merged)

	maxAttempts := opts.MaxAttempts
	repeats := opts.NodeRepeats
	if repeats < 1 {
		repeats = 1
	}
	if maxAttempts > 0 {
		maxAttempts *= repeats
	}

	sides, _, err := spanningtree.BipartitionTree(sub, opts.PopCol, opts.PopTarget, rng, spanningtree.BipartitionOptions{
		Epsilon:          opts.Epsilon,
		RegionSurcharge:  opts.RegionSurcharge,
		MaxAttempts:      maxAttempts,
		AllowReselection: opts.AllowReselection,
		Uniform:          opts.Uniform,
		OnWarning:        opts.OnWarning,
	})
	if err != nil {
		return nil, err
	}

	return minimalFlip(p.Assignment(), sides, pair.a, pair.b), nil
}

// minimalFlip converts a {0,1}-side labeling into an assignment.Flip,
// choosing whichever of the two (side -> part) label assignments changes
// fewer nodes relative to the current assignment (spec 4.6 step 5: "the
// smaller of the two resulting diffs").
func minimalFlip(a *assignment.Assignment, sides map[int]int, partA, partB int) assignment.Flip {
	var costDirect, costSwapped int
	for v, side := range sides {
		current := a.PartOf(v)
		wantDirect := partA
		if side == 1 {
			wantDirect = partB
		}
		wantSwapped := partB
		if side == 1 {
			wantSwapped = partA
		}
		if current != wantDirect {
			costDirect++
		}
		if current != wantSwapped {
			costSwapped++
		}
	}

	flip := assignment.Flip{}
	if costDirect <= costSwapped {
		for v, side := range sides {
			want := partA
			if side == 1 {
				want = partB
			}
			if a.PartOf(v) != want {
				flip[v] = want
			}
		}
		return flip
	}
	for v, side := range sides {
		want := partB
		if side == 1 {
			want = partA
		}
		if a.PartOf(v) != want {
			flip[v] = want
		}
	}
	return flip
}
