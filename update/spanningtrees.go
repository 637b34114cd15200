package update

import (
	"math/rand"

	"github.com/mggg/gerrychain-go/graph"
	"github.com/mggg/gerrychain-go/partition"
	"github.com/mggg/gerrychain-go/spanningtree"
)

// SpanningTrees draws one spanning tree per part, cached per partition
// and only computed on access (spec: "rarely used in the hot path").
// Seed fixes the draw's RNG stream so the same partition always reports
// the same tree across repeated Value() calls and across a replayed
// chain run; it defaults to 0 when the zero value is used.
type SpanningTrees struct {
	Seed int64
}

func (SpanningTrees) Name() string { return "spanning_trees" }

func (s SpanningTrees) Recompute(p *partition.Partition) (interface{}, error) {
	g := p.Graph()
	rng := rand.New(rand.NewSource(s.Seed))
	out := make(map[int][]graph.EdgeRef)
	for _, part := range p.Assignment().Parts() {
		members := p.Assignment().Members(part)
		if members.Len() < 2 {
			out[part] = nil
			continue
		}
		tree, err := spanningtree.Draw(g, members, rng)
		if err != nil {
			return nil, err
		}
		out[part] = tree
	}
	return out, nil
}
