package proposal

import (
	"math/rand"

	"github.com/mggg/gerrychain-go/assignment"
	"github.com/mggg/gerrychain-go/partition"
)

// ProposeRandomFlip picks a uniformly random cut edge and reassigns one
// of its (uniformly random) endpoints to the other endpoint's part —
// the single-boundary-flip proposal of spec 4.6.
func ProposeRandomFlip(p *partition.Partition, rng *rand.Rand) (assignment.Flip, error) {
	cuts := p.CutEdges()
	if len(cuts) == 0 {
		return nil, ErrNoBoundaryNodes
	}
	e := cuts[rng.Intn(len(cuts))]

	u, v := e.U, e.V
	if rng.Intn(2) == 1 {
		u, v = v, u
	}
	return assignment.Flip{u: p.Assignment().PartOf(v)}, nil
}
