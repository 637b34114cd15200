package update

import (
	"github.com/mggg/gerrychain-go/assignment"
	"github.com/mggg/gerrychain-go/partition"
)

// Flows reports, per part, the net node-count change versus this
// partition's parent (positive: part gained nodes this step; negative:
// part lost nodes). The initial partition of a chain has no parent, so
// its Flows value is empty.
type Flows struct{}

func (Flows) Name() string { return "flows" }

func (Flows) Recompute(p *partition.Partition) (interface{}, error) {
	out := make(map[int]int)
	if p.Parent() == nil {
		return out, nil
	}
	for v, newPart := range p.LastFlip() {
		oldPart := p.Parent().Assignment().PartOf(v)
		if oldPart == newPart {
			continue
		}
		out[oldPart]--
		out[newPart]++
	}
	return out, nil
}

func (Flows) UpdateFromParent(parentValue interface{}, p *partition.Partition, flip assignment.Flip) (interface{}, error) {
	return Flows{}.Recompute(p)
}
