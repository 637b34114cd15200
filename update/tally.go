package update

import (
	"github.com/mggg/gerrychain-go/assignment"
	"github.com/mggg/gerrychain-go/partition"
)

// Tally sums a numeric node attribute per part. Alias, if set, is the
// name this updater registers under (so a chain can carry several
// tallies of different attributes at once); it defaults to Attr.
type Tally struct {
	Attr  string
	Alias string
}

func (t Tally) Name() string {
	if t.Alias != "" {
		return t.Alias
	}
	return t.Attr
}

func (t Tally) Recompute(p *partition.Partition) (interface{}, error) {
	g := p.Graph()
	totals := make(map[int]float64)
	for _, part := range p.Assignment().Parts() {
		var sum float64
		for _, v := range p.Assignment().Members(part).Sorted() {
			val, err := g.NodeAttr(v, t.Attr)
			if err != nil {
				return nil, err
			}
			f, err := val.AsFloat()
			if err != nil {
				return nil, err
			}
			sum += f
		}
		totals[part] = sum
	}
	return totals, nil
}

func (t Tally) UpdateFromParent(parentValue interface{}, p *partition.Partition, flip assignment.Flip) (interface{}, error) {
	parent := parentValue.(map[int]float64)
	next := make(map[int]float64, len(parent))
	for k, v := range parent {
		next[k] = v
	}

	g := p.Graph()
	parentAssign := p.Parent().Assignment()
	for v, newPart := range flip {
		oldPart := parentAssign.PartOf(v)
		if oldPart == newPart {
			continue
		}
		val, err := g.NodeAttr(v, t.Attr)
		if err != nil {
			return nil, err
		}
		f, err := val.AsFloat()
		if err != nil {
			return nil, err
		}
		next[oldPart] -= f
		next[newPart] += f
	}
	return next, nil
}
