package update

import (
	"sort"

	"github.com/mggg/gerrychain-go/assignment"
	"github.com/mggg/gerrychain-go/graph"
	"github.com/mggg/gerrychain-go/partition"
)

// CutEdges is the set of graph edges whose endpoints lie in different
// parts. The diff path only re-examines edges touching a flipped node,
// rather than rescanning every edge in the graph.
type CutEdges struct{}

func (CutEdges) Name() string { return "cut_edges" }

func (CutEdges) Recompute(p *partition.Partition) (interface{}, error) {
	return p.CutEdges(), nil
}

func (CutEdges) UpdateFromParent(parentValue interface{}, p *partition.Partition, flip assignment.Flip) (interface{}, error) {
	parent := parentValue.([]graph.EdgeRef)
	g := p.Graph()
	assign := p.Assignment()

	kept := make(map[graph.EdgeRef]bool, len(parent))
	for _, e := range parent {
		kept[e] = true
	}

	touched := graph.IntSet{}
	for v := range flip {
		touched.Add(v)
	}
	for _, v := range touched.Sorted() {
		neighbors, err := g.Neighbors(v)
		if err != nil {
			return nil, err
		}
		for _, n := range neighbors {
			u, w := v, n
			if u > w {
				u, w = w, u
			}
			e := graph.EdgeRef{U: u, V: w}
			if assign.PartOf(u) != assign.PartOf(w) {
				kept[e] = true
			} else {
				delete(kept, e)
			}
		}
	}

	out := make([]graph.EdgeRef, 0, len(kept))
	for e := range kept {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})
	return out, nil
}
