package update

import (
	"github.com/mggg/gerrychain-go/assignment"
	"github.com/mggg/gerrychain-go/graph"
	"github.com/mggg/gerrychain-go/partition"
)

// BoundaryNodes reports, per part, the set of nodes flagged boundary at
// graph-construction time (the reserved "boundary_node" node attribute).
type BoundaryNodes struct{}

func (BoundaryNodes) Name() string { return "boundary_nodes" }

func (BoundaryNodes) Recompute(p *partition.Partition) (interface{}, error) {
	g := p.Graph()
	out := make(map[int]graph.IntSet)
	for _, part := range p.Assignment().Parts() {
		set := graph.IntSet{}
		for _, v := range p.Assignment().Members(part).Sorted() {
			isBoundary, err := g.IsBoundary(v)
			if err != nil {
				return nil, err
			}
			if isBoundary {
				set.Add(v)
			}
		}
		out[part] = set
	}
	return out, nil
}

// ExteriorBoundaries sums the "boundary_perim" node attribute over each
// part's boundary nodes: the length of a part's border with the outside
// of the whole graph (spec's geographic updater family).
type ExteriorBoundaries struct{}

func (ExteriorBoundaries) Name() string { return "exterior_boundaries" }

func (ExteriorBoundaries) Recompute(p *partition.Partition) (interface{}, error) {
	g := p.Graph()
	out := make(map[int]float64)
	for _, part := range p.Assignment().Parts() {
		var sum float64
		for _, v := range p.Assignment().Members(part).Sorted() {
			isBoundary, err := g.IsBoundary(v)
			if err != nil {
				return nil, err
			}
			if !isBoundary {
				continue
			}
			val, err := g.NodeAttr(v, "boundary_perim")
			if err != nil {
				return nil, err
			}
			f, err := val.AsFloat()
			if err != nil {
				return nil, err
			}
			sum += f
		}
		out[part] = sum
	}
	return out, nil
}

// InteriorBoundaries sums the "shared_perim" edge attribute over each
// part's cut edges: the length of border a part shares with its
// neighbors inside the graph.
type InteriorBoundaries struct{}

func (InteriorBoundaries) Name() string { return "interior_boundaries" }

func (InteriorBoundaries) Recompute(p *partition.Partition) (interface{}, error) {
	g := p.Graph()
	out := make(map[int]float64)
	for _, part := range p.Assignment().Parts() {
		out[part] = 0
	}
	for _, e := range p.CutEdges() {
		val, err := g.EdgeAttr(e.U, e.V, "shared_perim")
		if err != nil {
			return nil, err
		}
		f, err := val.AsFloat()
		if err != nil {
			return nil, err
		}
		out[p.Assignment().PartOf(e.U)] += f
		out[p.Assignment().PartOf(e.V)] += f
	}
	return out, nil
}

// Perimeter is each part's total perimeter: its exterior boundary plus
// its interior (cut-edge) boundary.
type Perimeter struct{}

func (Perimeter) Name() string { return "perimeter" }

func (Perimeter) Recompute(p *partition.Partition) (interface{}, error) {
	extVal, err := p.Value("exterior_boundaries")
	if err == partition.ErrUnknownUpdater {
		extVal, err = ExteriorBoundaries{}.Recompute(p)
	}
	if err != nil {
		return nil, err
	}
	intVal, err := p.Value("interior_boundaries")
	if err == partition.ErrUnknownUpdater {
		intVal, err = InteriorBoundaries{}.Recompute(p)
	}
	if err != nil {
		return nil, err
	}
	ext := extVal.(map[int]float64)
	in := intVal.(map[int]float64)
	out := make(map[int]float64, len(ext))
	for part, v := range ext {
		out[part] = v + in[part]
	}
	return out, nil
}

// Area sums the "area" node attribute per part.
type Area struct{}

func (Area) Name() string { return "area" }

func (Area) Recompute(p *partition.Partition) (interface{}, error) {
	return Tally{Attr: "area"}.Recompute(p)
}

// NewGeographicPartition builds a Partition pre-seeded with the
// geographic updater family (area, perimeter, exterior/interior
// boundaries, boundary nodes) — a thin constructor wrapper, not a
// distinct type, since Go composition doesn't need subclassing here.
func NewGeographicPartition(g *graph.Graph, a *assignment.Assignment, extra ...partition.Updater) (*partition.Partition, error) {
	updaters := append([]partition.Updater{
		Area{}, Perimeter{}, ExteriorBoundaries{}, InteriorBoundaries{}, BoundaryNodes{},
	}, extra...)
	return partition.New(g, a, partition.NewRegistry(updaters...))
}
