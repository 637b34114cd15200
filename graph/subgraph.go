package graph

// Subgraph is a lightweight view of a Graph restricted to a node subset:
// it does not copy attribute columns, only filters adjacency and edges on
// read. Used by spanningtree.BipartitionTree to work over the merged
// members of two districts without materializing a second Graph.
type Subgraph struct {
	g       *Graph
	members IntSet
}

// Subgraph returns a view of g restricted to members. members is not
// retained by reference; the view takes its own copy.
func (g *Graph) Subgraph(members IntSet) *Subgraph {
	return &Subgraph{g: g, members: members.Clone()}
}

// Graph returns the parent Graph this view was built from.
func (s *Subgraph) Graph() *Graph { return s.g }

// Members returns the node ids in this view.
func (s *Subgraph) Members() IntSet { return s.members.Clone() }

// Has reports whether v belongs to this view, without the Members clone.
func (s *Subgraph) Has(v int) bool { return s.members.Has(v) }

// Neighbors returns v's neighbors that are also in the view, sorted.
func (s *Subgraph) Neighbors(v int) []int {
	nbrs, err := s.g.Neighbors(v)
	if err != nil {
		return nil
	}
	out := nbrs[:0:0]
	for _, n := range nbrs {
		if s.members.Has(n) {
			out = append(out, n)
		}
	}
	return out
}

// Edges returns every edge of the parent Graph whose endpoints are both
// in the view (the induced edge set), in the parent's canonical order.
func (s *Subgraph) Edges() []EdgeRef {
	out := make([]EdgeRef, 0)
	for _, e := range s.g.edges {
		if s.members.Has(e.U) && s.members.Has(e.V) {
			out = append(out, e)
		}
	}
	return out
}
