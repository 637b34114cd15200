package graph

import "sort"

// FromAdjacency builds a frozen Graph from an explicit node list, edge
// list, and attribute columns.
//
// nodeIDs assigns internal id i to nodeIDs[i]; edges reference nodes by
// that internal index. nodeAttrs/edgeAttrs map attribute name to a Column
// of length len(nodeIDs) / len(edges) respectively — callers build these
// in the same order as nodeIDs/edges.
//
// Fails with ErrInvalidGraph if an edge references an index outside
// [0, len(nodeIDs)) or if the same unordered pair appears twice.
//
// Complexity: O(V + E log E) — the E log E term sorts each node's
// neighbor list once edges are known.
func FromAdjacency(nodeIDs []string, edges []EdgeSpec, nodeAttrs, edgeAttrs map[string]Column) (*Graph, error) {
	n := len(nodeIDs)
	g := &Graph{
		ids:       append([]string(nil), nodeIDs...),
		idIndex:   make(map[string]int, n),
		adj:       make([][]int, n),
		degree:    make([]int, n),
		edgeIndex: make(map[edgeKey]int, len(edges)),
		nodeAttrs: make(map[string]Column, len(nodeAttrs)),
		edgeAttrs: make(map[string]Column, len(edgeAttrs)),
	}
	for i, id := range nodeIDs {
		g.idIndex[id] = i
	}

	seen := make(map[edgeKey]struct{}, len(edges))
	g.edges = make([]EdgeRef, 0, len(edges))
	for _, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, ErrInvalidGraph
		}
		if e.From == e.To {
			return nil, ErrInvalidGraph
		}
		key := canonicalEdge(e.From, e.To)
		if _, dup := seen[key]; dup {
			return nil, ErrInvalidGraph
		}
		seen[key] = struct{}{}
		g.edgeIndex[key] = len(g.edges)
		g.edges = append(g.edges, EdgeRef{U: key.u, V: key.v})
		g.adj[e.From] = append(g.adj[e.From], e.To)
		g.adj[e.To] = append(g.adj[e.To], e.From)
	}
	for v := range g.adj {
		sort.Ints(g.adj[v])
		g.degree[v] = len(g.adj[v])
	}

	for name, col := range nodeAttrs {
		if len(col) != n {
			return nil, ErrInvalidGraph
		}
		cp := make(Column, n)
		copy(cp, col)
		g.nodeAttrs[name] = cp
	}
	for name, col := range edgeAttrs {
		if len(col) != len(g.edges) {
			return nil, ErrInvalidGraph
		}
		cp := make(Column, len(g.edges))
		copy(cp, col)
		g.edgeAttrs[name] = cp
	}

	if col, ok := g.nodeAttrs["boundary_node"]; ok {
		g.hasBoundary = true
		g.boundary = make([]bool, n)
		for i, v := range col {
			b, err := v.AsBool()
			if err != nil {
				return nil, ErrInvalidGraph
			}
			g.boundary[i] = b
		}
	}

	return g, nil
}

// Neighbors returns the sorted list of v's neighbors. The returned slice
// is a copy; callers may mutate it freely.
func (g *Graph) Neighbors(v int) ([]int, error) {
	if v < 0 || v >= len(g.ids) {
		return nil, ErrUnknownNode
	}
	out := make([]int, len(g.adj[v]))
	copy(out, g.adj[v])
	return out, nil
}

// HasEdge reports whether u and v are adjacent.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.edgeIndex[canonicalEdge(u, v)]
	return ok
}

// NodeAttr looks up a typed node attribute by name.
func (g *Graph) NodeAttr(v int, name string) (Value, error) {
	if v < 0 || v >= len(g.ids) {
		return Value{}, ErrUnknownNode
	}
	col, ok := g.nodeAttrs[name]
	if !ok {
		return Value{}, ErrMissingAttribute
	}
	return col[v], nil
}

// EdgeAttr looks up a typed edge attribute by name, for the edge between
// u and v (order-independent).
func (g *Graph) EdgeAttr(u, v int, name string) (Value, error) {
	idx, ok := g.edgeIndex[canonicalEdge(u, v)]
	if !ok {
		return Value{}, ErrEdgeNotFound
	}
	col, ok := g.edgeAttrs[name]
	if !ok {
		return Value{}, ErrMissingAttribute
	}
	return col[idx], nil
}

// HasNodeAttr reports whether a node attribute column exists.
func (g *Graph) HasNodeAttr(name string) bool {
	_, ok := g.nodeAttrs[name]
	return ok
}

// HasEdgeAttr reports whether an edge attribute column exists.
func (g *Graph) HasEdgeAttr(name string) bool {
	_, ok := g.edgeAttrs[name]
	return ok
}

// NodeAttrNames returns every registered node attribute column name, in
// no particular order. Callers that need a stable order (serialization)
// must sort the result themselves.
func (g *Graph) NodeAttrNames() []string {
	names := make([]string, 0, len(g.nodeAttrs))
	for name := range g.nodeAttrs {
		names = append(names, name)
	}
	return names
}

// EdgeAttrNames returns every registered edge attribute column name, in
// no particular order.
func (g *Graph) EdgeAttrNames() []string {
	names := make([]string, 0, len(g.edgeAttrs))
	for name := range g.edgeAttrs {
		names = append(names, name)
	}
	return names
}
