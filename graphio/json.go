package graphio

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/mggg/gerrychain-go/graph"
)

// document is the wire shape of spec 6: top-level directed/multigraph
// flags, an opaque graph-level attribute bag, a node list, and a
// per-node adjacency list parallel to it.
type document struct {
	Directed   bool                       `json:"directed"`
	Multigraph bool                       `json:"multigraph"`
	Graph      map[string]interface{}     `json:"graph"`
	Nodes      []map[string]interface{}   `json:"nodes"`
	Adjacency  [][]map[string]interface{} `json:"adjacency"`
}

// ReadJSON parses the wire format into a frozen Graph. Node ids may be
// JSON strings or numbers; attribute values may be bool, number, or
// string (the reserved geographic names boundary_node/boundary_perim/
// area/geometry carry no special parsing here — graph.FromAdjacency
// interprets boundary_node itself).
func ReadJSON(r io.Reader) (*graph.Graph, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("graphio: decoding JSON: %w", err)
	}
	if doc.Directed {
		return nil, ErrDirectedUnsupported
	}
	if doc.Multigraph {
		return nil, ErrMultigraphUnsupported
	}

	n := len(doc.Nodes)
	ids := make([]string, n)
	idIndex := make(map[string]int, n)
	attrNames := map[string]bool{}
	for i, node := range doc.Nodes {
		raw, ok := node["id"]
		if !ok {
			return nil, ErrMissingNodeID
		}
		id := stringifyID(raw)
		ids[i] = id
		idIndex[id] = i
		for k := range node {
			if k != "id" {
				attrNames[k] = true
			}
		}
	}

	nodeAttrs := make(map[string]graph.Column, len(attrNames))
	for name := range attrNames {
		col := make(graph.Column, n)
		for i, node := range doc.Nodes {
			raw, ok := node[name]
			if !ok {
				return nil, fmt.Errorf("%w: node %q missing %q", ErrInconsistentAttributes, ids[i], name)
			}
			v, err := jsonToValue(raw)
			if err != nil {
				return nil, err
			}
			col[i] = v
		}
		nodeAttrs[name] = col
	}

	if len(doc.Adjacency) != 0 && len(doc.Adjacency) != n {
		return nil, ErrAdjacencyLengthMismatch
	}

	var edges []graph.EdgeSpec
	var edgeRaws []map[string]interface{}
	edgeAttrNames := map[string]bool{}
	seen := make(map[graph.EdgeRef]bool)
	for u, neighbors := range doc.Adjacency {
		for _, entry := range neighbors {
			raw, ok := entry["id"]
			if !ok {
				return nil, ErrMissingNodeID
			}
			neighborID := stringifyID(raw)
			v, ok := idIndex[neighborID]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownAdjacencyNode, neighborID)
			}
			if u == v {
				return nil, graph.ErrInvalidGraph
			}
			key := canonicalRef(u, v)
			if seen[key] {
				continue // the reverse direction of this undirected edge was already recorded
			}
			seen[key] = true
			edges = append(edges, graph.EdgeSpec{From: u, To: v})
			edgeRaws = append(edgeRaws, entry)
			for k := range entry {
				if k != "id" {
					edgeAttrNames[k] = true
				}
			}
		}
	}

	edgeAttrs := make(map[string]graph.Column, len(edgeAttrNames))
	for name := range edgeAttrNames {
		col := make(graph.Column, len(edges))
		for i, entry := range edgeRaws {
			raw, ok := entry[name]
			if !ok {
				return nil, fmt.Errorf("%w: edge attribute %q", ErrInconsistentAttributes, name)
			}
			v, err := jsonToValue(raw)
			if err != nil {
				return nil, err
			}
			col[i] = v
		}
		edgeAttrs[name] = col
	}

	return graph.FromAdjacency(ids, edges, nodeAttrs, edgeAttrs)
}

// WriteJSON serializes g into the wire format ReadJSON accepts. Output
// is deterministic: node attribute names, edge attribute names, and
// each node's neighbor list are all written in sorted order.
func WriteJSON(w io.Writer, g *graph.Graph) error {
	nodeAttrNames := g.NodeAttrNames()
	sort.Strings(nodeAttrNames)

	nodes := make([]map[string]interface{}, g.N())
	for v := 0; v < g.N(); v++ {
		m := map[string]interface{}{"id": g.ID(v)}
		for _, name := range nodeAttrNames {
			val, err := g.NodeAttr(v, name)
			if err != nil {
				return err
			}
			m[name] = valueToJSON(val)
		}
		nodes[v] = m
	}

	edgeAttrNames := g.EdgeAttrNames()
	sort.Strings(edgeAttrNames)

	adjacency := make([][]map[string]interface{}, g.N())
	for _, e := range g.Edges() {
		forward := map[string]interface{}{"id": g.ID(e.V)}
		backward := map[string]interface{}{"id": g.ID(e.U)}
		for _, name := range edgeAttrNames {
			val, err := g.EdgeAttr(e.U, e.V, name)
			if err != nil {
				return err
			}
			j := valueToJSON(val)
			forward[name] = j
			backward[name] = j
		}
		adjacency[e.U] = append(adjacency[e.U], forward)
		adjacency[e.V] = append(adjacency[e.V], backward)
	}
	for v := range adjacency {
		sort.Slice(adjacency[v], func(i, k int) bool {
			return adjacency[v][i]["id"].(string) < adjacency[v][k]["id"].(string)
		})
	}

	doc := document{
		Directed:   false,
		Multigraph: false,
		Graph:      map[string]interface{}{},
		Nodes:      nodes,
		Adjacency:  adjacency,
	}
	return json.NewEncoder(w).Encode(doc)
}

func canonicalRef(u, v int) graph.EdgeRef {
	if u > v {
		u, v = v, u
	}
	return graph.EdgeRef{U: u, V: v}
}

func stringifyID(raw interface{}) string {
	switch v := raw.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func jsonToValue(raw interface{}) (graph.Value, error) {
	switch v := raw.(type) {
	case bool:
		return graph.BoolValue(v), nil
	case string:
		return graph.StringValue(v), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return graph.IntValue(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return graph.Value{}, fmt.Errorf("%w: %v", ErrUnsupportedAttrType, err)
		}
		return graph.FloatValue(f), nil
	default:
		return graph.Value{}, fmt.Errorf("%w: %T", ErrUnsupportedAttrType, raw)
	}
}

func valueToJSON(v graph.Value) interface{} {
	switch v.Type {
	case graph.AttrInt:
		return v.Int
	case graph.AttrFloat:
		return v.Flt
	case graph.AttrString:
		return v.Str
	case graph.AttrBool:
		return v.Bln
	default:
		return nil
	}
}
