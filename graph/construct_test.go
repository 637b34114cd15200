package graph

import (
	"errors"
	"testing"
)

func gridEdges(rows, cols int) (ids []string, edges []EdgeSpec) {
	idx := func(r, c int) int { return r*cols + c }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			ids = append(ids, "")
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			ids[idx(r, c)] = gridID(r, c)
			if c+1 < cols {
				edges = append(edges, EdgeSpec{From: idx(r, c), To: idx(r, c+1)})
			}
			if r+1 < rows {
				edges = append(edges, EdgeSpec{From: idx(r, c), To: idx(r+1, c)})
			}
		}
	}
	return ids, edges
}

func gridID(r, c int) string {
	return string(rune('a'+r)) + string(rune('0'+c))
}

func TestFromAdjacency_Grid(t *testing.T) {
	ids, edges := gridEdges(4, 4)
	g, err := FromAdjacency(ids, edges, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.N() != 16 {
		t.Fatalf("expected 16 nodes, got %d", g.N())
	}
	if g.M() != 24 {
		t.Fatalf("expected 24 edges in a 4x4 grid, got %d", g.M())
	}
	d, _ := g.Degree(0)
	if d != 2 {
		t.Errorf("corner degree expected 2, got %d", d)
	}
}

func TestFromAdjacency_DuplicateEdge(t *testing.T) {
	_, err := FromAdjacency([]string{"a", "b"}, []EdgeSpec{{From: 0, To: 1}, {From: 1, To: 0}}, nil, nil)
	if !errors.Is(err, ErrInvalidGraph) {
		t.Fatalf("expected ErrInvalidGraph, got %v", err)
	}
}

func TestFromAdjacency_UnknownNode(t *testing.T) {
	_, err := FromAdjacency([]string{"a"}, []EdgeSpec{{From: 0, To: 5}}, nil, nil)
	if !errors.Is(err, ErrInvalidGraph) {
		t.Fatalf("expected ErrInvalidGraph, got %v", err)
	}
}

func TestNodeAttr_MissingColumn(t *testing.T) {
	g, err := FromAdjacency([]string{"a", "b"}, []EdgeSpec{{From: 0, To: 1}}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.NodeAttr(0, "population"); !errors.Is(err, ErrMissingAttribute) {
		t.Fatalf("expected ErrMissingAttribute, got %v", err)
	}
}

func TestNodeAttr_OutOfRange(t *testing.T) {
	g, _ := FromAdjacency([]string{"a"}, nil, nil, nil)
	if _, err := g.NodeAttr(5, "x"); !errors.Is(err, ErrUnknownNode) {
		t.Fatalf("expected ErrUnknownNode, got %v", err)
	}
}

func TestConnectedComponents_Islands(t *testing.T) {
	ids := []string{"a", "b", "c", "d"}
	edges := []EdgeSpec{{From: 0, To: 1}}
	g, err := FromAdjacency(ids, edges, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	sub := g.Subgraph(NewIntSet(0, 1, 2, 3))
	comps := g.ConnectedComponents(sub)
	if len(comps) != 3 {
		t.Fatalf("expected 3 components (ab, c, d), got %d: %v", len(comps), comps)
	}
	if comps[0][0] != 0 || comps[0][1] != 1 {
		t.Errorf("expected first component [0 1], got %v", comps[0])
	}
}

func TestBoundaryFlag(t *testing.T) {
	ids := []string{"a", "b"}
	edges := []EdgeSpec{{From: 0, To: 1}}
	nodeAttrs := map[string]Column{
		"boundary_node": {BoolValue(true), BoolValue(false)},
	}
	g, err := FromAdjacency(ids, edges, nodeAttrs, nil)
	if err != nil {
		t.Fatal(err)
	}
	b0, _ := g.IsBoundary(0)
	b1, _ := g.IsBoundary(1)
	if !b0 || b1 {
		t.Errorf("expected boundary flags [true false], got [%v %v]", b0, b1)
	}
}
