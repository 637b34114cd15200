package proposal

import (
	"math/rand"
	"testing"

	"github.com/mggg/gerrychain-go/assignment"
	"github.com/mggg/gerrychain-go/graph"
	"github.com/mggg/gerrychain-go/partition"
)

func pathGraph(t *testing.T, n int) *graph.Graph {
	t.Helper()
	ids := make([]string, n)
	pop := make(graph.Column, n)
	for i := range ids {
		ids[i] = string(rune('a' + i))
		pop[i] = graph.IntValue(1)
	}
	var edges []graph.EdgeSpec
	for i := 0; i < n-1; i++ {
		edges = append(edges, graph.EdgeSpec{From: i, To: i + 1})
	}
	g, err := graph.FromAdjacency(ids, edges, map[string]graph.Column{"pop": pop}, nil)
	if err != nil {
		t.Fatalf("building path graph: %v", err)
	}
	return g
}

func TestProposeRandomFlip(t *testing.T) {
	g := pathGraph(t, 4) // 0-1-2-3
	a, _ := assignment.OfMapping(g, map[int]int{0: 0, 1: 0, 2: 1, 3: 1})
	p, _ := partition.New(g, a, partition.NewRegistry())
	rng := rand.New(rand.NewSource(1))

	flip, err := ProposeRandomFlip(p, rng)
	if err != nil {
		t.Fatalf("ProposeRandomFlip: %v", err)
	}
	if len(flip) != 1 {
		t.Fatalf("flip has %d entries, want 1", len(flip))
	}
	for v, newPart := range flip {
		if v != 1 && v != 2 {
			t.Fatalf("flipped node %d, want boundary node 1 or 2", v)
		}
		if newPart != 0 && newPart != 1 {
			t.Fatalf("unexpected target part %d", newPart)
		}
	}
}

func TestProposeRandomFlip_NoBoundary(t *testing.T) {
	g := pathGraph(t, 2)
	a, _ := assignment.OfMapping(g, map[int]int{0: 0, 1: 0})
	p, _ := partition.New(g, a, partition.NewRegistry())
	rng := rand.New(rand.NewSource(1))

	if _, err := ProposeRandomFlip(p, rng); err != ErrNoBoundaryNodes {
		t.Fatalf("expected ErrNoBoundaryNodes, got %v", err)
	}
}

func TestReCom_BalancedSplitOnEightNodePath(t *testing.T) {
	g := pathGraph(t, 8)
	a, _ := assignment.OfMapping(g, map[int]int{0: 0, 1: 0, 2: 0, 3: 0, 4: 1, 5: 1, 6: 1, 7: 1})
	p, _ := partition.New(g, a, partition.NewRegistry())
	rng := rand.New(rand.NewSource(5))

	recom := ReCom(ReComOptions{
		PopCol:      "pop",
		PopTarget:   4,
		Epsilon:     0.5,
		MaxAttempts: 1000,
	})

	flip, err := recom(p, rng)
	if err != nil {
		t.Fatalf("ReCom: %v", err)
	}
	next, err := p.Flip(flip)
	if err != nil {
		t.Fatalf("applying flip: %v", err)
	}
	parts := next.Assignment().Parts()
	if len(parts) != 2 {
		t.Fatalf("Parts() len = %d, want 2", len(parts))
	}
	for _, part := range parts {
		if n := next.Assignment().Members(part).Len(); n < 2 || n > 6 {
			t.Fatalf("part %d has %d members, want within epsilon of 4", part, n)
		}
	}
}

func TestReCom_NoAdjacentParts(t *testing.T) {
	g := pathGraph(t, 4)
	a, _ := assignment.OfMapping(g, map[int]int{0: 0, 1: 0, 2: 0, 3: 0})
	p, _ := partition.New(g, a, partition.NewRegistry())
	rng := rand.New(rand.NewSource(1))

	recom := ReCom(ReComOptions{PopCol: "pop", PopTarget: 2, Epsilon: 0.5})
	if _, err := recom(p, rng); err != ErrNoAdjacentParts {
		t.Fatalf("expected ErrNoAdjacentParts, got %v", err)
	}
}
