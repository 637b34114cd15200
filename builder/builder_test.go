package builder_test

import (
	"math/rand"
	"testing"

	"github.com/mggg/gerrychain-go/builder"
	"github.com/mggg/gerrychain-go/graph"
)

func TestGrid_Shape(t *testing.T) {
	g, err := builder.Grid(4, 4, builder.WithPopulation("population", builder.UniformPopulation(1)))
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}
	if g.N() != 16 {
		t.Fatalf("N() = %d; want 16", g.N())
	}
	// corner (0,0) has degree 2, interior (1,1) has degree 4.
	corner := g.IndexOf("0,0")
	if d, _ := g.Degree(corner); d != 2 {
		t.Errorf("corner degree = %d; want 2", d)
	}
	interior := g.IndexOf("1,1")
	if d, _ := g.Degree(interior); d != 4 {
		t.Errorf("interior degree = %d; want 4", d)
	}
}

func TestGrid_TooSmall(t *testing.T) {
	if _, err := builder.Grid(0, 4); err == nil {
		t.Fatal("expected an error for rows=0")
	}
}

func TestPath_Shape(t *testing.T) {
	g, err := builder.Path(8, builder.WithPopulation("population", builder.UniformPopulation(1)))
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if g.N() != 8 || g.M() != 7 {
		t.Fatalf("N()=%d M()=%d; want 8, 7", g.N(), g.M())
	}
	for i := 0; i < 8; i++ {
		v, err := g.NodeAttr(i, "population")
		if err != nil {
			t.Fatalf("NodeAttr(%d): %v", i, err)
		}
		if got, _ := v.AsInt(); got != 1 {
			t.Errorf("population[%d] = %d; want 1", i, got)
		}
	}
}

func TestComplete_EdgeCount(t *testing.T) {
	g, err := builder.Complete(5)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if g.M() != 10 {
		t.Errorf("M() = %d; want 10", g.M())
	}
}

func TestRandomSparse_Connected(t *testing.T) {
	g, err := builder.RandomSparse(20, 0.3, builder.WithRand(rand.New(rand.NewSource(42))))
	if err != nil {
		t.Fatalf("RandomSparse: %v", err)
	}
	all := graph.NewIntSet()
	for i := 0; i < g.N(); i++ {
		all.Add(i)
	}
	if comps := g.ConnectedComponents(g.Subgraph(all)); len(comps) != 1 {
		t.Errorf("expected a single connected component, got %d", len(comps))
	}
}

func TestRandomSparse_InvalidProbability(t *testing.T) {
	if _, err := builder.RandomSparse(5, 1.5); err == nil {
		t.Fatal("expected an error for p > 1")
	}
}
