package spanningtree

import (
	"math/rand"
	"testing"

	"github.com/mggg/gerrychain-go/graph"
	"github.com/stretchr/testify/suite"
)

// pathGraph builds an n-node path 0-1-2-...-(n-1), every node with
// population 1 under popCol "pop".
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

// gridGraphWithPop builds a rows x cols grid graph, each node population 1.
func gridGraphWithPop(t *testing.T, rows, cols int) *graph.Graph {
	t.Helper()
	n := rows * cols
	ids := make([]string, n)
	pop := make(graph.Column, n)
	idx := func(r, c int) int { return r*cols + c }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			ids[idx(r, c)] = string(rune('A'+r)) + string(rune('a'+c))
			pop[idx(r, c)] = graph.IntValue(1)
		}
	}
	var edges []graph.EdgeSpec
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				edges = append(edges, graph.EdgeSpec{From: idx(r, c), To: idx(r, c+1)})
			}
			if r+1 < rows {
				edges = append(edges, graph.EdgeSpec{From: idx(r, c), To: idx(r+1, c)})
			}
		}
	}
	g, err := graph.FromAdjacency(ids, edges, map[string]graph.Column{"pop": pop}, nil)
	if err != nil {
		t.Fatalf("building grid graph: %v", err)
	}
	return g
}

type BipartitionSuite struct {
	suite.Suite
}

func TestBipartitionSuite(t *testing.T) {
	suite.Run(t, new(BipartitionSuite))
}

func (s *BipartitionSuite) TestGridSplitsInHalf() {
	g := gridGraphWithPop(s.T(), 4, 4)
	all := graph.IntSet{}
	for v := 0; v < g.N(); v++ {
		all.Add(v)
	}
	sub := g.Subgraph(all)
	rng := rand.New(rand.NewSource(42))

	sides, _, err := BipartitionTree(sub, "pop", 8, rng, BipartitionOptions{Epsilon: 0.25, MaxAttempts: 2000})
	s.Require().NoError(err)

	var side0, side1 int
	for _, side := range sides {
		if side == 0 {
			side0++
		} else {
			side1++
		}
	}
	s.Equal(16, side0+side1)
	s.InDelta(8, side0, 2) // within epsilon*target of 8
	s.InDelta(8, side1, 2)
}

func (s *BipartitionSuite) TestDisconnectedSubgraphFails() {
	g := pathGraph(s.T(), 4) // 0-1-2-3
	members := graph.NewIntSet(0, 3)
	sub := g.Subgraph(members)
	rng := rand.New(rand.NewSource(1))

	_, _, err := BipartitionTree(sub, "pop", 1, rng, BipartitionOptions{Epsilon: 0.5})
	s.ErrorIs(err, ErrDisconnectedSubgraph)
}

func (s *BipartitionSuite) TestTooSmallSubgraphFails() {
	g := pathGraph(s.T(), 4)
	members := graph.NewIntSet(0)
	sub := g.Subgraph(members)
	rng := rand.New(rand.NewSource(1))

	_, _, err := BipartitionTree(sub, "pop", 1, rng, BipartitionOptions{})
	s.ErrorIs(err, ErrEmptySubgraph)
}

func (s *BipartitionSuite) TestUniformSamplerAlsoBalances() {
	g := gridGraphWithPop(s.T(), 3, 3)
	all := graph.IntSet{}
	for v := 0; v < g.N(); v++ {
		all.Add(v)
	}
	sub := g.Subgraph(all)
	rng := rand.New(rand.NewSource(7))

	sides, _, err := BipartitionTree(sub, "pop", 4.5, rng, BipartitionOptions{Epsilon: 0.5, Uniform: true, MaxAttempts: 2000})
	s.Require().NoError(err)
	s.Len(sides, 9)
}

func (s *BipartitionSuite) TestRecursiveSeedPartCoversAllNodes() {
	g := pathGraph(s.T(), 8)
	rng := rand.New(rand.NewSource(3))

	mapping, err := RecursiveSeedPart(g, 4, "pop", 0.5, rng, nil)
	s.Require().NoError(err)
	s.Len(mapping, 8)

	counts := make(map[int]int)
	for _, p := range mapping {
		counts[p]++
	}
	s.Len(counts, 4)
	for _, c := range counts {
		s.InDelta(2, c, 2)
	}
}

func TestDeriveRNGIsDeterministic(t *testing.T) {
	base := rand.New(rand.NewSource(99))
	base2 := rand.New(rand.NewSource(99))

	a := deriveRNG(base, 5)
	b := deriveRNG(base2, 5)
	if a.Int63() != b.Int63() {
		t.Fatalf("expected identical streams from identical seeds/stream ids")
	}
}

func TestCrossedRegionsEmptySurcharge(t *testing.T) {
	g := pathGraph(t, 2)
	crossed, sum := crossedRegions(g, 0, 1, nil)
	if crossed != nil || sum != 0 {
		t.Fatalf("expected no crossings with an empty surcharge map")
	}
}
