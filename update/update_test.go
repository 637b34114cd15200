package update

import (
	"testing"

	"github.com/mggg/gerrychain-go/assignment"
	"github.com/mggg/gerrychain-go/graph"
	"github.com/mggg/gerrychain-go/partition"
)

// pathGraphWithAttrs builds an n-node path with population, area,
// boundary_perim, boundary_node, county, and republican/democratic vote
// node attributes, plus shared_perim edge attributes, so every updater
// in this package has something to read.
func pathGraphWithAttrs(t *testing.T, n int) *graph.Graph {
	t.Helper()
	ids := make([]string, n)
	pop := make(graph.Column, n)
	area := make(graph.Column, n)
	perim := make(graph.Column, n)
	boundary := make(graph.Column, n)
	county := make(graph.Column, n)
	rep := make(graph.Column, n)
	dem := make(graph.Column, n)
	for i := range ids {
		ids[i] = string(rune('a' + i))
		pop[i] = graph.IntValue(1)
		area[i] = graph.FloatValue(2.0)
		perim[i] = graph.FloatValue(1.0)
		boundary[i] = graph.BoolValue(i == 0 || i == n-1)
		county[i] = graph.StringValue("county-" + string(rune('A'+i/2)))
		rep[i] = graph.FloatValue(float64(i))
		dem[i] = graph.FloatValue(float64(n - i))
	}
	var edges []graph.EdgeSpec
	sharedPerim := make(graph.Column, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, graph.EdgeSpec{From: i, To: i + 1})
		sharedPerim = append(sharedPerim, graph.FloatValue(0.5))
	}
	g, err := graph.FromAdjacency(ids,
		edges,
		map[string]graph.Column{
			"pop": pop, "area": area, "boundary_perim": perim,
			"boundary_node": boundary, "county": county,
			"republican": rep, "democratic": dem,
		},
		map[string]graph.Column{"shared_perim": sharedPerim},
	)
	if err != nil {
		t.Fatalf("building graph: %v", err)
	}
	return g
}

func TestTally(t *testing.T) {
	g := pathGraphWithAttrs(t, 4)
	a, _ := assignment.OfMapping(g, map[int]int{0: 0, 1: 0, 2: 1, 3: 1})
	p, _ := partition.New(g, a, partition.NewRegistry(Tally{Attr: "pop"}))

	val, err := p.Value("pop")
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	totals := val.(map[int]float64)
	if totals[0] != 2 || totals[1] != 2 {
		t.Fatalf("totals = %v, want {0:2 1:2}", totals)
	}
}

func TestTally_DiffPath(t *testing.T) {
	g := pathGraphWithAttrs(t, 4)
	a, _ := assignment.OfMapping(g, map[int]int{0: 0, 1: 0, 2: 1, 3: 1})
	reg := partition.NewRegistry(Tally{Attr: "pop"})
	root, _ := partition.New(g, a, reg)
	if _, err := root.Value("pop"); err != nil {
		t.Fatalf("root Value: %v", err)
	}

	child, err := root.Flip(assignment.Flip{1: 1})
	if err != nil {
		t.Fatalf("Flip: %v", err)
	}
	val, err := child.Value("pop")
	if err != nil {
		t.Fatalf("child Value: %v", err)
	}
	totals := val.(map[int]float64)
	if totals[0] != 1 || totals[1] != 3 {
		t.Fatalf("totals = %v, want {0:1 1:3}", totals)
	}
}

func TestCutEdges_DiffPath(t *testing.T) {
	g := pathGraphWithAttrs(t, 4) // 0-1-2-3
	a, _ := assignment.OfMapping(g, map[int]int{0: 0, 1: 0, 2: 1, 3: 1})
	reg := partition.NewRegistry(CutEdges{})
	root, _ := partition.New(g, a, reg)
	if _, err := root.Value("cut_edges"); err != nil {
		t.Fatalf("root Value: %v", err)
	}

	// Flip node 1 into part 1: now the cut moves from (1,2) to (0,1).
	child, err := root.Flip(assignment.Flip{1: 1})
	if err != nil {
		t.Fatalf("Flip: %v", err)
	}
	val, err := child.Value("cut_edges")
	if err != nil {
		t.Fatalf("child Value: %v", err)
	}
	edges := val.([]graph.EdgeRef)
	if len(edges) != 1 || edges[0].U != 0 || edges[0].V != 1 {
		t.Fatalf("cut edges = %v, want [{0 1}]", edges)
	}
}

func TestGeographicUpdaters(t *testing.T) {
	g := pathGraphWithAttrs(t, 4)
	a, _ := assignment.OfMapping(g, map[int]int{0: 0, 1: 0, 2: 1, 3: 1})
	p, err := NewGeographicPartition(g, a)
	if err != nil {
		t.Fatalf("NewGeographicPartition: %v", err)
	}

	areaVal, err := p.Value("area")
	if err != nil {
		t.Fatalf("area: %v", err)
	}
	if areaVal.(map[int]float64)[0] != 4 {
		t.Fatalf("area[0] = %v, want 4", areaVal.(map[int]float64)[0])
	}

	perimVal, err := p.Value("perimeter")
	if err != nil {
		t.Fatalf("perimeter: %v", err)
	}
	// Part 0 = {0,1}: node 0 is boundary (perim 1.0); cut edge (1,2) shared_perim 0.5.
	if got := perimVal.(map[int]float64)[0]; got != 1.5 {
		t.Fatalf("perimeter[0] = %v, want 1.5", got)
	}
}

func TestCountySplits(t *testing.T) {
	g := pathGraphWithAttrs(t, 4) // counties: A,A,B,B
	a, _ := assignment.OfMapping(g, map[int]int{0: 0, 1: 1, 2: 1, 3: 1})
	p, _ := partition.New(g, a, partition.NewRegistry(CountySplits{Attr: "county"}))

	val, err := p.Value("county_splits:county")
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	result := val.(CountySplitsResult)
	if result.NumSplits() != 1 {
		t.Fatalf("NumSplits() = %d, want 1 (county A is split across parts 0 and 1)", result.NumSplits())
	}
}

func TestElection(t *testing.T) {
	g := pathGraphWithAttrs(t, 4)
	a, _ := assignment.OfMapping(g, map[int]int{0: 0, 1: 0, 2: 1, 3: 1})
	p, _ := partition.New(g, a, partition.NewRegistry(Election{ElectionName: "2020", Parties: []string{"republican", "democratic"}}))

	val, err := p.Value("2020")
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	results := val.(ElectionResults)
	// part 0 = {0,1}: rep = 0+1=1, dem = 4+3=7 -> democratic wins
	if w := results.Winner(0); w != "democratic" {
		t.Fatalf("Winner(0) = %q, want democratic", w)
	}
}

func TestFlows(t *testing.T) {
	g := pathGraphWithAttrs(t, 4)
	a, _ := assignment.OfMapping(g, map[int]int{0: 0, 1: 0, 2: 1, 3: 1})
	reg := partition.NewRegistry(Flows{})
	root, _ := partition.New(g, a, reg)

	rootVal, err := root.Value("flows")
	if err != nil {
		t.Fatalf("root Value: %v", err)
	}
	if len(rootVal.(map[int]int)) != 0 {
		t.Fatalf("root flows should be empty, got %v", rootVal)
	}

	child, _ := root.Flip(assignment.Flip{1: 1})
	childVal, err := child.Value("flows")
	if err != nil {
		t.Fatalf("child Value: %v", err)
	}
	flows := childVal.(map[int]int)
	if flows[0] != -1 || flows[1] != 1 {
		t.Fatalf("flows = %v, want {0:-1 1:1}", flows)
	}
}
