package spanningtree

import "github.com/mggg/gerrychain-go/graph"

// RegionSurcharge maps a region node-attribute name to a nonnegative
// weight. Edges whose endpoints differ on that attribute are surcharged
// by that weight both when drawing the spanning tree (biasing the draw
// away from cutting regions) and when choosing which balanced cut to take
// (spec 4.5's deterministic tie-break order).
type RegionSurcharge map[string]float64

// Warning is a non-fatal event emitted during a bipartition attempt (spec
// 4.6: "every proposal may emit warnings ... not errors"), delivered via
// BipartitionOptions.OnWarning rather than logged directly, so a host can
// count or report them however it likes.
type Warning struct {
	Attempt int
	Message string
}

// BipartitionOptions configures BipartitionTree (spec 4.5).
type BipartitionOptions struct {
	// Epsilon is the population-balance tolerance: a side is balanced if
	// its population falls in [target*(1-Epsilon), target*(1+Epsilon)].
	Epsilon float64

	// RegionSurcharge biases the tree draw and cut choice toward keeping
	// regions whole. Nil or empty degrades to uniform-random behavior.
	RegionSurcharge RegionSurcharge

	// MaxAttempts bounds spanning-tree redraws before giving up. Zero
	// means the default of 10000.
	MaxAttempts int

	// AllowReselection: on exhaustion, return ErrReselectPair instead of
	// ErrBipartitionFailure.
	AllowReselection bool

	// Uniform selects Wilson's loop-erased-random-walk sampler instead of
	// weighted Kruskal, for callers who need a strictly uniform spanning
	// tree (spec 9, opt-in).
	Uniform bool

	// OnWarning, if non-nil, receives a Warning for every failed attempt
	// before a redraw (or before surfacing the final error).
	OnWarning func(Warning)
}

func (o BipartitionOptions) maxAttempts() int {
	if o.MaxAttempts > 0 {
		return o.MaxAttempts
	}
	return 10000
}

func (o BipartitionOptions) warn(attempt int, msg string) {
	if o.OnWarning != nil {
		o.OnWarning(Warning{Attempt: attempt, Message: msg})
	}
}

// treeEdge is one edge of the drawn spanning tree, retained with its
// region-crossing class. chooseCut (spec 4.5 step 4) does not read these
// fields; it recomputes the class of each candidate cut via
// crossedRegions.
type treeEdge struct {
	u, v     int
	crossed  []string // region names crossed by this edge, sorted ascending
	surchSum float64
}

// crossedRegions reports which region attributes differ between u and v,
// sorted ascending for the lexicographic tie-break, plus their weight sum.
// Missing attributes are treated as non-crossing (not an error): a region
// column that simply doesn't apply to this graph contributes nothing.
func crossedRegions(g *graph.Graph, u, v int, rs RegionSurcharge) ([]string, float64) {
	if len(rs) == 0 {
		return nil, 0
	}
	var crossed []string
	var sum float64
	for name, weight := range rs {
		uv, errU := g.NodeAttr(u, name)
		vv, errV := g.NodeAttr(v, name)
		if errU != nil || errV != nil {
			continue
		}
		if !valuesEqual(uv, vv) {
			crossed = append(crossed, name)
			sum += weight
		}
	}
	sortStrings(crossed)
	return crossed, sum
}

func valuesEqual(a, b graph.Value) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case graph.AttrInt:
		return a.Int == b.Int
	case graph.AttrFloat:
		return a.Flt == b.Flt
	case graph.AttrString:
		return a.Str == b.Str
	case graph.AttrBool:
		return a.Bln == b.Bln
	default:
		return false
	}
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
