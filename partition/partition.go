package partition

import (
	"sort"

	"github.com/mggg/gerrychain-go/assignment"
	"github.com/mggg/gerrychain-go/graph"
)

// cacheEntry memoizes one updater's computed value for a Partition.
type cacheEntry struct {
	value interface{}
	err   error
}

// Partition is an immutable snapshot: a graph, an assignment over it, and
// a lazily-populated cache of updater values. Flip never mutates a
// Partition in place — it returns a child that shares the graph and
// registry by pointer and shares untouched assignment member sets via
// assignment.CloneWithFlip's own copy-on-write (spec 4.3's "Partition is
// a value-like, immutable node").
type Partition struct {
	graph    *graph.Graph
	assign   *assignment.Assignment
	registry *Registry
	cache    map[string]cacheEntry
	parent   *Partition
	lastFlip assignment.Flip
}

// New builds the root Partition of a chain walk.
func New(g *graph.Graph, a *assignment.Assignment, reg *Registry) (*Partition, error) {
	if reg == nil {
		return nil, ErrNoRegistry
	}
	return &Partition{
		graph:    g,
		assign:   a,
		registry: reg,
		cache:    make(map[string]cacheEntry),
	}, nil
}

// Graph returns the frozen graph this partition is defined over.
func (p *Partition) Graph() *graph.Graph { return p.graph }

// Assignment returns the node<->part map this partition wraps.
func (p *Partition) Assignment() *assignment.Assignment { return p.assign }

// Parent returns the partition this one was flipped from, or nil for a
// chain's initial state.
func (p *Partition) Parent() *Partition { return p.parent }

// LastFlip returns the flip that produced this partition from its
// parent, or nil for the initial state.
func (p *Partition) LastFlip() assignment.Flip { return p.lastFlip }

// Flip returns a new child Partition reflecting f, without mutating p.
func (p *Partition) Flip(f assignment.Flip) (*Partition, error) {
	childAssign, err := p.assign.CloneWithFlip(f)
	if err != nil {
		return nil, err
	}
	return &Partition{
		graph:    p.graph,
		assign:   childAssign,
		registry: p.registry,
		cache:    make(map[string]cacheEntry),
		parent:   p,
		lastFlip: f,
	}, nil
}

// Value lazily computes (and memoizes) the named updater's value for
// this partition. When the updater implements DiffUpdater and the
// parent already has a cached value, the diff path is taken; otherwise
// the updater recomputes from scratch (spec 4.3's caching contract).
func (p *Partition) Value(name string) (interface{}, error) {
	if entry, ok := p.cache[name]; ok {
		return entry.value, entry.err
	}

	u, ok := p.registry.lookup(name)
	if !ok {
		return nil, ErrUnknownUpdater
	}

	var value interface{}
	var err error
	if diff, isDiff := u.(DiffUpdater); isDiff && p.parent != nil && p.lastFlip != nil {
		if parentEntry, cached := p.parent.cache[name]; cached && parentEntry.err == nil {
			value, err = diff.UpdateFromParent(parentEntry.value, p, p.lastFlip)
		} else {
			value, err = u.Recompute(p)
		}
	} else {
		value, err = u.Recompute(p)
	}

	if err != nil {
		err = &UpdaterFailure{Name: name, Cause: err}
	}
	p.cache[name] = cacheEntry{value: value, err: err}
	return value, err
}

// TrimParent drops the parent link once every registered updater has
// been materialized on this partition, breaking the reference chain so
// a long-running chain walk doesn't retain every ancestor partition
// (spec design notes, "optional trimming").
func (p *Partition) TrimParent() {
	for _, name := range p.registry.Names() {
		if _, ok := p.cache[name]; !ok {
			return
		}
	}
	p.parent = nil
}

// CutEdges returns the edges of the graph whose endpoints currently lie
// in different parts, sorted by (U, V) for deterministic iteration. This
// is a direct structural query, not routed through the update.CutEdges
// updater, so callers who only need the edge list don't pay for the
// registry's caching machinery.
func (p *Partition) CutEdges() []graph.EdgeRef {
	var out []graph.EdgeRef
	for _, e := range p.graph.Edges() {
		if p.assign.PartOf(e.U) != p.assign.PartOf(e.V) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})
	return out
}
