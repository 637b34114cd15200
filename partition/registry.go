package partition

import "github.com/mggg/gerrychain-go/assignment"

// Updater/DiffUpdater are defined in package partition (the consumer),
// not in package update, so that partition need not import update back —
// package update imports partition and implements these interfaces,
// mirroring the standard library's "define the interface where it's
// consumed" convention (io.Writer, sort.Interface).
type Updater interface {
	Name() string
	Recompute(p *Partition) (interface{}, error)
}

// DiffUpdater is an Updater that can cheaply incorporate a single flip
// into an already-computed parent value instead of recomputing from
// scratch.
type DiffUpdater interface {
	Updater
	UpdateFromParent(parentValue interface{}, p *Partition, flip assignment.Flip) (interface{}, error)
}

// Registry is the fixed set of updaters shared by every Partition in one
// chain walk. It is built once and never mutated afterward, so it is
// safe to share by pointer across partitions without locking.
type Registry struct {
	order    []string
	updaters map[string]Updater
}

// NewRegistry builds a Registry from a set of updaters. Duplicate names
// overwrite earlier entries (last one wins), matching map-literal
// construction semantics elsewhere in the stack.
func NewRegistry(updaters ...Updater) *Registry {
	r := &Registry{updaters: make(map[string]Updater, len(updaters))}
	for _, u := range updaters {
		name := u.Name()
		if _, exists := r.updaters[name]; !exists {
			r.order = append(r.order, name)
		}
		r.updaters[name] = u
	}
	return r
}

// Names returns every registered updater name, in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) lookup(name string) (Updater, bool) {
	u, ok := r.updaters[name]
	return u, ok
}
