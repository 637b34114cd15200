package assignment

import (
	"math/rand"

	"github.com/mggg/gerrychain-go/graph"
	"github.com/mggg/gerrychain-go/spanningtree"
)

// SeedOption configures FromRandom.
type SeedOption func(*spanningtree.BipartitionOptions)

// WithSeedEpsilon overrides the population-balance tolerance used while
// carving off each part (default matches the caller's epsilon argument).
func WithSeedEpsilon(eps float64) SeedOption {
	return func(o *spanningtree.BipartitionOptions) { o.Epsilon = eps }
}

// WithSeedWarnings routes every bipartition warning raised while seeding to
// fn, instead of discarding them.
func WithSeedWarnings(fn func(spanningtree.Warning)) SeedOption {
	return func(o *spanningtree.BipartitionOptions) { o.OnWarning = fn }
}

// FromRandom builds an initial, population-balanced Assignment by
// recursively bipartitioning g (spec 4.5's recursive_seed_part), then
// wrapping the result through OfMapping so the usual invariants apply.
func FromRandom(g *graph.Graph, nParts int, popCol string, epsilon float64, rng *rand.Rand, opts ...SeedOption) (*Assignment, error) {
	var stOpts spanningtree.BipartitionOptions
	stOpts.Epsilon = epsilon
	for _, o := range opts {
		o(&stOpts)
	}

	mapping, err := spanningtree.RecursiveSeedPart(g, nParts, popCol, stOpts.Epsilon, rng, stOpts.OnWarning)
	if err != nil {
		return nil, ErrSeedFailure
	}
	return OfMapping(g, mapping)
}
