package builder

import "math/rand"

// config is the resolved, immutable-after-construction state every
// topology factory reads from, mirroring lvlath/builder's builderConfig:
// functional Options mutate it once up front, factories never see the
// options themselves.
type config struct {
	rng     *rand.Rand
	popFn   func(id int, rng *rand.Rand) int64
	popName string
}

func newConfig(opts ...Option) config {
	c := config{
		rng:     rand.New(rand.NewSource(1)),
		popName: "population",
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Option customizes a fixture's construction. Like lvlath/builder's
// BuilderOption, constructors here validate and panic on meaningless
// input (nil rng, nil popFn) — the fixtures produced by this package
// must not silently degrade into a different test shape than the caller
// asked for.
type Option func(*config)

// WithRand supplies an explicit RNG, for deterministic RandomSparse draws.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithPopulation attaches a per-node population attribute (named attr,
// "population" by default) computed by fn. Most chain-engine test
// fixtures need one, since every population-bound constraint and ReCom
// itself reads a population column.
func WithPopulation(attr string, fn func(id int, rng *rand.Rand) int64) Option {
	if fn == nil {
		panic("builder: WithPopulation(nil fn)")
	}
	return func(c *config) {
		c.popName = attr
		c.popFn = fn
	}
}

// UniformPopulation returns a population function assigning the same
// value to every node — the shape spec.md's S3 scenario (path of 8,
// population 1 each) and S1 scenario need.
func UniformPopulation(value int64) func(id int, rng *rand.Rand) int64 {
	return func(int, *rand.Rand) int64 { return value }
}
