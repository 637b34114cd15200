package optimize

import (
	"context"
	"math/rand"

	"github.com/mggg/gerrychain-go/accept"
	"github.com/mggg/gerrychain-go/chain"
	"github.com/mggg/gerrychain-go/constraint"
	"github.com/mggg/gerrychain-go/partition"
)

// ScoreFunc scores a partition; SingleMetricOptimizer hill-climbs this
// single scalar, maximizing or minimizing it per its maximize flag.
type ScoreFunc func(*partition.Partition) float64

// SingleMetricOptimizer wraps repeated chain.MarkovChain runs, tracking
// the best-scoring partition seen across every run it drives.
type SingleMetricOptimizer struct {
	proposal    chain.ProposalFunc
	constraints *constraint.Validator
	initial     *partition.Partition
	score       ScoreFunc
	maximize    bool

	best      *partition.Partition
	bestScore float64
	haveBest  bool
}

// NewSingleMetricOptimizer builds an optimizer seeded at initial.
func NewSingleMetricOptimizer(proposal chain.ProposalFunc, constraints *constraint.Validator, initial *partition.Partition, score ScoreFunc, maximize bool) *SingleMetricOptimizer {
	o := &SingleMetricOptimizer{
		proposal:    proposal,
		constraints: constraints,
		initial:     initial,
		score:       score,
		maximize:    maximize,
	}
	o.consider(initial)
	return o
}

func (o *SingleMetricOptimizer) consider(p *partition.Partition) {
	s := o.score(p)
	if !o.haveBest || o.improves(s, o.bestScore) {
		o.best = p
		o.bestScore = s
		o.haveBest = true
	}
}

func (o *SingleMetricOptimizer) improves(candidate, current float64) bool {
	if o.maximize {
		return candidate > current
	}
	return candidate < current
}

// BestScore returns the best score seen across every run this optimizer
// has driven so far.
func (o *SingleMetricOptimizer) BestScore() float64 { return o.bestScore }

// BestPartition returns the partition achieving BestScore.
func (o *SingleMetricOptimizer) BestPartition() *partition.Partition { return o.best }

// ShortBursts runs nBursts chains of burstLength steps each, restarting
// every burst from the best-scoring plan found within the *previous*
// burst (not the all-time best) — the short-bursts strategy of spec
// 4.9/7, which hill-climbs while still giving each burst room to wander
// away from a single attractor.
func (o *SingleMetricOptimizer) ShortBursts(burstLength, nBursts int, rng *rand.Rand) ([]*partition.Partition, error) {
	results := make([]*partition.Partition, 0, nBursts)
	current := o.initial
	ctx := context.Background()

	for burst := 0; burst < nBursts; burst++ {
		c, err := chain.New(o.proposal, o.constraints, accept.AlwaysAccept, current, burstLength, chain.WithSeed(rng.Int63()))
		if err != nil {
			return nil, err
		}

		bestInBurst := current
		bestInBurstScore := o.score(current)
		for {
			p, ok, err := c.Next(ctx)
			if err != nil {
				return nil, err
			}
			if !ok {
				break
			}
			s := o.score(p)
			if o.improves(s, bestInBurstScore) {
				bestInBurstScore = s
				bestInBurst = p
			}
			o.consider(p)
		}
		current = bestInBurst
		results = append(results, bestInBurst)
	}
	return results, nil
}

// SimulatedAnnealing runs one chain of nSteps using Metropolis-Hastings
// acceptance with beta(step) scaled by betaMagnitude, returning the
// partition emitted at every step in order (a rejected candidate
// re-emits the current partition).
func (o *SingleMetricOptimizer) SimulatedAnnealing(nSteps int, betaSchedule accept.BetaFunc, betaMagnitude float64, rng *rand.Rand) ([]*partition.Partition, error) {
	signedScore := o.score
	if !o.maximize {
		signedScore = func(p *partition.Partition) float64 { return -o.score(p) }
	}
	scaledBeta := func(step int) float64 { return betaSchedule(step) * betaMagnitude }
	mh := accept.MetropolisHastings(signedScore, scaledBeta, rng)

	c, err := chain.New(o.proposal, o.constraints, func(candidate, current *partition.Partition, step int) bool {
		return mh(candidate, current, step)
	}, o.initial, nSteps, chain.WithSeed(rng.Int63()))
	if err != nil {
		return nil, err
	}

	return o.drive(c)
}

// TiltedRun runs one chain of nSteps that always accepts an improving
// move and accepts a worsening move with flat probability p, regardless
// of how much worse it is — a simpler alternative to annealing's
// score-proportional acceptance.
func (o *SingleMetricOptimizer) TiltedRun(nSteps int, p float64, rng *rand.Rand) ([]*partition.Partition, error) {
	tilted := func(candidate, current *partition.Partition, step int) bool {
		if o.improves(o.score(candidate), o.score(current)) {
			return true
		}
		return rng.Float64() < p
	}
	c, err := chain.New(o.proposal, o.constraints, tilted, o.initial, nSteps, chain.WithSeed(rng.Int63()))
	if err != nil {
		return nil, err
	}
	return o.drive(c)
}

func (o *SingleMetricOptimizer) drive(c *chain.MarkovChain) ([]*partition.Partition, error) {
	ctx := context.Background()
	var out []*partition.Partition
	for {
		p, ok, err := c.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		o.consider(p)
		out = append(out, p)
	}
	return out, nil
}
