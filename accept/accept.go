package accept

import (
	"math"
	"math/rand"

	"github.com/mggg/gerrychain-go/partition"
)

// AlwaysAccept accepts every candidate that already passed the
// constraint Validator — the neutral acceptance function for a plain
// random walk. Its signature matches MetropolisHastings's so both can
// be passed anywhere a chain.AcceptFunc is expected.
func AlwaysAccept(candidate, current *partition.Partition, step int) bool { return true }

// BetaFunc gives the inverse temperature at a given chain step.
type BetaFunc func(step int) float64

// ConstantBeta returns a BetaFunc that never changes.
func ConstantBeta(beta float64) BetaFunc {
	return func(step int) float64 { return beta }
}

// JumpcycleBeta ramps beta from 0 up to 1 over hotSteps, then holds at 1
// for coldSteps, then repeats — the closed ramp shape used by simulated
// annealing runs that alternate "hot" (near-random) and "cold" (greedy)
// phases (supplemented feature: the distilled spec names beta schedules
// only in the abstract; this is the concrete shape original_source's
// annealing driver actually cycles through).
func JumpcycleBeta(coldSteps, hotSteps int) BetaFunc {
	period := coldSteps + hotSteps
	if period <= 0 {
		return ConstantBeta(1)
	}
	return func(step int) float64 {
		phase := step % period
		if phase < hotSteps {
			if hotSteps == 0 {
				return 1
			}
			return float64(phase) / float64(hotSteps)
		}
		return 1
	}
}

// MetropolisHastings returns an acceptance function that accepts an
// improving candidate unconditionally and a worsening one with
// probability exp(-beta(step) * (score(current) - score(candidate))),
// the standard Metropolis criterion for a maximized score.
func MetropolisHastings(score func(*partition.Partition) float64, beta BetaFunc, rng *rand.Rand) func(candidate, current *partition.Partition, step int) bool {
	return func(candidate, current *partition.Partition, step int) bool {
		delta := score(candidate) - score(current)
		if delta >= 0 {
			return true
		}
		b := beta(step)
		if b <= 0 {
			return true
		}
		p := math.Exp(b * delta)
		return rng.Float64() < p
	}
}
