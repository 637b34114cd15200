package constraint

import (
	"fmt"

	"github.com/mggg/gerrychain-go/partition"
)

// UpperBound requires fn(p) <= bound for every part score fn computes,
// where fn returns a single scalar for the whole partition (callers
// compose per-part checks inside fn when needed, e.g. via a max-over-parts
// score function).
func UpperBound(fn func(*partition.Partition) float64, bound float64) Predicate {
	return func(p *partition.Partition) (Outcome, string) {
		if v := fn(p); v > bound {
			return Fail, fmt.Sprintf("score %v exceeds upper bound %v", v, bound)
		}
		return Pass, ""
	}
}

// LowerBound requires fn(p) >= bound.
func LowerBound(fn func(*partition.Partition) float64, bound float64) Predicate {
	return func(p *partition.Partition) (Outcome, string) {
		if v := fn(p); v < bound {
			return Fail, fmt.Sprintf("score %v is below lower bound %v", v, bound)
		}
		return Pass, ""
	}
}

// WithinPercentOfIdealPopulation requires every part's population to
// fall within epsilon of the initial partition's ideal per-part
// population. Reads the "population" updater value (a
// map[int]float64, as produced by update.Tally{Attr: popCol, Alias:
// "population"}) — the chain's caller is expected to register that
// updater under that alias when population-balance constraints are in
// play.
func WithinPercentOfIdealPopulation(initial *partition.Partition, epsilon float64) Predicate {
	totals := populationTotals(initial)
	var sum float64
	for _, v := range totals {
		sum += v
	}
	ideal := sum / float64(len(totals))
	lo, hi := ideal*(1-epsilon), ideal*(1+epsilon)

	return func(p *partition.Partition) (Outcome, string) {
		for part, v := range populationTotals(p) {
			if v < lo || v > hi {
				return Fail, fmt.Sprintf("part %d population %v outside [%v, %v]", part, v, lo, hi)
			}
		}
		return Pass, ""
	}
}

func populationTotals(p *partition.Partition) map[int]float64 {
	val, err := p.Value("population")
	if err != nil {
		return nil
	}
	totals, _ := val.(map[int]float64)
	return totals
}

// SelfConfiguringUpperBound returns a Predicate constructor that reads
// fn's value on the initial partition and uses that as the bound going
// forward — spec's "calibrate the bound from the seed, then enforce it."
func SelfConfiguringUpperBound(fn func(*partition.Partition) float64) func(initial *partition.Partition) Predicate {
	return func(initial *partition.Partition) Predicate {
		bound := fn(initial)
		return UpperBound(fn, bound)
	}
}

// SelfConfiguringLowerBound mirrors SelfConfiguringUpperBound for a
// lower bound.
func SelfConfiguringLowerBound(fn func(*partition.Partition) float64) func(initial *partition.Partition) Predicate {
	return func(initial *partition.Partition) Predicate {
		bound := fn(initial)
		return LowerBound(fn, bound)
	}
}

// WithinPercentRangeOfBounds constrains fn(p) to stay within percent of
// the initial partition's value, in either direction.
func WithinPercentRangeOfBounds(fn func(*partition.Partition) float64, percent float64) func(initial *partition.Partition) Predicate {
	return func(initial *partition.Partition) Predicate {
		base := fn(initial)
		lo, hi := base*(1-percent), base*(1+percent)
		if lo > hi {
			lo, hi = hi, lo
		}
		return func(p *partition.Partition) (Outcome, string) {
			v := fn(p)
			if v < lo || v > hi {
				return Fail, fmt.Sprintf("score %v outside [%v, %v] (%.1f%% of initial %v)", v, lo, hi, percent*100, base)
			}
			return Pass, ""
		}
	}
}
