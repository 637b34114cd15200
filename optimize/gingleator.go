package optimize

import (
	"math"

	"github.com/mggg/gerrychain-go/chain"
	"github.com/mggg/gerrychain-go/constraint"
	"github.com/mggg/gerrychain-go/partition"
)

// Gingleator wraps SingleMetricOptimizer with the opportunity-district
// score family of spec 4.9/7: given each part's minority vote share, it
// scores how well the plan creates districts where that share clears
// threshold.
type Gingleator struct {
	*SingleMetricOptimizer
	minorityShare func(*partition.Partition) map[int]float64
	threshold     float64
}

// GingleatorScore is one of the five closed-form opportunity-district
// scoring variants.
type GingleatorScore func(minorityShare map[int]float64, threshold float64) float64

// NumOpportunityDists counts parts whose minority share meets or exceeds
// threshold.
func NumOpportunityDists(minorityShare map[int]float64, threshold float64) float64 {
	n := 0.0
	for _, share := range minorityShare {
		if share >= threshold {
			n++
		}
	}
	return n
}

// RewardPartialDist adds the fractional share, beyond a whole-district
// count, of the single highest part below threshold — rewarding
// progress toward one more opportunity district even before it clears
// the bar.
func RewardPartialDist(minorityShare map[int]float64, threshold float64) float64 {
	score := NumOpportunityDists(minorityShare, threshold)
	best := 0.0
	for _, share := range minorityShare {
		if share < threshold && share > best {
			best = share
		}
	}
	if threshold > 0 {
		score += best / threshold
	}
	return score
}

// RewardNextHighestClose rewards the single part closest to (but still
// below) threshold, weighting how close it is on a [0,1] scale that
// saturates as it approaches the bar.
func RewardNextHighestClose(minorityShare map[int]float64, threshold float64) float64 {
	score := NumOpportunityDists(minorityShare, threshold)
	closest := math.Inf(1)
	for _, share := range minorityShare {
		if share < threshold {
			gap := threshold - share
			if gap < closest {
				closest = gap
			}
		}
	}
	if math.IsInf(closest, 1) {
		return score
	}
	return score + (1 - closest/threshold)
}

// PenalizeMaximumOver subtracts a penalty proportional to how far the
// single most-over-threshold part exceeds threshold, discouraging
// excessive packing into one district.
func PenalizeMaximumOver(minorityShare map[int]float64, threshold float64) float64 {
	score := NumOpportunityDists(minorityShare, threshold)
	maxOver := 0.0
	for _, share := range minorityShare {
		if over := share - threshold; over > maxOver {
			maxOver = over
		}
	}
	return score - maxOver
}

// PenalizeAvgOver subtracts a penalty proportional to the average
// over-threshold excess across every opportunity district.
func PenalizeAvgOver(minorityShare map[int]float64, threshold float64) float64 {
	score := NumOpportunityDists(minorityShare, threshold)
	total, n := 0.0, 0.0
	for _, share := range minorityShare {
		if over := share - threshold; over > 0 {
			total += over
			n++
		}
	}
	if n == 0 {
		return score
	}
	return score - total/n
}

// NewGingleator wraps a SingleMetricOptimizer whose score is
// scoreFn(minorityShare(p), threshold).
func NewGingleator(proposal chain.ProposalFunc, constraints *constraint.Validator, initial *partition.Partition, minorityShare func(*partition.Partition) map[int]float64, threshold float64, scoreFn GingleatorScore) *Gingleator {
	score := func(p *partition.Partition) float64 {
		return scoreFn(minorityShare(p), threshold)
	}
	return &Gingleator{
		SingleMetricOptimizer: NewSingleMetricOptimizer(proposal, constraints, initial, score, true),
		minorityShare:         minorityShare,
		threshold:             threshold,
	}
}
