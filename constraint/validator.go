package constraint

import "github.com/mggg/gerrychain-go/partition"

// Outcome is a predicate's verdict on one Partition.
type Outcome int

const (
	// Pass means the predicate is satisfied.
	Pass Outcome = iota
	// Fail means the predicate is violated; the candidate must be
	// rejected.
	Fail
	// Indeterminate means this predicate can't decide from the
	// information it has (e.g. SingleFlipContiguous facing a multi-node
	// flip) and defers to whatever check follows it.
	Indeterminate
)

// Predicate evaluates one constraint against a partition, returning its
// verdict and a human-readable reason (empty on Pass).
type Predicate func(p *partition.Partition) (Outcome, string)

// Validator is an ordered composition of predicates.
type Validator struct {
	preds []Predicate
}

// AllOf builds a Validator that requires every predicate to pass.
func AllOf(preds ...Predicate) *Validator {
	return &Validator{preds: preds}
}

// Check runs every predicate in order, short-circuiting on the first
// Fail. An Indeterminate predicate does not stop evaluation; the overall
// result reflects the first Fail found, or Pass if none fail (an
// Indeterminate with no following Fail is treated as Pass, since nothing
// concrete contradicted it).
func (v *Validator) Check(p *partition.Partition) (Outcome, string) {
	for _, pred := range v.preds {
		outcome, reason := pred(p)
		if outcome == Fail {
			return Fail, reason
		}
	}
	return Pass, ""
}
