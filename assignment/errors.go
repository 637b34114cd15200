package assignment

import "errors"

var (
	// ErrDegenerateFlip indicates a Flip would leave some part with zero
	// members; proposals must reject such flips before they reach
	// Assignment (spec 4.2: "the producing proposal must have already
	// rejected it — at this layer, a DegenerateFlip is raised").
	ErrDegenerateFlip = errors.New("assignment: flip would empty a part")

	// ErrUnassignedNode indicates of_mapping was given a mapping that
	// omits a node the graph defines.
	ErrUnassignedNode = errors.New("assignment: node missing from mapping")

	// ErrUnknownNode indicates a Flip or mapping referenced a node id
	// outside the graph's range.
	ErrUnknownNode = errors.New("assignment: unknown node")

	// ErrSeedFailure indicates FromRandom's single recursive-seeding pass
	// failed to produce a balanced, contiguous assignment. FromRandom does
	// not retry the seeding and has no retry-count option.
	ErrSeedFailure = errors.New("assignment: failed to seed a balanced assignment")
)
