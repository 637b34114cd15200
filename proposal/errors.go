package proposal

import "errors"

var (
	// ErrNoBoundaryNodes indicates ProposeRandomFlip was called on a
	// partition with no cut edges (a single-part partition).
	ErrNoBoundaryNodes = errors.New("proposal: no boundary nodes to flip")

	// ErrNoAdjacentParts indicates ReCom was called on a partition with
	// only one part, so no adjacent pair exists to recombine.
	ErrNoAdjacentParts = errors.New("proposal: no adjacent part pair to recombine")
)
