package builder

import "errors"

// Sentinel errors, following lvlath/builder's "return sentinel errors,
// never panic at runtime" contract for the constructors themselves
// (option constructors are the one place a panic is allowed, for
// programmer-error-shaped misuse — see options.go).
var (
	// ErrTooFewNodes indicates a requested topology's size parameter is
	// below its minimum (e.g. Grid(0, 5), Path(1)).
	ErrTooFewNodes = errors.New("builder: too few nodes")

	// ErrInvalidProbability indicates RandomSparse was called with p
	// outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability must be in [0, 1]")
)
