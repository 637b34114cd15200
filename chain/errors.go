package chain

import "errors"

var (
	// ErrInvalidInitialState indicates New's initial partition failed the
	// supplied constraints before the chain ever took a step.
	ErrInvalidInitialState = errors.New("chain: initial partition fails constraints")

	// ErrRejectionExhausted indicates a single step retried past
	// MaxRejections (proposal errors, degenerate flips and constraint
	// failures) without finding a constraint-passing candidate.
	ErrRejectionExhausted = errors.New("chain: exhausted rejection budget on one step")

	// ErrChainDone indicates Next was called after the chain already
	// reached totalSteps.
	ErrChainDone = errors.New("chain: already done")

	// ErrChainFailed indicates Next was called after a previous call
	// returned a fatal error; the chain cannot continue.
	ErrChainFailed = errors.New("chain: chain previously failed")
)
