package partition

import "errors"

var (
	// ErrUnknownUpdater indicates Value was asked for a name never
	// registered with this partition's Registry.
	ErrUnknownUpdater = errors.New("partition: unknown updater")

	// ErrNoRegistry indicates New was given a nil Registry.
	ErrNoRegistry = errors.New("partition: nil registry")
)

// UpdaterFailure wraps an error an updater's Recompute or
// UpdateFromParent returned, so callers (chain.MarkovChain in
// particular) can distinguish "this candidate is invalid" from a
// structural bug in the chain itself.
type UpdaterFailure struct {
	Name  string
	Cause error
}

func (e *UpdaterFailure) Error() string {
	return "partition: updater " + e.Name + " failed: " + e.Cause.Error()
}

func (e *UpdaterFailure) Unwrap() error { return e.Cause }
