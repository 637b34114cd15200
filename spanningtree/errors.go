package spanningtree

import "errors"

var (
	// ErrBipartitionFailure indicates no balanced cut was found after
	// MaxAttempts spanning-tree redraws.
	ErrBipartitionFailure = errors.New("spanningtree: no balanced cut found")

	// ErrReselectPair is returned instead of ErrBipartitionFailure when
	// AllowReselection is set, signaling the caller (proposal.ReCom)
	// should draw a different adjacent district pair rather than give up.
	ErrReselectPair = errors.New("spanningtree: exhausted attempts, reselect pair")

	// ErrEmptySubgraph indicates BipartitionTree was called on a subgraph
	// with fewer than two members.
	ErrEmptySubgraph = errors.New("spanningtree: subgraph has fewer than two nodes")

	// ErrDisconnectedSubgraph indicates the merged subgraph is not itself
	// connected, so no spanning tree exists.
	ErrDisconnectedSubgraph = errors.New("spanningtree: subgraph is disconnected")

	// ErrMissingPopulation indicates popCol is not a valid numeric node
	// attribute on the subgraph's graph.
	ErrMissingPopulation = errors.New("spanningtree: missing population attribute")
)
