package graph

import "errors"

// Sentinel errors for the graph package. All are returned directly (never
// wrapped) so callers match with errors.Is; errors.New strings are prefixed
// with "graph: " for grep-ability across logs, matching lvlath's convention.
var (
	// ErrInvalidGraph indicates the input to FromAdjacency was malformed:
	// an edge referencing an unknown node, or a duplicate edge.
	ErrInvalidGraph = errors.New("graph: invalid graph")

	// ErrUnknownNode indicates an out-of-range node id was passed to an
	// otherwise-total accessor.
	ErrUnknownNode = errors.New("graph: unknown node")

	// ErrMissingAttribute indicates a node or edge attribute lookup by name
	// found no such column.
	ErrMissingAttribute = errors.New("graph: missing attribute")

	// ErrEdgeNotFound indicates an edge attribute lookup referenced a pair
	// of nodes with no edge between them.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrAttrTypeMismatch indicates a typed accessor (e.g. AsFloat) was
	// called against a Value of a different AttrType.
	ErrAttrTypeMismatch = errors.New("graph: attribute type mismatch")
)
