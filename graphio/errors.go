package graphio

import "errors"

var (
	// ErrDirectedUnsupported is returned when the wire document declares
	// "directed": true; the engine only works with undirected graphs.
	ErrDirectedUnsupported = errors.New("graphio: directed graphs are not supported")

	// ErrMultigraphUnsupported is returned when the wire document
	// declares "multigraph": true.
	ErrMultigraphUnsupported = errors.New("graphio: multigraphs are not supported")

	// ErrMissingNodeID is returned when a node or adjacency entry has no
	// "id" field.
	ErrMissingNodeID = errors.New("graphio: entry missing \"id\" field")

	// ErrUnknownAdjacencyNode is returned when an adjacency entry names a
	// neighbor id that never appears in the node list.
	ErrUnknownAdjacencyNode = errors.New("graphio: adjacency references an unknown node id")

	// ErrAdjacencyLengthMismatch is returned when the adjacency array's
	// length does not match the node count.
	ErrAdjacencyLengthMismatch = errors.New("graphio: adjacency length does not match node count")

	// ErrInconsistentAttributes is returned when an attribute name
	// appears on some but not all nodes (or edges), leaving no value to
	// fill the resulting column.
	ErrInconsistentAttributes = errors.New("graphio: attribute present on some but not all entries")

	// ErrUnsupportedAttrType is returned when a JSON attribute value is
	// not a bool, number, or string.
	ErrUnsupportedAttrType = errors.New("graphio: unsupported attribute value type")

	// ErrUnsupportedAssignmentSpec names an initial assignment spec that
	// is neither a string nor a node-id-keyed/part-id map. No function in
	// this package returns it, since graphio does not resolve initial
	// assignments.
	ErrUnsupportedAssignmentSpec = errors.New("graphio: unsupported initial assignment spec")
)
