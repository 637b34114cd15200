// Package graph defines the frozen adjacency graph that every other
// gerrychain-go package builds on: nodes and edges carry a columnar
// attribute table, neighbor lists are sorted for deterministic iteration,
// and topology never changes once FromAdjacency returns.
//
// Node identity is a contiguous int in [0, |V|), assigned in the order
// callers list nodeIDs; the original string identifiers survive as a
// side table (IDs, IndexOf) so serialization (see the graphio package)
// round-trips them.
package graph
