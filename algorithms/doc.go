// Package algorithms implements classic graph traversals (BFS, DFS) over
// graph.Subgraph views.
//
// Both traversals share the hookable shape lvlath's own algorithms package
// used over core.Graph (an OnVisit callback, plus OnEnqueue/OnDequeue on
// BFS only; a depth map, a parent map, context cancellation checked once
// per step) generalized
// from lvlath's string-keyed core.Graph to this module's int-keyed
// graph.Subgraph. graph.ConnectedComponents and constraint.SingleFlipContiguous
// are the two call sites that exercise these walkers instead of hand-rolling
// their own queue/stack loops.
package algorithms
