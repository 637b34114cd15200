// Package spanningtree implements the ReCom core: a random, optionally
// region-weighted spanning tree over a merged pair of districts, and a
// population-balanced edge cut that bipartitions it.
//
// The tree draw is weighted Kruskal (graph/prim_kruskal.go's Kruskal
// generalized from Edge.Weight to a per-edge weight function), not a
// strictly uniform spanning-tree sampler; Uniform: true in
// BipartitionOptions switches to Wilson's loop-erased random walk, the
// opt-in alternative the spec leaves open (spec 4.5, 9: "exact
// spanning-tree-uniformity requirement ... not settled").
package spanningtree
