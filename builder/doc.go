// Package builder constructs small, deterministic graph.Graph fixtures
// for tests and examples: grids, paths, complete graphs, and
// Erdos-Renyi-style sparse random graphs, each optionally carrying a
// population node attribute.
//
// It keeps the teacher's functional-options-resolve-into-a-config shape
// (lvlath/builder's BuilderOption -> builderConfig, here Option ->
// config) and its "validate and panic in the option constructor, never
// panic in the algorithm itself" contract, trimmed to the handful of
// topologies matching spec.md's S1 (4x4 grid), S3 (8-node path), and S5
// (20-node random graph). The scenario tests in chain, proposal and
// optimize build their own graphs by hand; this package is exercised by
// its own tests.
package builder
