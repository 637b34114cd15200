// Package partition implements the core entity of the chain: an
// immutable snapshot pairing a frozen graph with an assignment, plus a
// lazily-computed, diff-aware cache of updater values shared by every
// step of a Markov chain walk.
package partition
