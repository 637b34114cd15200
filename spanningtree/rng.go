package spanningtree

import "math/rand"

// deriveSeed mixes a parent seed and a stream id into a fresh 64-bit seed
// via a SplitMix64-style avalanche mix, ported from tsp/rng.go: every
// spanning-tree redraw needs an independent, reproducible stream rather
// than continuing to draw from one shared *rand.Rand, so retries don't
// silently correlate with each other.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveRNG creates an independent deterministic RNG stream from base and
// a stream identifier (e.g. the attempt counter). base.Int63() is
// consumed once so that reusing the same stream id across calls never
// yields identical children.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := base.Int63()
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
