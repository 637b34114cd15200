// Package chain drives the Markov chain walk: repeatedly proposes a
// flip, checks it against a constraint.Validator, decides whether to
// accept it, and yields the resulting sequence of partitions one step
// at a time via Next.
package chain
