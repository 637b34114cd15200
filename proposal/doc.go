// Package proposal implements the chain's step proposals: a single
// random boundary-node flip, and ReCom (recombination), which merges two
// adjacent parts and re-splits them along a population-balanced spanning
// tree cut.
package proposal
