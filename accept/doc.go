// Package accept provides the chain's acceptance functions: always
// accepting a valid candidate, and Metropolis-Hastings acceptance driven
// by a score function and a beta (inverse temperature) schedule.
package accept
