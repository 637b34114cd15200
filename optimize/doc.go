// Package optimize implements the optimizer layer: a single-metric
// hill-climber supporting short-bursts, simulated-annealing, and
// tilted-run strategies, plus Gingleator, a specialization scoring
// opportunity districts for minority representation analysis.
package optimize
