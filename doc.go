// Package gerrychain is a Markov-chain engine for sampling districting
// plans over a frozen adjacency graph.
//
// Starting from an initial partition of a graph's nodes into k districts,
// it draws a long sequence of neighboring partitions — filtered through
// contiguity, population-balance, and compactness constraints — so that
// an ensemble of plans can be compared against the initial one.
//
// Everything lives under flat, root-level subpackages, in the same shape
// this module's teacher (lvlath, a graph-algorithms library) organizes
// its own core/matrix/algorithms split:
//
//	graph/        — frozen adjacency graph, typed node/edge attribute columns
//	graphio/      — JSON graph serialization (the wire format external tools use)
//	assignment/   — bidirectional node<->part map, flip application, random seeding
//	partition/    — the core entity: assignment + graph ref + lazy updater cache
//	update/       — the standard updater library (Tally, cut edges, Election, ...)
//	spanningtree/ — weighted-Kruskal spanning tree draw + balanced bipartition
//	proposal/     — single-flip and ReCom (recombination) proposals
//	constraint/   — contiguity, population, and compactness validators
//	accept/       — always-accept and Metropolis-Hastings acceptance
//	chain/        — the MarkovChain driver
//	optimize/     — short-bursts, simulated annealing, and tilted-run wrappers
//	algorithms/   — BFS/DFS walkers shared by graph and constraint
//	builder/      — deterministic graph fixtures (grid, path, complete, random) for tests
//
// A typical host program builds a Graph (via graph.FromAdjacency or
// graphio.ReadJSON), seeds an initial Assignment, wraps both in a
// Partition with a Registry of updaters, and drives a chain.MarkovChain
// over a proposal/constraint/accept triple:
//
//	g, _ := graphio.ReadJSON(r)
//	asn, _ := assignment.FromRandom(g, 4, "population", 0.02, rng)
//	reg := partition.NewRegistry(update.Tally{Attr: "population", Alias: "population"})
//	initial, _ := partition.New(g, asn, reg)
//
//	validator := constraint.AllOf(
//	    constraint.SingleFlipContiguous(),
//	    constraint.WithinPercentOfIdealPopulation(initial, 0.02),
//	)
//	mc, _ := chain.New(proposal.ProposeRandomFlip, validator, accept.AlwaysAccept, initial, 1000)
//	for {
//	    p, ok, err := mc.Next(context.Background())
//	    if err != nil || !ok {
//	        break
//	    }
//	    _ = p
//	}
package gerrychain
