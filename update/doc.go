// Package update provides the standard library of partition.Updater and
// partition.DiffUpdater implementations: population tallies, cut edges,
// geographic aggregates, election results, county splits, part flows,
// and per-part spanning trees.
package update
