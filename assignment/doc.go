// Package assignment implements the bidirectional node<->part map that
// backs every Partition: part_of[v] for O(1) membership lookup, members[p]
// for O(1) per-part iteration, and an O(|flip|) in-place or copy-on-write
// update when nodes change parts.
package assignment
