// Package graphio reads and writes the JSON adjacency-list wire format
// mandated for interop (spec 6): a top-level {directed, multigraph,
// graph, nodes, adjacency} document whose node entries carry typed
// attributes and whose adjacency entries are per-node neighbor lists
// with inlined edge attributes. It does not resolve initial assignments:
// no function here turns an attribute name or an explicit id->part map
// into the internal-index mapping assignment.OfMapping expects.
package graphio
