package builder

import "github.com/mggg/gerrychain-go/graph"

// buildWithPopulation resolves cfg's population function (if any) into a
// node attribute Column and delegates to graph.FromAdjacency — the one
// piece of construction logic every topology factory shares.
func buildWithPopulation(ids []string, edges []graph.EdgeSpec, cfg config) (*graph.Graph, error) {
	var nodeAttrs map[string]graph.Column
	if cfg.popFn != nil {
		col := make(graph.Column, len(ids))
		for i := range ids {
			col[i] = graph.IntValue(cfg.popFn(i, cfg.rng))
		}
		nodeAttrs = map[string]graph.Column{cfg.popName: col}
	}
	return graph.FromAdjacency(ids, edges, nodeAttrs, nil)
}
