// Package algorithms implements classic graph algorithms on graph.Subgraph
// views.
//
// # BFS — Breadth-First Search
//
// Breadth-First Search explores a Subgraph view level by level, starting
// from a given node. It is the walker graph.ConnectedComponents uses for
// each component's flood fill.
//
// Steps:
//  1. Initialize:
//     - Mark start visited, depth=0, enqueue.
//     - Invoke OnEnqueue hook.
//  2. Loop until queue empty:
//     2.1 Dequeue an item (node, depth).
//     - Invoke OnDequeue hook.
//     2.2 Visit the node:
//     - Append to result.Order.
//     - Invoke OnVisit; if error, abort.
//     2.3 Enqueue unvisited neighbors:
//     - Mark visited, set parent and depth+1.
//     - Invoke OnEnqueue.
//  3. Check context cancellation before each dequeue.
//
// Time complexity: O(V + E)
// Memory usage:    O(V)
package algorithms

import (
	"context"
	"errors"
	"fmt"
)

// View is the minimal adjacency surface a traversal needs: a node's
// in-view neighbors, and whether a node belongs to the view at all.
// graph.Subgraph satisfies this structurally (no import of this package
// required from graph, which keeps graph -> algorithms a one-way edge
// even though graph.ConnectedComponents is the caller).
type View interface {
	Neighbors(v int) []int
	Has(v int) bool
}

// ErrStartNotInView is returned when the start node is not a member of
// the view being walked.
var ErrStartNotInView = errors.New("algorithms: start node not in view")

// BFSOptions configures traversal behavior.
type BFSOptions struct {
	// Ctx allows cancellation; if nil, context.Background() is used.
	Ctx context.Context

	// OnEnqueue(v, depth) is called immediately after v is enqueued.
	OnEnqueue func(v int, depth int)
	// OnDequeue(v, depth) is called right after v is dequeued, before it
	// is visited.
	OnDequeue func(v int, depth int)
	// OnVisit(v, depth) is called when v is visited.
	// If it returns an error, traversal aborts (v is already in Order).
	OnVisit func(v int, depth int) error
}

// BFSResult holds the outcome of a BFS traversal.
type BFSResult struct {
	// Order is the sequence of visited node ids.
	Order []int
	// Depth maps node id -> distance (#edges) from start.
	Depth map[int]int
	// Parent maps node id -> predecessor id in the BFS tree.
	Parent map[int]int
	// Visited tracks which nodes have been reached.
	Visited map[int]bool
}

type queueItem struct {
	id    int
	depth int
}

// BFS performs a breadth-first search over sub starting from start using
// opts. It returns a BFSResult and any error encountered (e.g.
// ErrStartNotInView, context.Canceled, or a user-supplied OnVisit error).
//
// Complexity: O(V + E), Memory: O(V)
func BFS(sub View, start int, opts *BFSOptions) (*BFSResult, error) {
	ctx := context.Background()
	if opts != nil && opts.Ctx != nil {
		ctx = opts.Ctx
	}
	if !sub.Has(start) {
		return nil, ErrStartNotInView
	}

	res := &BFSResult{
		Order:   make([]int, 0),
		Depth:   map[int]int{start: 0},
		Parent:  make(map[int]int),
		Visited: map[int]bool{start: true},
	}
	if opts != nil && opts.OnEnqueue != nil {
		opts.OnEnqueue(start, 0)
	}

	queue := []queueItem{{id: start, depth: 0}}
	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}

		item := queue[0]
		queue = queue[1:]
		if opts != nil && opts.OnDequeue != nil {
			opts.OnDequeue(item.id, item.depth)
		}

		res.Order = append(res.Order, item.id)
		if opts != nil && opts.OnVisit != nil {
			if err := opts.OnVisit(item.id, item.depth); err != nil {
				return res, fmt.Errorf("algorithms: OnVisit error at node %d: %w", item.id, err)
			}
		}

		for _, nbr := range sub.Neighbors(item.id) {
			if !res.Visited[nbr] {
				res.Visited[nbr] = true
				res.Parent[nbr] = item.id
				d := item.depth + 1
				res.Depth[nbr] = d
				if opts != nil && opts.OnEnqueue != nil {
					opts.OnEnqueue(nbr, d)
				}
				queue = append(queue, queueItem{id: nbr, depth: d})
			}
		}
	}
	return res, nil
}
