// # DFS — Depth-First Search
//
// Depth-First Search explores a Subgraph view as far as possible along
// each branch before backtracking. constraint.SingleFlipContiguous uses it
// for its bounded local check (the walk stops once the flipped node's
// old-part neighbors have all been reached).
//
// Steps:
//  1. Initialize:
//     - Validate start node is in the view.
//     - Prepare visited set, depth and parent maps.
//  2. Iteratively traverse (explicit stack, not recursion, so a
//     pathological line-shaped district can't blow the call stack):
//     2.1 Check for cancellation.
//     2.2 Pop a frame; if unvisited, mark visited, record depth, invoke OnVisit.
//     2.3 Push unvisited neighbors with Parent set and depth+1.
//
// Time complexity: O(V + E)
// Memory usage:    O(V)
package algorithms

import (
	"context"
	"errors"
	"fmt"
)

// ErrDFSStartNotInView is returned when the start node is absent from the view.
var ErrDFSStartNotInView = errors.New("algorithms: start node not in view")

// DFSOptions configures the DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation; if nil, background context is used.
	Ctx context.Context
	// OnVisit(v, depth) is called when v is first visited.
	// Returning an error aborts traversal (v is in Order).
	OnVisit func(v int, depth int) error
}

// DFSResult holds the outcome of a DFS traversal.
type DFSResult struct {
	// Order is the sequence of visited node ids.
	Order []int
	// Depth[v] = depth from start at first visit.
	Depth map[int]int
	// Parent[v] = predecessor in the DFS tree.
	Parent map[int]int
	// Visited tracks reached nodes.
	Visited map[int]bool
}

type dfsFrame struct {
	id, parent, depth int
	hasParent         bool
}

// DFS performs a depth-first search over sub starting from start using
// opts. Returns a DFSResult or an error (ErrDFSStartNotInView,
// context.Canceled, or an OnVisit error).
//
// Complexity: O(V + E), Memory: O(V)
func DFS(sub View, start int, opts *DFSOptions) (*DFSResult, error) {
	ctx := context.Background()
	if opts != nil && opts.Ctx != nil {
		ctx = opts.Ctx
	}
	if !sub.Has(start) {
		return nil, ErrDFSStartNotInView
	}

	res := &DFSResult{
		Order:   make([]int, 0),
		Depth:   make(map[int]int),
		Parent:  make(map[int]int),
		Visited: make(map[int]bool),
	}

	stack := []dfsFrame{{id: start, depth: 0}}
	for len(stack) > 0 {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}

		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if res.Visited[frame.id] {
			continue
		}
		res.Visited[frame.id] = true
		res.Depth[frame.id] = frame.depth
		if frame.hasParent {
			res.Parent[frame.id] = frame.parent
		}
		res.Order = append(res.Order, frame.id)
		if opts != nil && opts.OnVisit != nil {
			if err := opts.OnVisit(frame.id, frame.depth); err != nil {
				return res, fmt.Errorf("algorithms: OnVisit error at node %d: %w", frame.id, err)
			}
		}

		nbrs := sub.Neighbors(frame.id)
		for i := len(nbrs) - 1; i >= 0; i-- {
			nbr := nbrs[i]
			if !res.Visited[nbr] {
				stack = append(stack, dfsFrame{id: nbr, parent: frame.id, depth: frame.depth + 1, hasParent: true})
			}
		}
	}
	return res, nil
}
