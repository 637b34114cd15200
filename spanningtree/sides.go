package spanningtree

// sidesFromCut labels every member 0 (inside the cut subtree rooted at
// cut) or 1 (the complement), via one traversal of the cut subtree.
func sidesFromCut(children map[int][]int, cut int, members []int) map[int]int {
	inSubtree := make(map[int]bool, len(members))
	stack := []int{cut}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		inSubtree[u] = true
		stack = append(stack, children[u]...)
	}

	sides := make(map[int]int, len(members))
	for _, v := range members {
		if inSubtree[v] {
			sides[v] = 0
		} else {
			sides[v] = 1
		}
	}
	return sides
}
