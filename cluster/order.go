// Package cluster — leaf ordering for dendrogram rendering.
package cluster

// leafOrder flattens the merge tree into the left-to-right leaf sequence
// a renderer should place along the dendrogram axis: for every internal
// node, all leaves under its left child precede all leaves under its
// right child.
//
// Complexity: O(N) time and space (iterative walk, no recursion).
func leafOrder(merges []Merge, n int) []int {
	if len(merges) == 0 {
		// Single leaf, no merges recorded.
		return []int{0}
	}

	var (
		out   = make([]int, 0, n)
		root  = n + len(merges) - 1
		stack = []int{root}
		id    int
	)
	for len(stack) > 0 {
		id = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if id < n {
			out = append(out, id)
			continue
		}
		m := merges[id-n]
		// Right pushed first so the left child pops (and emits) first.
		stack = append(stack, m.Right, m.Left)
	}

	return out
}
