package bst

// Stats holds aggregate shape metrics for a tree, computed on demand.
type Stats struct {
	// Size is the number of distinct keys stored.
	Size int

	// Height is the number of nodes on the longest root-to-leaf path.
	Height int

	// Leaves is the number of nodes with no children.
	Leaves int

	// Internal is the number of nodes with at least one child.
	Internal int
}

// Stats walks the tree and returns its shape metrics. O(n).
func (t *Tree[K, V]) Stats() Stats {
	s := Stats{Size: t.size}
	collectStats(t.root, 1, &s)
	return s
}

func collectStats[K, V any](n *node[K, V], depth int, s *Stats) {
	if n == nil {
		return
	}
	if depth > s.Height {
		s.Height = depth
	}
	if n.left == nil && n.right == nil {
		s.Leaves++
	} else {
		s.Internal++
	}
	collectStats(n.left, depth+1, s)
	collectStats(n.right, depth+1, s)
}
