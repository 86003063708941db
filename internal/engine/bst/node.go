package bst

// node is a single tree vertex holding one key-value pair and two
// optional child pointers. It is a passive record; every algorithm
// lives on Tree. A nil child pointer means the slot is absent.
//
// Ordering invariant: every key under left is strictly less than key,
// every key under right is strictly greater. The key is never changed
// after insertion; only value may be rewritten.
type node[K, V any] struct {
	key   K
	value V
	left  *node[K, V]
	right *node[K, V]
}

func newNode[K, V any](key K, value V) *node[K, V] {
	return &node[K, V]{key: key, value: value}
}

// height returns the number of nodes on the longest root-to-leaf path
// of the subtree rooted at n. O(n); used by Height and Stats.
func (n *node[K, V]) height() int {
	if n == nil {
		return 0
	}
	lh := n.left.height()
	rh := n.right.height()
	if lh > rh {
		return lh + 1
	}
	return rh + 1
}

// walk visits the subtree rooted at n in inorder, calling fn for each
// pair. Returns false as soon as fn does, aborting the traversal.
func (n *node[K, V]) walk(fn func(K, V) bool) bool {
	if n == nil {
		return true
	}
	if !n.left.walk(fn) {
		return false
	}
	if !fn(n.key, n.value) {
		return false
	}
	return n.right.walk(fn)
}
