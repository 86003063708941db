package bst

// Handle is a shared alias to one node of a tree, usable from outside
// the tree alongside any number of other handles to overlapping
// subtrees. Go's garbage collector supplies the shared-ownership half
// of the discipline (the node outlives the handle set referencing it);
// the tree's version counter supplies the runtime mutation check
// (iterators over a structurally modified tree panic rather than
// observe a torn traversal).
//
// A handle stays valid across later inserts: insertion only attaches
// new nodes at absent slots and never rewires existing ones. The key is
// immutable through a handle; rewriting it could break the ordering
// invariant. The value may be rewritten at any time.
type Handle[K, V any] struct {
	tree *Tree[K, V]
	node *node[K, V]
}

// Root returns a handle to the root node, or nil if the tree is empty.
func (t *Tree[K, V]) Root() *Handle[K, V] {
	if t.root == nil {
		return nil
	}
	return &Handle[K, V]{tree: t, node: t.root}
}

// Key returns the key stored at the aliased node.
func (h *Handle[K, V]) Key() K {
	return h.node.key
}

// Value returns the value stored at the aliased node.
func (h *Handle[K, V]) Value() V {
	return h.node.value
}

// SetValue overwrites the value stored at the aliased node. This is a
// value-only mutation: it does not invalidate iterators and does not
// affect Len().
func (h *Handle[K, V]) SetValue(value V) {
	h.node.value = value
}

// Left returns a handle to the left child, or nil if the slot is
// absent.
func (h *Handle[K, V]) Left() *Handle[K, V] {
	if h.node.left == nil {
		return nil
	}
	return &Handle[K, V]{tree: h.tree, node: h.node.left}
}

// Right returns a handle to the right child, or nil if the slot is
// absent.
func (h *Handle[K, V]) Right() *Handle[K, V] {
	if h.node.right == nil {
		return nil
	}
	return &Handle[K, V]{tree: h.tree, node: h.node.right}
}

// Walk visits the subtree rooted at the aliased node in ascending key
// order, stopping early if fn returns false.
func (h *Handle[K, V]) Walk(fn func(key K, value V) bool) {
	h.node.walk(fn)
}

// Items returns an inorder iterator over the subtree rooted at the
// aliased node. The iterator is subject to the same invalidation rule
// as tree-wide iterators.
func (h *Handle[K, V]) Items() *Iterator[K, V] {
	it := &Iterator[K, V]{
		tree:    h.tree,
		stack:   make([]*node[K, V], 0, 16),
		version: h.tree.version,
		started: true,
	}
	it.pushLeft(h.node)
	return it
}

// Len returns the number of keys in the subtree rooted at the aliased
// node. O(n) over the subtree.
func (h *Handle[K, V]) Len() int {
	count := 0
	h.node.walk(func(K, V) bool {
		count++
		return true
	})
	return count
}
