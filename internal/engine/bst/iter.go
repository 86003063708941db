package bst

// Iterator performs a lazy inorder traversal, yielding pairs in
// ascending key order. Obtain one from Tree.Items or Handle.Items;
// calling either again restarts traversal from the beginning.
//
// An Iterator is invalidated by structural mutation of its tree: the
// next call to Next panics. Overwriting the value of an existing key
// does not invalidate iterators.
type Iterator[K, V any] struct {
	tree    *Tree[K, V]
	stack   []*node[K, V]
	current *node[K, V]
	version uint64
	started bool
}

// Items returns an inorder iterator over the whole tree.
func (t *Tree[K, V]) Items() *Iterator[K, V] {
	return &Iterator[K, V]{
		tree:    t,
		stack:   make([]*node[K, V], 0, 16),
		version: t.version,
	}
}

// Next advances to the next pair. Returns true if a pair is available,
// false when traversal is complete. Panics if the tree was structurally
// modified since the iterator was created.
func (it *Iterator[K, V]) Next() bool {
	if it.version != it.tree.version {
		panic("bst: tree modified during iteration")
	}

	if !it.started {
		it.started = true
		it.pushLeft(it.tree.root)
	} else if it.current != nil {
		it.pushLeft(it.current.right)
	}

	if len(it.stack) == 0 {
		it.current = nil
		return false
	}

	it.current = it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	return true
}

// pushLeft pushes n and its chain of left children onto the stack.
func (it *Iterator[K, V]) pushLeft(n *node[K, V]) {
	for n != nil {
		it.stack = append(it.stack, n)
		n = n.left
	}
}

// Key returns the key of the current pair. Only valid after a call to
// Next that returned true.
func (it *Iterator[K, V]) Key() K {
	return it.current.key
}

// Value returns the value of the current pair. Only valid after a call
// to Next that returned true.
func (it *Iterator[K, V]) Value() V {
	return it.current.value
}
