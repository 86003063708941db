package bst

import "cmp"

// Tree is an ordered map from keys to values backed by an unbalanced
// binary search tree. The zero Tree is not usable; construct with New
// or NewFunc.
type Tree[K, V any] struct {
	root    *node[K, V]
	size    int
	compare func(K, K) int

	// version counts structural mutations. Live iterators capture it
	// and refuse to continue after the structure changes underneath
	// them; value overwrites do not count.
	version uint64
}

// New creates an empty tree ordered by the natural ordering of K.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{compare: cmp.Compare[K]}
}

// NewFunc creates an empty tree ordered by the given comparison
// function. compare must implement a consistent total order (negative
// when a sorts before b, zero when equal, positive otherwise); an
// inconsistent comparator silently corrupts the ordering invariant and
// is not detected.
func NewFunc[K, V any](compare func(a, b K) int) *Tree[K, V] {
	return &Tree[K, V]{compare: compare}
}

// Len returns the number of distinct keys currently stored.
func (t *Tree[K, V]) Len() int {
	return t.size
}

// IsEmpty returns true if the tree holds no keys.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.size == 0
}

// Insert stores value under key. If the key is already present its
// value is overwritten and the previous value is returned with
// replaced == true; the tree structure and Len() are unchanged.
// Otherwise a new node is attached at the first absent slot reached by
// comparison-guided descent and replaced is false.
//
// No rebalancing occurs: inserting keys in sorted order builds a
// degenerate O(n)-depth tree. That is accepted behavior; use Builder
// for bulk loads that need a balanced shape.
func (t *Tree[K, V]) Insert(key K, value V) (prev V, replaced bool) {
	if t.root == nil {
		t.root = newNode(key, value)
		t.size++
		t.version++
		return prev, false
	}

	n := t.root
	for {
		switch c := t.compare(key, n.key); {
		case c < 0:
			if n.left == nil {
				n.left = newNode(key, value)
				t.size++
				t.version++
				return prev, false
			}
			n = n.left
		case c > 0:
			if n.right == nil {
				n.right = newNode(key, value)
				t.size++
				t.version++
				return prev, false
			}
			n = n.right
		default:
			prev = n.value
			n.value = value
			return prev, true
		}
	}
}

// Find returns the value stored under key. The second result is false
// if the key is absent; absence is an ordinary result, not an error.
func (t *Tree[K, V]) Find(key K) (V, bool) {
	n := t.find(key)
	if n == nil {
		var zero V
		return zero, false
	}
	return n.value, true
}

// find locates the node holding key, or nil.
func (t *Tree[K, V]) find(key K) *node[K, V] {
	n := t.root
	for n != nil {
		switch c := t.compare(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Min returns the smallest key and its value, or false if the tree is
// empty.
func (t *Tree[K, V]) Min() (K, V, bool) {
	if t.root == nil {
		var k K
		var v V
		return k, v, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.key, n.value, true
}

// Max returns the largest key and its value, or false if the tree is
// empty.
func (t *Tree[K, V]) Max() (K, V, bool) {
	if t.root == nil {
		var k K
		var v V
		return k, v, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.key, n.value, true
}

// Successor returns the smallest stored key strictly greater than key,
// or false if no such key exists. key itself need not be present.
func (t *Tree[K, V]) Successor(key K) (K, V, bool) {
	var succ *node[K, V]
	n := t.root
	for n != nil {
		if t.compare(key, n.key) < 0 {
			succ = n
			n = n.left
		} else {
			n = n.right
		}
	}
	if succ == nil {
		var k K
		var v V
		return k, v, false
	}
	return succ.key, succ.value, true
}

// Predecessor returns the largest stored key strictly less than key,
// or false if no such key exists. key itself need not be present.
func (t *Tree[K, V]) Predecessor(key K) (K, V, bool) {
	var pred *node[K, V]
	n := t.root
	for n != nil {
		if t.compare(key, n.key) > 0 {
			pred = n
			n = n.right
		} else {
			n = n.left
		}
	}
	if pred == nil {
		var k K
		var v V
		return k, v, false
	}
	return pred.key, pred.value, true
}

// Walk visits every pair in ascending key order, stopping early if fn
// returns false. Walk never mutates the tree.
func (t *Tree[K, V]) Walk(fn func(key K, value V) bool) {
	t.root.walk(fn)
}

// Height returns the number of nodes on the longest root-to-leaf path.
// Zero for an empty tree. O(n).
func (t *Tree[K, V]) Height() int {
	return t.root.height()
}

// Subtree returns a shared handle aliasing the node that holds key, or
// false if the key is absent. The handle stays valid for the life of
// the tree; see Handle.
func (t *Tree[K, V]) Subtree(key K) (*Handle[K, V], bool) {
	n := t.find(key)
	if n == nil {
		return nil, false
	}
	return &Handle[K, V]{tree: t, node: n}, true
}
