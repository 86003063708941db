package bst

import (
	"cmp"
	"slices"
)

// Pair is one key-value entry, used for bulk construction and dataset
// exchange.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Builder accumulates pairs and builds a balanced tree from them in one
// step. Sequential Insert calls on a Tree preserve arrival order and
// can degenerate to O(n) depth; Build sorts the accumulated pairs and
// attaches them by midpoint recursion, giving ceil(log2(n+1)) height
// regardless of arrival order.
//
// Duplicate keys follow the tree's overwrite policy: the last pair
// added for a key wins.
type Builder[K, V any] struct {
	pairs   []Pair[K, V]
	compare func(K, K) int
}

// NewBuilder creates a builder ordered by the natural ordering of K.
func NewBuilder[K cmp.Ordered, V any]() *Builder[K, V] {
	return &Builder[K, V]{compare: cmp.Compare[K]}
}

// NewBuilderFunc creates a builder ordered by the given comparison
// function. The built tree uses the same function.
func NewBuilderFunc[K, V any](compare func(a, b K) int) *Builder[K, V] {
	return &Builder[K, V]{compare: compare}
}

// Add appends one pair to the builder.
func (b *Builder[K, V]) Add(key K, value V) {
	b.pairs = append(b.pairs, Pair[K, V]{Key: key, Value: value})
}

// AddPairs appends a batch of pairs to the builder.
func (b *Builder[K, V]) AddPairs(pairs []Pair[K, V]) {
	b.pairs = append(b.pairs, pairs...)
}

// Len returns the number of pairs accumulated so far, counting
// duplicates.
func (b *Builder[K, V]) Len() int {
	return len(b.pairs)
}

// Reset discards the accumulated pairs for reuse.
func (b *Builder[K, V]) Reset() {
	b.pairs = b.pairs[:0]
}

// Build creates a balanced tree from the accumulated pairs and resets
// the builder.
func (b *Builder[K, V]) Build() *Tree[K, V] {
	t := NewFunc[K, V](b.compare)
	if len(b.pairs) == 0 {
		return t
	}

	// Stable sort so the last-added pair for a key survives dedup.
	slices.SortStableFunc(b.pairs, func(x, y Pair[K, V]) int {
		return b.compare(x.Key, y.Key)
	})

	deduped := b.pairs[:0]
	for _, p := range b.pairs {
		if len(deduped) > 0 && b.compare(deduped[len(deduped)-1].Key, p.Key) == 0 {
			deduped[len(deduped)-1] = p
			continue
		}
		deduped = append(deduped, p)
	}

	t.root = buildBalanced(deduped)
	t.size = len(deduped)
	b.pairs = nil
	return t
}

// buildBalanced attaches the sorted distinct pairs by midpoint
// recursion.
func buildBalanced[K, V any](pairs []Pair[K, V]) *node[K, V] {
	if len(pairs) == 0 {
		return nil
	}
	mid := len(pairs) / 2
	n := newNode(pairs[mid].Key, pairs[mid].Value)
	n.left = buildBalanced(pairs[:mid])
	n.right = buildBalanced(pairs[mid+1:])
	return n
}
