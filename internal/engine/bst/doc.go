// Package bst provides an ordered binary search tree mapping totally
// ordered keys to arbitrary values.
//
// The tree is built by insertion only: descending from the root, a new
// node is attached at the first absent child slot. Existing nodes are
// never rewired, so a handle to a node stays valid for the life of the
// tree and no cycles can form. Inserting an existing key overwrites the
// stored value and leaves the structure and size unchanged.
//
// Key features:
//   - O(depth) insert and find; no rebalancing, so adversarial insertion
//     order (e.g. strictly increasing keys) degrades depth to O(n)
//   - Restartable lazy inorder iteration yielding keys in ascending order
//   - Shared handles aliasing subtrees from outside the tree, with
//     runtime-checked invalidation of iterators on structural mutation
//   - Balanced bulk construction via Builder for large datasets
//
// Basic usage:
//
//	t := bst.New[int, string]()
//	t.Insert(5, "a")
//	v, ok := t.Find(5)          // "a", true
//	for it := t.Items(); it.Next(); {
//		fmt.Println(it.Key(), it.Value())
//	}
//
// The tree is not safe for concurrent use. Multiple goroutines may read
// an unchanging tree, but callers must serialize mutation externally.
package bst
