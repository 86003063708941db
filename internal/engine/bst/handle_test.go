package bst

import "testing"

func TestSubtreeAbsent(t *testing.T) {
	tr := New[int, string]()
	tr.Insert(1, "a")
	if _, ok := tr.Subtree(2); ok {
		t.Error("Subtree of absent key should report absent")
	}
}

func TestHandleAccess(t *testing.T) {
	tr := New[int, string]()
	tr.Insert(5, "root")
	tr.Insert(3, "left")
	tr.Insert(8, "right")

	h, ok := tr.Subtree(5)
	if !ok {
		t.Fatal("Subtree(5) should be present")
	}
	if h.Key() != 5 || h.Value() != "root" {
		t.Errorf("handle = (%d, %q), want (5, root)", h.Key(), h.Value())
	}

	left := h.Left()
	if left == nil || left.Key() != 3 {
		t.Fatal("Left() should alias key 3")
	}
	right := h.Right()
	if right == nil || right.Key() != 8 {
		t.Fatal("Right() should alias key 8")
	}
	if left.Left() != nil || left.Right() != nil {
		t.Error("leaf handle should have nil children")
	}
}

func TestHandleSetValue(t *testing.T) {
	tr := New[int, string]()
	tr.Insert(5, "old")

	h, _ := tr.Subtree(5)
	h.SetValue("new")

	if v, _ := tr.Find(5); v != "new" {
		t.Errorf("Find(5) = %q after SetValue, want %q", v, "new")
	}
	if tr.Len() != 1 {
		t.Errorf("Len() = %d after SetValue, want 1", tr.Len())
	}
}

func TestHandleAliasing(t *testing.T) {
	// Two independent handles to the same node observe each other's
	// value mutations.
	tr := New[int, int]()
	tr.Insert(7, 1)

	a, _ := tr.Subtree(7)
	b, _ := tr.Subtree(7)
	a.SetValue(2)
	if b.Value() != 2 {
		t.Errorf("aliased handle value = %d, want 2", b.Value())
	}
}

func TestHandleValidAcrossInsert(t *testing.T) {
	// Insertion attaches new nodes without rewiring existing ones, so
	// a handle taken earlier keeps observing its subtree, including
	// nodes attached below it later.
	tr := New[int, int]()
	tr.Insert(10, 10)
	tr.Insert(5, 5)

	h, _ := tr.Subtree(5)
	tr.Insert(3, 3)
	tr.Insert(7, 7)

	var keys []int
	h.Walk(func(k, _ int) bool {
		keys = append(keys, k)
		return true
	})
	want := []int{3, 5, 7}
	if len(keys) != len(want) {
		t.Fatalf("subtree walk yielded %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %d, want %d", i, keys[i], want[i])
		}
	}
	if h.Len() != 3 {
		t.Errorf("subtree Len() = %d, want 3", h.Len())
	}
}

func TestHandleItems(t *testing.T) {
	tr := New[int, int]()
	for _, k := range []int{10, 5, 15, 3, 7, 12, 20} {
		tr.Insert(k, k)
	}

	h, _ := tr.Subtree(15)
	pairs := drain(h.Items())
	want := []int{12, 15, 20}
	if len(pairs) != len(want) {
		t.Fatalf("subtree iterator yielded %d pairs, want %d", len(pairs), len(want))
	}
	for i, k := range want {
		if pairs[i].Key != k {
			t.Errorf("pair %d key = %d, want %d", i, pairs[i].Key, k)
		}
	}
}
