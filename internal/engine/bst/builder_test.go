package bst

import (
	"math/rand"
	"testing"
)

func TestBuilderEmpty(t *testing.T) {
	b := NewBuilder[int, int]()
	tr := b.Build()
	if !tr.IsEmpty() {
		t.Error("building from no pairs should give an empty tree")
	}
}

func TestBuilderBalanced(t *testing.T) {
	// 1023 distinct keys fit a perfect tree of height 10; midpoint
	// construction must reach it regardless of arrival order.
	b := NewBuilder[int, int]()
	perm := rand.New(rand.NewSource(42)).Perm(1023)
	for _, k := range perm {
		b.Add(k, k)
	}

	tr := b.Build()
	if tr.Len() != 1023 {
		t.Fatalf("Len() = %d, want 1023", tr.Len())
	}
	if h := tr.Height(); h != 10 {
		t.Errorf("Height() = %d, want 10", h)
	}

	keys := collectKeys(tr)
	for i, k := range keys {
		if k != i {
			t.Fatalf("keys[%d] = %d, want %d", i, k, i)
		}
	}
}

func TestBuilderSequentialKeys(t *testing.T) {
	// The motivating case: sorted input that Insert would turn into a
	// depth-n chain stays logarithmic through the builder.
	b := NewBuilder[int, int]()
	for k := 1; k <= 100; k++ {
		b.Add(k, k)
	}
	tr := b.Build()
	if h := tr.Height(); h != 7 {
		t.Errorf("Height() = %d, want 7 for 100 keys", h)
	}
}

func TestBuilderDuplicateLastWins(t *testing.T) {
	b := NewBuilder[string, int]()
	b.Add("k", 1)
	b.Add("other", 5)
	b.Add("k", 2)

	tr := b.Build()
	if tr.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tr.Len())
	}
	if v, _ := tr.Find("k"); v != 2 {
		t.Errorf("Find(k) = %d, want 2 (last added wins)", v)
	}
}

func TestBuilderReset(t *testing.T) {
	b := NewBuilder[int, int]()
	b.Add(1, 1)
	b.Reset()
	if b.Len() != 0 {
		t.Errorf("Len() = %d after Reset, want 0", b.Len())
	}
	if tr := b.Build(); !tr.IsEmpty() {
		t.Error("Build after Reset should give an empty tree")
	}
}

func TestBuilderFuncOrdering(t *testing.T) {
	b := NewBuilderFunc[int, int](func(a, x int) int { return x - a })
	for _, k := range []int{1, 3, 2} {
		b.Add(k, k)
	}
	tr := b.Build()
	keys := collectKeys(tr)
	want := []int{3, 2, 1}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %d, want %d", i, keys[i], want[i])
		}
	}
	// The built tree keeps the builder's comparator.
	tr.Insert(0, 0)
	if k, _, _ := tr.Max(); k != 0 {
		t.Errorf("Max under reverse ordering = %d, want 0", k)
	}
}
