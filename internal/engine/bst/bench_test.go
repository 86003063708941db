package bst

import (
	"math/rand"
	"testing"
)

func randomKeys(n int) []int {
	rng := rand.New(rand.NewSource(99))
	keys := make([]int, n)
	for i := range keys {
		keys[i] = rng.Int()
	}
	return keys
}

func BenchmarkInsertRandom(b *testing.B) {
	keys := randomKeys(b.N)
	b.ResetTimer()

	tr := New[int, int]()
	for i := 0; i < b.N; i++ {
		tr.Insert(keys[i], i)
	}
}

func BenchmarkInsertSequential(b *testing.B) {
	// Worst case: sorted keys build a right chain, so every insert
	// descends the full depth. Fixed tree size per iteration keeps the
	// quadratic cost bounded.
	const size = 1024
	for i := 0; i < b.N; i++ {
		tr := New[int, int]()
		for k := 0; k < size; k++ {
			tr.Insert(k, k)
		}
	}
}

func BenchmarkFind(b *testing.B) {
	const size = 1 << 16
	keys := randomKeys(size)
	tr := New[int, int]()
	for i, k := range keys {
		tr.Insert(k, i)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tr.Find(keys[i%size])
	}
}

func BenchmarkWalk(b *testing.B) {
	const size = 1 << 14
	tr := New[int, int]()
	for _, k := range randomKeys(size) {
		tr.Insert(k, k)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		count := 0
		tr.Walk(func(int, int) bool {
			count++
			return true
		})
	}
}

func BenchmarkIterator(b *testing.B) {
	const size = 1 << 14
	tr := New[int, int]()
	for _, k := range randomKeys(size) {
		tr.Insert(k, k)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for it := tr.Items(); it.Next(); {
			_ = it.Key()
		}
	}
}

func BenchmarkBuilderBuild(b *testing.B) {
	const size = 1 << 14
	keys := randomKeys(size)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		bld := NewBuilder[int, int]()
		for _, k := range keys {
			bld.Add(k, k)
		}
		bld.Build()
	}
}
