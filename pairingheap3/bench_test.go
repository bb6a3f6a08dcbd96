package pairingheap3_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pqtrees/pairingheap3"
)

func BenchmarkPushPop(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	h := pairingheap3.New(less)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Push(rng.Int())
		if i%2 == 0 {
			_, _ = h.Pop()
		}
	}
}

func BenchmarkDecrease(b *testing.B) {
	rng := rand.New(rand.NewSource(3))
	h := pairingheap3.New(less)
	cursors := make([]pairingheap3.Iterator[int], 0, 1000)
	for i := 0; i < 1000; i++ {
		cursors = append(cursors, h.Push(rng.Intn(1<<30)+1<<30))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := cursors[i%len(cursors)]
		it.Set(-i)
		h.Decrease(it)
	}
}
