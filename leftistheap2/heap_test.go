package leftistheap2_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pqtrees/leftistheap2"
)

func less(a, b int) bool { return a < b }

func TestPushFrontPopOrder(t *testing.T) {
	h := leftistheap2.New(less)
	h.Push(5)
	h.Push(1)
	h.Push(3)

	v, err := h.Front()
	require.NoError(t, err)
	require.Equal(t, 1, v)

	got := drain(t, h)
	require.Equal(t, []int{1, 3, 5}, got)
}

func TestFrontPopOnEmpty(t *testing.T) {
	h := leftistheap2.New(less)
	_, err := h.Front()
	require.ErrorIs(t, err, leftistheap2.ErrEmpty)
	_, err = h.Pop()
	require.ErrorIs(t, err, leftistheap2.ErrEmpty)
}

func TestMergeSymmetry(t *testing.T) {
	a := leftistheap2.New(less)
	for _, v := range []int{1, 3, 5} {
		a.Push(v)
	}
	b := leftistheap2.New(less)
	for _, v := range []int{2, 4, 6} {
		b.Push(v)
	}
	a.Merge(b)
	require.True(t, b.Empty())
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, drain(t, a))
}

func TestPushManyMatchesSequentialPush(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	values := make([]int, 200)
	for i := range values {
		values[i] = rng.Intn(1000)
	}

	sequential := leftistheap2.New(less)
	for _, v := range values {
		sequential.Push(v)
	}

	batch := leftistheap2.New(less)
	batch.PushMany(values)

	require.Equal(t, drain(t, sequential), drain(t, batch))
}

func TestHeapSortLaw(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	values := make([]int, 500)
	for i := range values {
		values[i] = rng.Intn(10000)
	}
	h := leftistheap2.New(less)
	h.PushMany(values)

	got := drain(t, h)
	want := append([]int(nil), values...)
	sort.Ints(want)
	require.Equal(t, want, got)
}

func TestValidateAcceptsWellFormedHeap(t *testing.T) {
	h := leftistheap2.New(less)
	values := []int{9, 4, 7, 1, 2, 8, 3, 6, 5, 0}
	h.PushMany(values)
	require.NoError(t, h.Validate(len(values)))
}

func TestClearEmptiesHeap(t *testing.T) {
	h := leftistheap2.New(less)
	h.PushMany([]int{1, 2, 3, 4, 5})
	h.Clear()
	require.True(t, h.Empty())
	require.Equal(t, 0, h.Len())
}

func drain(t *testing.T, h *leftistheap2.Heap[int]) []int {
	t.Helper()
	var out []int
	for !h.Empty() {
		v, err := h.Pop()
		require.NoError(t, err)
		out = append(out, v)
	}
	return out
}
