package mindistheap3_test

import (
	"fmt"

	"github.com/katalvlaran/pqtrees/mindistheap3"
)

func ExampleHeap_Decrease() {
	h := mindistheap3.New(func(a, b int) bool { return a < b })
	h.Push(10)
	h.Push(20)
	it := h.Push(30)

	it.Set(1)
	h.Decrease(it)

	v, _ := h.Front()
	fmt.Println(v)
	// Output: 1
}

func ExampleHeap_Remove() {
	h := mindistheap3.New(func(a, b int) bool { return a < b })
	h.PushMany([]int{1, 3, 5, 2, 4, 6})

	for it := h.Begin(); !mindistheap3.Equal(it, h.End()); {
		if it.Value()%2 != 0 {
			it = h.Remove(it)
		} else {
			it = it.Next()
		}
	}

	for !h.Empty() {
		v, _ := h.Pop()
		fmt.Println(v)
	}
	// Output:
	// 2
	// 4
	// 6
}
