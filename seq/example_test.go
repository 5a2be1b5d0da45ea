package seq_test

import (
	"fmt"

	"github.com/yieldstep/generator/seq"
)

func ExampleGenerate() {
	squares := seq.Generate(func(yield func(int)) {
		for i := 1; ; i++ {
			yield(i * i)
		}
	})
	defer squares.Stop()

	for v := range seq.Values(seq.Take[int](squares, 4)) {
		fmt.Println(v)
	}
	// Output:
	// 1
	// 4
	// 9
	// 16
}

func ExampleFilter() {
	even := func(v int) bool { return v%2 == 0 }
	evens, err := seq.Collect(seq.Filter(seq.FromSlice([]int{1, 2, 3, 4}), even))
	if err != nil {
		panic(err)
	}
	fmt.Println(evens)
	// Output:
	// [2 4]
}
