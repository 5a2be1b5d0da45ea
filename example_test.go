package generator_test

import (
	"fmt"

	"github.com/yieldstep/generator"
)

func ExampleNew() {
	g, err := generator.New(func(c *generator.Context[string, struct{}]) string {
		c.Yield("a")
		c.Yield("b")
		return ""
	})
	if err != nil {
		panic(err)
	}

	for {
		step, err := g.Resume(struct{}{})
		if err != nil {
			panic(err)
		}
		if step.Done {
			break
		}
		fmt.Println(step.Value)
	}
	// Output:
	// a
	// b
}

func ExampleContext_Yield() {
	// Yield is a duplex channel: the consumer receives the yielded value and
	// injects the value that Yield returns.
	double, err := generator.New(func(c *generator.Context[int, int]) int {
		v := 1
		for {
			v = c.Yield(v * 2)
		}
	})
	if err != nil {
		panic(err)
	}
	defer double.Stop()

	send := 0
	for i := 0; i < 4; i++ {
		step, err := double.Resume(send)
		if err != nil {
			panic(err)
		}
		fmt.Println(step.Value)
		send = step.Value
	}
	// Output:
	// 2
	// 4
	// 8
	// 16
}

func ExampleRun() {
	countdown, err := generator.New(func(c *generator.Context[int, struct{}]) int {
		for i := 3; i > 0; i-- {
			c.Yield(i)
		}
		return 0
	})
	if err != nil {
		panic(err)
	}

	err = generator.Run(countdown, func(v int) struct{} {
		fmt.Println(v)
		return struct{}{}
	})
	if err != nil {
		panic(err)
	}
	// Output:
	// 3
	// 2
	// 1
}
