// Seqdemo builds lazy sequences from the command line and drains them to
// stdout, one element per line.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yieldstep/generator/seq"
)

func main() {
	app := &cli.App{
		Name:  "seqdemo",
		Usage: "drive lazy sequences from the command line",
		Commands: []*cli.Command{
			{
				Name:  "range",
				Usage: "print the integers in [start, stop)",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "start", Value: 0, Usage: "first value"},
					&cli.IntFlag{Name: "stop", Value: 10, Usage: "end of the range, not included"},
					&cli.IntFlag{Name: "step", Value: 1, Usage: "distance between values"},
				},
				Action: func(c *cli.Context) error {
					return printAll(seq.Range(c.Int("start"), c.Int("stop"), c.Int("step")))
				},
			},
			{
				Name:  "evens",
				Usage: "print the first n even numbers",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "n", Value: 10, Usage: "how many to print"},
				},
				Action: func(c *cli.Context) error {
					evens := seq.Filter(seq.Count(0), func(v int) bool { return v%2 == 0 })
					return printAll(seq.Take(evens, c.Int("n")))
				},
			},
			{
				Name:  "fib",
				Usage: "print the first n Fibonacci numbers",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "n", Value: 10, Usage: "how many to print"},
				},
				Action: func(c *cli.Context) error {
					fib := seq.Generate(func(yield func(int)) {
						a, b := 1, 1
						for {
							yield(a)
							a, b = b, a+b
						}
					})
					defer fib.Stop()
					return printAll(seq.Take[int](fib, c.Int("n")))
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func printAll(s seq.Seq[int]) error {
	for s.Next() {
		fmt.Println(s.Value())
	}
	return s.Err()
}
