package generator

import (
	"golang.org/x/sync/errgroup"
)

// Run executes a computation to completion, calling f for each value that it
// yields, and sending back each value that f returns. It returns the failure
// captured from the body, if any.
func Run[R, S any](g Generator[R, S], f func(R) S) error {
	// The computation is run to completion, but f might panic in which case
	// we don't want to leave it in an uncompleted state and interrupt it
	// instead.
	defer func() {
		if !g.Done() {
			g.Stop()
		}
	}()

	var send S
	for {
		step, err := g.Resume(send)
		if err != nil {
			return err
		}
		if step.Done {
			return nil
		}
		send = f(step.Value)
	}
}

// RunAll drains each computation concurrently, one goroutine per computation
// so that every computation still has exactly one driver. It waits for all of
// them and returns the first failure; a failure in one computation does not
// interrupt the others, which are drained to their own completion.
//
// The callback is shared across drivers and must be safe for concurrent use.
func RunAll[R, S any](f func(R) S, gs ...Generator[R, S]) error {
	var group errgroup.Group
	for _, g := range gs {
		group.Go(func() error {
			return Run(g, f)
		})
	}
	return group.Wait()
}
