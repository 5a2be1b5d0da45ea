package generator

import (
	"runtime"
	"sync/atomic"
)

// Context is the handle passed to a computation body; it carries the saved
// execution state of the computation and exposes the pause point operation.
//
// A Context is exclusively owned by its computation. It must not be retained
// past the return of the body, nor shared with other computations.
type Context[R, S any] struct {
	// Value passed to Yield when the computation suspends, and value returned
	// to the computation when the consumer resumes it.
	recv R
	send S

	// Handshake channel between the consumer and the goroutine hosting the
	// body. Sends and receives strictly alternate: the resuming side sends to
	// transfer control in, the body sends to transfer control out, and the
	// channel is closed when the body can never run again.
	next chan struct{}

	// Set when the computation is asked to unwind instead of suspending.
	// Written and read only under the channel handshake.
	stop bool

	state atomic.Int32

	// Return value of the body, delivered by the completing step.
	result R

	// Failure captured from a panicking body.
	fail *PanicError
}

// Yield suspends the computation, surfacing v to the consumer as the value of
// this step, and pauses until the consumer resumes it. The value injected by
// the resuming call becomes the return value of Yield.
//
// Yield must be called from the computation body, on the goroutine that runs
// it. On a computation that has been stopped, Yield does not return: the body
// unwinds, running its pending defers.
func (c *Context[R, S]) Yield(v R) S {
	if c.stop {
		// The body observed its own Stop and tried to suspend anyway;
		// unwind instead.
		runtime.Goexit()
	}
	var zero S
	c.send = zero
	c.recv = v
	c.next <- struct{}{}
	<-c.next
	if c.stop {
		runtime.Goexit()
	}
	return c.send
}
