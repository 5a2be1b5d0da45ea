package generator

// State describes where a computation is in its lifecycle.
type State int32

const (
	// Created is the state of a computation whose body has not started
	// executing yet.
	Created State = iota
	// Suspended is the state of a computation parked at a pause point,
	// waiting to be resumed.
	Suspended
	// Running is the state of a computation whose body is executing, which
	// only happens while a Resume call for it is in flight.
	Running
	// Completed is the terminal state: the body returned, panicked, or the
	// computation was stopped. A completed computation never runs again.
	Completed
)

func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case Suspended:
		return "suspended"
	case Running:
		return "running"
	case Completed:
		return "completed"
	default:
		return "invalid"
	}
}

// Step is the record returned by one resumption of a computation.
//
// Done is true if and only if the computation reached the Completed state.
// The step that observes completion carries the body's return value; steps
// taken after that carry the zero value.
type Step[R any] struct {
	Value R
	Done  bool
}

// Body is the entry point of a computation. The value it returns becomes the
// Value of the completing Step. Arguments are bound by closing over them when
// the body is created.
type Body[R, S any] func(*Context[R, S]) R

// Generator instances expose APIs allowing the program to drive the execution
// of resumable computations.
//
// The type parameter R represents the type of values that the program can
// receive from the computation (what it yields), and the type parameter S is
// what the program can send back to a pause point.
//
// A generator must be driven by one consumer at a time; concurrent callers
// have to serialize externally.
type Generator[R, S any] struct{ ctx *Context[R, S] }

// New creates a new computation which executes body as entry point. The body
// is bound but not started; the computation begins in the Created state and
// only makes progress during Resume calls.
//
// New returns ErrNilBody when body is nil, and never executes user code.
func New[R, S any](body Body[R, S]) (Generator[R, S], error) {
	if body == nil {
		return Generator[R, S]{}, ErrNilBody
	}

	c := &Context[R, S]{
		next: make(chan struct{}),
	}

	go func() {
		defer func() {
			if v := recover(); v != nil {
				c.fail = newPanicError(v)
			}
			close(c.next)
		}()

		<-c.next

		if !c.stop {
			c.result = body(c)
		}
	}()

	return Generator[R, S]{ctx: c}, nil
}

// Resume executes the computation until its next pause point, or until
// completion, injecting v as the result of the pause point it last suspended
// at. The injected value of the very first resumption is discarded, since the
// body starts from its top and has no pause point to receive it.
//
// Resuming a Running computation is invalid and returns ErrReentrant without
// disturbing the step in flight. Resuming a Completed computation is a no-op
// that reports completion. If the body panics, the panic is captured and
// returned as a *PanicError by the Resume call that observed it; the
// computation is permanently inert afterwards.
func (g Generator[R, S]) Resume(v S) (Step[R], error) {
	c := g.ctx

	switch State(c.state.Load()) {
	case Running:
		return Step[R]{}, ErrReentrant
	case Completed:
		return Step[R]{Done: true}, nil
	}
	c.state.Store(int32(Running))

	c.send = v
	c.next <- struct{}{}

	if _, ok := <-c.next; ok {
		c.state.Store(int32(Suspended))
		return Step[R]{Value: c.recv}, nil
	}

	// The channel was closed: the body returned, panicked, or unwound.
	c.state.Store(int32(Completed))
	if c.fail != nil {
		return Step[R]{}, c.fail
	}
	return Step[R]{Value: c.result, Done: true}, nil
}

// State reports where the computation is in its lifecycle.
func (g Generator[R, S]) State() State {
	return State(g.ctx.state.Load())
}

// Done returns true if the computation completed, either because it was
// stopped, because its body returned, or because its body panicked.
func (g Generator[R, S]) Done() bool {
	return g.State() == Completed
}

// Err returns the failure captured from the computation body, if any. It is
// the same *PanicError value that the observing Resume call returned, kept
// accessible for consumers driving the computation through Next.
func (g Generator[R, S]) Err() error {
	if f := g.ctx.fail; f != nil {
		return f
	}
	return nil
}

// Stop interrupts the computation, forcing it to the Completed state.
//
// A Created or Suspended computation transitions immediately: its saved
// context unwinds, running each pending defer in the inverse order that it
// was declared, without executing any statement past the last pause point.
// Calling Stop from within the body marks the computation instead; the next
// pause point unwinds rather than suspending.
//
// Stop is idempotent, calling it multiple times or after completion has no
// effect. The program does not have to call it to release the resources of a
// computation that was drained to completion, only to release one abandoned
// mid-sequence.
func (g Generator[R, S]) Stop() {
	c := g.ctx
	for {
		s := State(c.state.Load())
		switch s {
		case Completed:
			return
		case Running:
			// Stop requested by the body itself; it takes effect at the
			// next pause point.
			c.stop = true
			return
		}
		if c.state.CompareAndSwap(int32(s), int32(Running)) {
			c.stop = true
			c.next <- struct{}{}
			<-c.next
			c.state.Store(int32(Completed))
			return
		}
	}
}

// Next executes the computation until its next pause point, sending the value
// stashed by Send. The method returns true if the computation entered a pause
// point, after which the program should call Recv to obtain the value that
// was yielded. It returns false once the computation completes, in which case
// Err reports whether it failed.
func (g Generator[R, S]) Next() bool {
	step, err := g.Resume(g.ctx.send)
	return err == nil && !step.Done
}

// Recv returns the last value that the computation has yielded. The method
// must be called only after a call to Next has returned true, or the return
// value is undefined. Calling the method multiple times after a call to Next
// returns the same value each time.
func (g Generator[R, S]) Recv() R { return g.ctx.recv }

// Send sets the value that will be seen by the computation after it resumes
// from a pause point. Calling the method multiple times before a call to Next
// does not result in sending multiple values, only the last value sent will
// be seen by the computation.
func (g Generator[R, S]) Send(v S) { g.ctx.send = v }
