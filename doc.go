// Package generator implements resumable computations: functions that can
// suspend themselves at explicit pause points and be continued later, from
// exactly where they paused, with all of their local state intact.
//
// A computation is created with [New] and driven with [Generator.Resume].
// Each resume call runs the computation body until it either yields a value,
// returns, or panics, then hands control back to the caller together with a
// [Step] describing what happened. The body never runs outside of a resume
// call: there is no background goroutine making progress on its own, and a
// suspended computation costs nothing but the memory of its saved state.
//
// The body suspends by calling [Context.Yield], which also acts as a duplex
// channel: the yielded value is surfaced to the consumer, and the value the
// consumer passes to the next resume call becomes the return value of Yield.
//
// Values are produced on demand, one per resume call, so unbounded sequences
// are legal; the consumer decides how many steps to take. A computation that
// will not be drained to completion should be released with [Generator.Stop].
package generator
