package minion

import "sync/atomic"

// Canceller allows the cancellation of a running service loop.
//
// A Canceller is a plain value sharing a single flag with the loop it
// was derived from: copies may be passed to any number of goroutines,
// and every copy cancels the same loop. A Canceller carries no
// ownership of the loop itself and may outlive the Handle.
type Canceller struct {
	keepRunning *atomic.Bool
}

// Cancel tells the service loop to stop at the first opportunity.
//
// This does not interrupt a step that is already executing. Instead,
// the next time the loop would call the step, it returns. Cancel is
// safe to call from any goroutine, any number of times, including
// after the loop has already exited.
func (c Canceller) Cancel() {
	c.keepRunning.Store(false)
}
