package minion

import "sync/atomic"

// Handle is a handle to a running service loop.
//
// Use it to cancel the loop at the next opportunity (through Cancel),
// or to wait for the loop to exit (through Wait). Canceller returns an
// independent cancellation handle, which lets one goroutine wait for
// the loop while another decides when to stop it.
//
// A Handle is created by Spawn and is used up by Wait: Wait returns the
// loop's terminal result exactly once.
type Handle struct {
	canceller Canceller
	done      chan struct{}
	opts      *Options

	// Terminal result, written by the loop goroutine before done is
	// closed.
	err      error
	panicked interface{}

	waited atomic.Bool
}

// Canceller returns another handle for cancelling the service loop.
//
// This can be handy if you want one goroutine to wait for the loop to
// exit, while another watches for exit signals. It may be called any
// number of times; every returned Canceller shares the same flag.
func (h *Handle) Canceller() Canceller {
	return h.canceller
}

// Cancel tells the service loop to stop at the first opportunity. It is
// shorthand for h.Canceller().Cancel().
func (h *Handle) Cancel() {
	h.canceller.Cancel()
}

// Wait blocks until the service loop exits, and returns its result: nil
// after a Break or a cancellation, or the error returned by the step
// that failed.
//
// If the loop goroutine panicked, Wait panics with the same value. Wait
// consumes the handle; calling it a second time returns an error
// matched by IsAlreadyWaited instead of a result.
func (h *Handle) Wait() error {
	if !h.waited.CompareAndSwap(false, true) {
		return errAlreadyWaited
	}
	<-h.done
	if h.panicked != nil {
		// propagate the panic
		panic(h.panicked)
	}
	return h.err
}

// info logs an information message.
func (h *Handle) info(msg string, keysAndValues ...interface{}) {
	if h.opts.Logger != nil {
		h.opts.Logger.Info(msg, append(keysAndValues, "name", h.opts.Name)...)
	}
}

// error logs an error.
func (h *Handle) error(err error, msg string, keysAndValues ...interface{}) {
	if h.opts.Logger != nil {
		h.opts.Logger.Error(err, msg, append(keysAndValues, "name",
			h.opts.Name)...)
	}
}
