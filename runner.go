package minion

import (
	"fmt"
	"sync/atomic"
)

// Runner is a service loop body that can be told to stop accepting new
// work at any time, and will return at the first following opportunity.
//
// More concretely, it stands in for a loop like the following:
//
//     for {
//         // fetch some work
//         // do some work that might error
//     }
//
// but where the loop can be cancelled: after the step that is currently
// in progress finishes, no more work is handled and the loop breaks.
type Runner interface {
	// ForEach is called once for every iteration of the loop.
	//
	// If it returns an error, the service loop returns with that same
	// error. If it returns a LoopState, the loop continues or breaks
	// accordingly. If it panics, the panic is propagated to the
	// goroutine waiting on the loop.
	ForEach() (LoopState, error)
}

// Run continuously executes the runner's step on the calling goroutine
// until it returns an error or Break. It blocks for as long as the loop
// runs and has no cancellation mechanism of its own; loops started with
// Spawn can be cancelled.
func Run(r Runner) error {
	for {
		state, err := r.ForEach()
		if err != nil {
			return err
		}
		if state == Break {
			return nil
		}
	}
}

// Spawn continuously executes the runner's step on a new goroutine, and
// returns a Handle to that loop so that it can be cancelled or waited
// for. Once spawned, the runner is owned by the loop goroutine and must
// not be used by the caller anymore.
func Spawn(r Runner) *Handle {
	return SpawnWithOptions(r, nil)
}

// SpawnWithOptions is Spawn with the provided options. A nil opts is
// equivalent to the zero Options.
func SpawnWithOptions(r Runner, opts *Options) *Handle {
	if opts == nil {
		opts = &Options{}
	}
	opts = opts.copy()

	h := &Handle{
		canceller: Canceller{keepRunning: &atomic.Bool{}},
		done:      make(chan struct{}),
		opts:      opts,
	}
	h.canceller.keepRunning.Store(true)

	go func() {
		// The result fields are published by closing done; Wait reads
		// them only after receiving from it.
		defer close(h.done)
		defer func() {
			if p := recover(); p != nil {
				h.error(fmt.Errorf("panic: %v", p), "service loop panicked")
				h.panicked = p
			}
		}()

		h.info("service loop started")
		// The flag is checked strictly between iterations; an in-flight
		// step is never interrupted.
		for h.canceller.keepRunning.Load() {
			state, err := r.ForEach()
			if err != nil {
				h.error(err, "service loop failed")
				h.err = err
				return
			}
			if state == Break {
				h.info("service loop finished")
				return
			}
		}
		h.info("service loop cancelled")
	}()

	return h
}
