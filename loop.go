package minion

import "fmt"

// LoopState indicates whether a service loop should keep accepting new
// work after the current step.
type LoopState uint8

const (
	// Continue accepting more work.
	Continue LoopState = iota
	// Break stops accepting work and lets the loop return.
	Break
)

func (s LoopState) String() string {
	switch s {
	case Continue:
		return "Continue"
	case Break:
		return "Break"
	default:
		return fmt.Sprintf("%d", int(s))
	}
}
