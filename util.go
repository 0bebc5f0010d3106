package minion

// RunnerFunc is a helper type wrapping a bare step function as a
// Runner, for loops that do not need any state of their own.
type RunnerFunc func() (LoopState, error)

// ForEach calls f.
func (f RunnerFunc) ForEach() (LoopState, error) {
	return f()
}
