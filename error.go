package minion

import "errors"

var errAlreadyWaited = errors.New("already waited")

// IsAlreadyWaited returns true if the cause of the error is a second
// call to Wait on the same handle. Wait returns the loop's terminal
// result to its first caller only.
func IsAlreadyWaited(err error) bool {
	return errors.Is(err, errAlreadyWaited)
}
