package once

import (
	"fmt"
)

// DoubleInvocationError is panicked when a guard is asked to authorize a
// second invocation of its closure. NewAt is where the guard was constructed.
type DoubleInvocationError struct {
	NewAt string
}

func (e DoubleInvocationError) Error() string {
	return fmt.Sprintf("closure guarded at %v: invoked more than once", e.NewAt)
}

// NeverInvokedError is panicked when a guard is disposed of, or collected,
// with its closure still queued.
type NeverInvokedError struct {
	NewAt string
}

func (e NeverInvokedError) Error() string {
	return fmt.Sprintf("closure guarded at %v: never invoked", e.NewAt)
}
