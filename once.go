// Package once guards callback closures that must be invoked exactly once.
//
// Callback-style APIs usually promise that a completion handler runs on every
// exit path and never runs twice. A guard makes that promise checkable: wrap
// the incoming closure at the top of the host function, call Invocation at
// the point of use, and defer Dispose. Invoking twice, or disposing without
// invoking, panics — these are bugs in the host, not recoverable conditions.
//
//	func fetch(key string, callback func(result) bool) {
//		cb := once.New(callback)
//		defer cb.Dispose()
//		...
//		cb.Invocation()(res)
//	}
package once

// Once guards a closure that cannot fail. It is single-use: the closure is
// yielded by Invocation at most once, and Dispose verifies it was yielded at
// all. There is no reset or re-arming.
//
// Concurrent Invocation calls on one guard are serialized; exactly one caller
// obtains the closure and the rest panic with DoubleInvocationError.
type Once[In, Out any] struct {
	g *guard[In, Out]
}

// New returns a guard holding f, queued. Fallible closures don't fit the
// func(In) Out parameter, so they're rejected where New is called.
func New[In, Out any](f func(In) Out) *Once[In, Out] {
	return &Once[In, Out]{
		g: newGuard(closure[In, Out]{kind: nonThrowingClosure, nonThrowing: f}, callerSite(2)),
	}
}

// Invocation authorizes the single invocation: it transitions the guard to
// executed and returns the stored closure, which the caller should invoke
// immediately with its argument. Panics with DoubleInvocationError if the
// closure was already yielded.
func (me *Once[In, Out]) Invocation() func(In) Out {
	c := me.g.take()
	if c.kind != nonThrowingClosure {
		panic("non-throwing guard holds a throwing closure")
	}
	return c.nonThrowing
}

// Dispose ends the guard's lifetime, panicking with NeverInvokedError if the
// closure was never yielded. Defer it where the guard is created.
func (me *Once[In, Out]) Dispose() {
	me.g.dispose()
}

// ThrowingOnce is Once for closures that can fail with their own error. The
// error belongs entirely to the invoking caller; whether the closure returned
// or failed, the guard counts it as invoked.
type ThrowingOnce[In, Out any] struct {
	g *guard[In, Out]
}

// NewThrowing returns a guard holding the fallible closure f, queued.
func NewThrowing[In, Out any](f func(In) (Out, error)) *ThrowingOnce[In, Out] {
	return &ThrowingOnce[In, Out]{
		g: newGuard(closure[In, Out]{kind: throwingClosure, throwing: f}, callerSite(2)),
	}
}

// Invocation authorizes the single invocation of the fallible closure. See
// Once.Invocation.
func (me *ThrowingOnce[In, Out]) Invocation() func(In) (Out, error) {
	c := me.g.take()
	if c.kind != throwingClosure {
		panic("throwing guard holds a non-throwing closure")
	}
	return c.throwing
}

// Dispose ends the guard's lifetime. See Once.Dispose.
func (me *ThrowingOnce[In, Out]) Dispose() {
	me.g.dispose()
}
