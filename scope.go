package once

// With runs body with a guard over f and disposes the guard when body
// returns. This is the bracketed form of New + defer Dispose: the
// never-invoked check fires deterministically even when the guard would
// otherwise escape into code that forgets to dispose it.
func With[In, Out any](f func(In) Out, body func(*Once[In, Out])) {
	o := &Once[In, Out]{
		g: newGuard(closure[In, Out]{kind: nonThrowingClosure, nonThrowing: f}, callerSite(2)),
	}
	defer o.Dispose()
	body(o)
}

// WithThrowing is With for fallible closures.
func WithThrowing[In, Out any](f func(In) (Out, error), body func(*ThrowingOnce[In, Out])) {
	o := &ThrowingOnce[In, Out]{
		g: newGuard(closure[In, Out]{kind: throwingClosure, throwing: f}, callerSite(2)),
	}
	defer o.Dispose()
	body(o)
}
