package once

import (
	g "github.com/anacrolix/generics"
)

type closureKind int

const (
	nonThrowingClosure closureKind = iota
	throwingClosure
)

// Exactly one of the function fields is set, per kind. Throwing closures can
// fail with their own error when invoked, non-throwing ones can't.
type closure[In, Out any] struct {
	kind        closureKind
	nonThrowing func(In) Out
	throwing    func(In) (Out, error)
}

// The lifecycle of a single closure slot. Some means the closure is still
// queued, None means it was executed. Executed is terminal: nothing ever puts
// a closure back.
type closureState[In, Out any] struct {
	queued g.Option[closure[In, Out]]
}
