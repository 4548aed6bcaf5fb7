package once

import (
	"fmt"
	"runtime"

	g "github.com/anacrolix/generics"
	"github.com/anacrolix/log"
	"github.com/anacrolix/sync"
)

var logger = log.Default.WithNames("once")

// Shared core of Once and ThrowingOnce. Owns the closure between construction
// and the single take. The mutex serializes the queued→executed flip, so
// racing takers are defined: one wins, the rest panic.
type guard[In, Out any] struct {
	mu    sync.Mutex
	state closureState[In, Out]
	// Construction call site, for fault messages. The finalizer path in
	// particular has no useful stack of its own.
	newAt string
}

func newGuard[In, Out any](c closure[In, Out], newAt string) *guard[In, Out] {
	gd := &guard[In, Out]{newAt: newAt}
	gd.state.queued.Set(c)
	// Backstop for guards that are dropped without Dispose. Only fires if the
	// GC gets to the guard at all, and then at an arbitrary later time, so
	// this can't replace a deferred Dispose.
	runtime.SetFinalizer(gd, (*guard[In, Out]).finalize)
	return gd
}

// Flips the state to executed and hands the closure to the caller. At most
// one call over the guard's lifetime returns; subsequent calls panic with
// DoubleInvocationError.
func (gd *guard[In, Out]) take() closure[In, Out] {
	gd.mu.Lock()
	defer gd.mu.Unlock()
	if !gd.state.queued.Ok {
		panic(DoubleInvocationError{NewAt: gd.newAt})
	}
	c := gd.state.queued.Value
	gd.state.queued = g.Option[closure[In, Out]]{}
	return c
}

// Checks the terminal state. Executed is the only acceptable one: a guard
// still holding its closure panics with NeverInvokedError.
func (gd *guard[In, Out]) dispose() {
	gd.mu.Lock()
	defer gd.mu.Unlock()
	runtime.SetFinalizer(gd, nil)
	if gd.state.queued.Ok {
		panic(NeverInvokedError{NewAt: gd.newAt})
	}
}

func (gd *guard[In, Out]) finalize() {
	gd.mu.Lock()
	defer gd.mu.Unlock()
	if !gd.state.queued.Ok {
		return
	}
	err := NeverInvokedError{NewAt: gd.newAt}
	// An unrecovered panic on the finalizer goroutine kills the process with
	// a stack that doesn't mention the leaked guard. Log the site first.
	logger.Levelf(log.Error, "collected guard: %v", err)
	panic(err)
}

func callerSite(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%v:%v", file, line)
}
