package once

import (
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestWith(t *testing.T) {
	c := qt.New(t)
	With(func(x int) int { return x + 1 }, func(o *Once[int, int]) {
		c.Check(o.Invocation()(5), qt.Equals, 6)
	})
}

func TestWithNeverInvoked(t *testing.T) {
	c := qt.New(t)
	c.Assert(func() {
		With(func(x int) int { return x + 1 }, func(o *Once[int, int]) {})
	}, qt.PanicMatches, "closure guarded at .*: never invoked")
}

func TestWithThrowing(t *testing.T) {
	c := qt.New(t)
	errNope := errors.New("nope")
	WithThrowing(func(x int) (int, error) { return 0, errNope }, func(o *ThrowingOnce[int, int]) {
		_, err := o.Invocation()(5)
		c.Check(err, qt.Equals, errNope)
	})
}
