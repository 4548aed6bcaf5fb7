package once_test

import (
	"fmt"

	once "github.com/theblixguy/Once"
)

// A host function guards its callback parameter so that every exit path must
// invoke it exactly once.
func parse(s string, callback func(int) bool) {
	cb := once.New(callback)
	defer cb.Dispose()
	if s == "" {
		cb.Invocation()(0)
		return
	}
	cb.Invocation()(len(s))
}

func ExampleNew() {
	parse("hello", func(n int) bool {
		fmt.Println("parsed", n)
		return true
	})
	// Output: parsed 5
}

func ExampleNewThrowing() {
	o := once.NewThrowing(func(x int) (int, error) {
		if x < 0 {
			return 0, fmt.Errorf("negative: %v", x)
		}
		return x + 1, nil
	})
	defer o.Dispose()
	_, err := o.Invocation()(-1)
	fmt.Println(err)
	// Output: negative: -1
}
