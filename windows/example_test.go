package windows_test

import (
	"fmt"

	"github.com/WanderLanz/Lender/windows"
)

func ExampleMut() {
	// Each window is a mutable view; writing through it fills the buffer
	// with the Fibonacci sequence.
	buf := []int{0, 1, 0, 0, 0, 0, 0, 0, 0}
	w, err := windows.Mut(buf, 3)
	if err != nil {
		panic(err)
	}

	for {
		lend, ok := w.Next()
		if !ok {
			break
		}
		s := lend.Value()
		s[2] = s[0] + s[1]
	}
	fmt.Println(buf)

	// Output:
	// [0 1 1 2 3 5 8 13 21]
}
