package lines_test

import (
	"errors"
	"fmt"

	"github.com/WanderLanz/Lender/lenders"
	"github.com/WanderLanz/Lender/lines"
)

func ExampleNewString() {
	l := lines.NewString("Hello\nWorld\n")

	for {
		lend, err := l.Next()
		if errors.Is(err, lenders.ErrDone) {
			break
		} else if err != nil {
			panic(err)
		}
		fmt.Printf("%s\n", lend.Value())
	}

	// Output:
	// Hello
	// World
}
