package windows_test

import (
	"testing"

	"github.com/WanderLanz/Lender/windows"
)

func BenchmarkMut(b *testing.B) {
	buf := make([]int, 4096)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w, err := windows.Mut(buf, 8)
		if err != nil {
			b.Fatal(err)
		}
		for {
			lend, ok := w.Next()
			if !ok {
				break
			}
			s := lend.Value()
			s[0]++
		}
	}
}
