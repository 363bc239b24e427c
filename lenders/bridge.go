package lenders

import "iter"

// The bridge functions convert a lending sequence into a conventional
// owning one (iter.Seq). The strategies differ in how each lend becomes an
// independent value; exactly one must be chosen per use, and none falls
// back to another:
//
//   - Cloned: deep-duplicate each lend with a caller-supplied clone
//   - Copied: plain assignment copy, for value types free of references
//   - Owned: convert each lend to an owned equivalent, possibly of a
//     different type (e.g. []byte to string)
//   - Values: no conversion, for lend types that never alias lender state

// Cloned duplicates each lend with clone and yields the duplicates.
func Cloned[T any](l Lender[T], clone func(T) T) iter.Seq[T] {
	return Owned(l, clone)
}

// Copied yields an assignment copy of each lend. Only appropriate when T
// contains no references into lender state (no slices, maps, or pointers
// aliasing it).
func Copied[T any](l Lender[T]) iter.Seq[T] {
	return Owned(l, func(v T) T { return v })
}

// Owned converts each lend to an owned value with own and yields the
// results.
func Owned[T, O any](l Lender[T], own func(T) O) iter.Seq[O] {
	return func(yield func(O) bool) {
		for {
			lend, ok := l.Next()
			if !ok {
				return
			}
			if !yield(own(lend.Value())) {
				return
			}
		}
	}
}

// Values yields each lend unchanged. Only appropriate when T is already
// scope-independent: the yielded values must remain meaningful after the
// lender advances.
func Values[T any](l Lender[T]) iter.Seq[T] {
	return Owned(l, func(v T) T { return v })
}
