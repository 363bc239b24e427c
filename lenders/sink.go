package lenders

// First advances l once and returns its first element.
func First[T any](l Lender[T]) (T, bool) {
	if lend, ok := l.Next(); ok {
		return lend.Value(), true
	}
	var zero T
	return zero, false
}

// Last drains l and returns its final element. For lends that alias
// lender state, the returned value reflects that state as of the final
// advancement.
func Last[T any](l Lender[T]) (T, bool) {
	var last T
	found := false
	for {
		lend, ok := l.Next()
		if !ok {
			return last, found
		}
		last = lend.Value()
		found = true
	}
}

// Nth discards n elements of l and returns the one after them.
func Nth[T any](l Lender[T], n int) (T, bool) {
	for ; n > 0; n-- {
		if _, ok := l.Next(); !ok {
			var zero T
			return zero, false
		}
	}
	return First(l)
}

// Count drains l and reports how many elements it produced.
func Count[T any](l Lender[T]) int {
	count := 0
	for {
		if _, ok := l.Next(); !ok {
			return count
		}
		count++
	}
}

// Find advances l until predicate holds and returns the matching element.
func Find[T any](l Lender[T], predicate func(T) bool) (T, bool) {
	for {
		lend, ok := l.Next()
		if !ok {
			var zero T
			return zero, false
		}
		if v := lend.Value(); predicate(v) {
			return v, true
		}
	}
}

// Position returns the index of the first element satisfying predicate,
// or -1 if there is none.
func Position[T any](l Lender[T], predicate func(T) bool) int {
	for i := 0; ; i++ {
		lend, ok := l.Next()
		if !ok {
			return -1
		}
		if predicate(lend.Value()) {
			return i
		}
	}
}

// Any reports whether some element of l satisfies predicate.
func Any[T any](l Lender[T], predicate func(T) bool) bool {
	_, ok := Find(l, predicate)
	return ok
}

// All reports whether every element of l satisfies predicate.
func All[T any](l Lender[T], predicate func(T) bool) bool {
	return !Any(l, func(v T) bool { return !predicate(v) })
}

// ForEach visits every element of l. The element is only valid for the
// duration of the callback, which structurally prevents retaining a lend
// across advancements.
func ForEach[T any](l Lender[T], visit func(T)) {
	for {
		lend, ok := l.Next()
		if !ok {
			return
		}
		visit(lend.Value())
	}
}

// Reduce aggregates the elements of l using the reducer function, starting
// from the initial value.
func Reduce[T, R any](l Lender[T], initial R, reducer func(R, T) R) R {
	acc := initial
	ForEach(l, func(v T) { acc = reducer(acc, v) })
	return acc
}

// TryReduce aggregates the elements of l, stopping and returning the first
// error the reducer reports.
func TryReduce[T, R any](l Lender[T], initial R, reducer func(R, T) (R, error)) (R, error) {
	acc := initial
	for {
		lend, ok := l.Next()
		if !ok {
			return acc, nil
		}
		var err error
		acc, err = reducer(acc, lend.Value())
		if err != nil {
			return acc, err
		}
	}
}

// MaxBy drains l and returns its largest element under less. When several
// elements compare equal as maxima, the last one wins.
func MaxBy[T any](l Lender[T], less func(a, b T) bool) (T, bool) {
	var best T
	found := false
	ForEach(l, func(v T) {
		if !found || !less(v, best) {
			best = v
			found = true
		}
	})
	return best, found
}

// MinBy drains l and returns its smallest element under less. When several
// elements compare equal as minima, the first one wins.
func MinBy[T any](l Lender[T], less func(a, b T) bool) (T, bool) {
	var best T
	found := false
	ForEach(l, func(v T) {
		if !found || less(v, best) {
			best = v
			found = true
		}
	})
	return best, found
}
