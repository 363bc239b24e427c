package lenders

import "iter"

// FromSlice returns a double-ended lender over the elements of s. The
// slice is not copied; lends carry the element values.
func FromSlice[T any](s []T) *SliceLender[T] {
	return &SliceLender[T]{s: s, back: len(s)}
}

// SliceLender lends the elements of a slice, front to back or back to
// front. Created by FromSlice.
type SliceLender[T any] struct {
	s     []T
	front int
	back  int
	g     Guard
}

func (l *SliceLender[T]) Next() (Lend[T], bool) {
	if l.front >= l.back {
		l.g.Revoke()
		return Lend[T]{}, false
	}
	v := l.s[l.front]
	l.front++
	return Issue(&l.g, v), true
}

func (l *SliceLender[T]) NextBack() (Lend[T], bool) {
	if l.front >= l.back {
		l.g.Revoke()
		return Lend[T]{}, false
	}
	l.back--
	return Issue(&l.g, l.s[l.back]), true
}

func (l *SliceLender[T]) SizeHint() (int, int, bool) {
	n := l.back - l.front
	return n, n, true
}

// FromSeq lifts a conventional owning sequence into the lending protocol.
// The returned lender owns the pull-style coroutine backing seq; Close
// stops it early. A lender that reaches exhaustion stops it automatically.
func FromSeq[T any](seq iter.Seq[T]) *SeqLender[T] {
	next, stop := iter.Pull(seq)
	return &SeqLender[T]{next: next, stop: stop}
}

// SeqLender adapts an iter.Seq. Created by FromSeq.
type SeqLender[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
	g    Guard
}

func (l *SeqLender[T]) Next() (Lend[T], bool) {
	if l.done {
		l.g.Revoke()
		return Lend[T]{}, false
	}
	v, ok := l.next()
	if !ok {
		l.done = true
		l.stop()
		l.g.Revoke()
		return Lend[T]{}, false
	}
	return Issue(&l.g, v), true
}

// Close revokes the current lend and stops the underlying pull iterator.
func (l *SeqLender[T]) Close() error {
	l.g.Revoke()
	if !l.done {
		l.done = true
		l.stop()
	}
	return nil
}

// FromFunc returns a lender that produces elements by calling f until it
// reports false.
func FromFunc[T any](f func() (T, bool)) Lender[T] {
	return &funcLender[T]{f: f}
}

type funcLender[T any] struct {
	f    func() (T, bool)
	done bool
	g    Guard
}

func (l *funcLender[T]) Next() (Lend[T], bool) {
	if l.done {
		l.g.Revoke()
		return Lend[T]{}, false
	}
	v, ok := l.f()
	if !ok {
		l.done = true
		l.g.Revoke()
		return Lend[T]{}, false
	}
	return Issue(&l.g, v), true
}

// Empty returns a lender with no elements.
func Empty[T any]() Lender[T] {
	return &emptyLender[T]{}
}

type emptyLender[T any] struct{ g Guard }

func (l *emptyLender[T]) Next() (Lend[T], bool) {
	l.g.Revoke()
	return Lend[T]{}, false
}

func (l *emptyLender[T]) NextBack() (Lend[T], bool) { return l.Next() }

func (l *emptyLender[T]) SizeHint() (int, int, bool) { return 0, 0, true }

// Once returns a lender that lends v exactly once.
func Once[T any](v T) Lender[T] {
	return &onceLender[T]{v: v}
}

type onceLender[T any] struct {
	v    T
	done bool
	g    Guard
}

func (l *onceLender[T]) Next() (Lend[T], bool) {
	if l.done {
		l.g.Revoke()
		return Lend[T]{}, false
	}
	l.done = true
	return Issue(&l.g, l.v), true
}

func (l *onceLender[T]) SizeHint() (int, int, bool) {
	if l.done {
		return 0, 0, true
	}
	return 1, 1, true
}

// Repeat returns a lender that lends value count times.
func Repeat[T any](value T, count int) Lender[T] {
	if count < 0 {
		count = 0
	}
	return &repeatLender[T]{v: value, left: count}
}

type repeatLender[T any] struct {
	v    T
	left int
	g    Guard
}

func (l *repeatLender[T]) Next() (Lend[T], bool) {
	if l.left <= 0 {
		l.g.Revoke()
		return Lend[T]{}, false
	}
	l.left--
	return Issue(&l.g, l.v), true
}

func (l *repeatLender[T]) SizeHint() (int, int, bool) { return l.left, l.left, true }

// Range returns a lender over the integers from start towards end with the
// given step. A zero step produces an empty lender.
func Range(start, end, step int) Lender[int] {
	i := start
	return FromFunc(func() (int, bool) {
		if step == 0 {
			return 0, false
		}
		if step > 0 && i >= end || step < 0 && i <= end {
			return 0, false
		}
		v := i
		i += step
		return v, true
	})
}
