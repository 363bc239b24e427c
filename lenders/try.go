package lenders

import "errors"

// AsTry lifts an infallible lender into the fallible protocol. The result
// never reports an error other than ErrDone.
func AsTry[T any](l Lender[T]) TryLender[T] {
	return &liftedLender[T]{inner: l}
}

type liftedLender[T any] struct {
	inner Lender[T]
}

func (t *liftedLender[T]) Next() (Lend[T], error) {
	lend, ok := t.inner.Next()
	if !ok {
		return Lend[T]{}, ErrDone
	}
	return lend, nil
}

func (t *liftedLender[T]) SizeHint() (int, int, bool) { return SizeHint(t.inner) }

// StopOnError lowers a fallible lender into the plain protocol by
// committing to stop at the first error. After exhaustion, Err reports
// the error that stopped iteration, if any.
func StopOnError[T any](l TryLender[T]) *Stopped[T] {
	return &Stopped[T]{inner: l}
}

// Stopped is the lowered lender returned by StopOnError.
type Stopped[T any] struct {
	inner TryLender[T]
	err   error
	done  bool
}

func (s *Stopped[T]) Next() (Lend[T], bool) {
	if s.done {
		return Lend[T]{}, false
	}
	lend, err := s.inner.Next()
	if err != nil {
		s.done = true
		if !errors.Is(err, ErrDone) {
			s.err = err
		}
		return Lend[T]{}, false
	}
	return lend, true
}

// Err returns the error that terminated iteration, or nil if the inner
// lender was exhausted normally (or is not yet exhausted).
func (s *Stopped[T]) Err() error { return s.err }

// TryMap applies transform to each element of l, producing a fallible
// lender. A transform error is surfaced for the element that caused it;
// iteration may continue with the following element.
func TryMap[T, R any](l Lender[T], transform func(T) (R, error)) TryLender[R] {
	return &tryMapLender[T, R]{inner: l, f: transform}
}

type tryMapLender[T, R any] struct {
	inner Lender[T]
	f     func(T) (R, error)
	g     Guard
}

func (m *tryMapLender[T, R]) Next() (Lend[R], error) {
	lend, ok := m.inner.Next()
	if !ok {
		m.g.Revoke()
		return Lend[R]{}, ErrDone
	}
	r, err := m.f(lend.Value())
	if err != nil {
		m.g.Revoke()
		return Lend[R]{}, err
	}
	return Issue(&m.g, r), nil
}

// TryFilter lends the elements of l that satisfy predicate, surfacing
// predicate errors for the element that caused them. Iteration may
// continue past an error.
func TryFilter[T any](l Lender[T], predicate func(T) (bool, error)) TryLender[T] {
	return &tryFilterLender[T]{inner: l, pred: predicate}
}

type tryFilterLender[T any] struct {
	inner Lender[T]
	pred  func(T) (bool, error)
}

func (f *tryFilterLender[T]) Next() (Lend[T], error) {
	for {
		lend, ok := f.inner.Next()
		if !ok {
			return Lend[T]{}, ErrDone
		}
		keep, err := f.pred(lend.Value())
		if err != nil {
			return Lend[T]{}, err
		}
		if keep {
			return lend, nil
		}
	}
}

// TryFuse guarantees that once l reports ErrDone, every subsequent call
// also reports ErrDone. Other errors pass through and do not fuse: the
// protocol makes no recoverability promise after a failure.
func TryFuse[T any](l TryLender[T]) TryLender[T] {
	return &tryFuseLender[T]{inner: l}
}

type tryFuseLender[T any] struct {
	inner TryLender[T]
	done  bool
}

func (f *tryFuseLender[T]) Next() (Lend[T], error) {
	if f.done {
		return Lend[T]{}, ErrDone
	}
	lend, err := f.inner.Next()
	if errors.Is(err, ErrDone) {
		f.done = true
	}
	return lend, err
}

// TryForEach visits every element of l, returning the first error other
// than normal exhaustion.
func TryForEach[T any](l TryLender[T], visit func(T) error) error {
	for {
		lend, err := l.Next()
		if err != nil {
			if errors.Is(err, ErrDone) {
				return nil
			}
			return err
		}
		if err := visit(lend.Value()); err != nil {
			return err
		}
	}
}
