package lenders

// Map applies transform to each lend of l. The produced lends are issued
// under the adapter's own guard, so every advancement of the result
// revokes the previous transformed element.
func Map[T, R any](l Lender[T], transform func(T) R) Lender[R] {
	return &mapLender[T, R]{inner: l, f: transform}
}

type mapLender[T, R any] struct {
	inner Lender[T]
	f     func(T) R
	g     Guard
}

func (m *mapLender[T, R]) Next() (Lend[R], bool) {
	lend, ok := m.inner.Next()
	if !ok {
		m.g.Revoke()
		return Lend[R]{}, false
	}
	return Issue(&m.g, m.f(lend.Value())), true
}

func (m *mapLender[T, R]) SizeHint() (int, int, bool) { return SizeHint(m.inner) }

// Filter lends only the elements of l that satisfy predicate. The inner
// lends are passed through unchanged; Filter adds no lend state of its
// own, so it inherits the inner lender's verification.
func Filter[T any](l Lender[T], predicate func(T) bool) Lender[T] {
	return &filterLender[T]{inner: l, pred: predicate}
}

type filterLender[T any] struct {
	inner Lender[T]
	pred  func(T) bool
}

func (f *filterLender[T]) Next() (Lend[T], bool) {
	for {
		lend, ok := f.inner.Next()
		if !ok {
			return Lend[T]{}, false
		}
		if f.pred(lend.Value()) {
			return lend, true
		}
	}
}

func (f *filterLender[T]) SizeHint() (int, int, bool) {
	// The lower bound cannot survive filtering; the upper bound can.
	_, hi, bounded := SizeHint(f.inner)
	return 0, hi, bounded
}

// FilterMap applies transform to each element of l and lends the results
// for which it reports true.
func FilterMap[T, R any](l Lender[T], transform func(T) (R, bool)) Lender[R] {
	return &filterMapLender[T, R]{inner: l, f: transform}
}

type filterMapLender[T, R any] struct {
	inner Lender[T]
	f     func(T) (R, bool)
	g     Guard
}

func (f *filterMapLender[T, R]) Next() (Lend[R], bool) {
	for {
		lend, ok := f.inner.Next()
		if !ok {
			f.g.Revoke()
			return Lend[R]{}, false
		}
		if r, keep := f.f(lend.Value()); keep {
			return Issue(&f.g, r), true
		}
	}
}

func (f *filterMapLender[T, R]) SizeHint() (int, int, bool) {
	_, hi, bounded := SizeHint(f.inner)
	return 0, hi, bounded
}

// Pair holds two values lent together.
type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Enumerate lends each element of l together with its zero-based index.
func Enumerate[T any](l Lender[T]) Lender[Pair[int, T]] {
	return &enumerateLender[T]{inner: l}
}

type enumerateLender[T any] struct {
	inner Lender[T]
	index int
	g     Guard
}

func (e *enumerateLender[T]) Next() (Lend[Pair[int, T]], bool) {
	lend, ok := e.inner.Next()
	if !ok {
		e.g.Revoke()
		return Lend[Pair[int, T]]{}, false
	}
	p := Pair[int, T]{e.index, lend.Value()}
	e.index++
	return Issue(&e.g, p), true
}

func (e *enumerateLender[T]) SizeHint() (int, int, bool) { return SizeHint(e.inner) }

// Zip advances two lenders in lockstep, lending pairs. It is exhausted as
// soon as either input is exhausted.
func Zip[T1, T2 any](l1 Lender[T1], l2 Lender[T2]) Lender[Pair[T1, T2]] {
	return &zipLender[T1, T2]{l1: l1, l2: l2}
}

type zipLender[T1, T2 any] struct {
	l1 Lender[T1]
	l2 Lender[T2]
	g  Guard
}

func (z *zipLender[T1, T2]) Next() (Lend[Pair[T1, T2]], bool) {
	lend1, ok := z.l1.Next()
	if !ok {
		z.g.Revoke()
		return Lend[Pair[T1, T2]]{}, false
	}
	v1 := lend1.Value()
	lend2, ok := z.l2.Next()
	if !ok {
		z.g.Revoke()
		return Lend[Pair[T1, T2]]{}, false
	}
	return Issue(&z.g, Pair[T1, T2]{v1, lend2.Value()}), true
}

func (z *zipLender[T1, T2]) SizeHint() (int, int, bool) {
	lo1, hi1, b1 := SizeHint(z.l1)
	lo2, hi2, b2 := SizeHint(z.l2)
	lo := min(lo1, lo2)
	switch {
	case b1 && b2:
		return lo, min(hi1, hi2), true
	case b1:
		return lo, hi1, true
	case b2:
		return lo, hi2, true
	}
	return lo, 0, false
}

// Chain lends every element of l1, then every element of l2. The lends
// are re-issued under the adapter's own guard: switching sources must
// still revoke the previous element.
func Chain[T any](l1, l2 Lender[T]) Lender[T] {
	return &chainLender[T]{l1: l1, l2: l2}
}

type chainLender[T any] struct {
	l1 Lender[T] // nil once exhausted
	l2 Lender[T]
	g  Guard
}

func (c *chainLender[T]) Next() (Lend[T], bool) {
	if c.l1 != nil {
		if lend, ok := c.l1.Next(); ok {
			return Issue(&c.g, lend.Value()), true
		}
		c.l1 = nil
	}
	lend, ok := c.l2.Next()
	if !ok {
		c.g.Revoke()
		return Lend[T]{}, false
	}
	return Issue(&c.g, lend.Value()), true
}

func (c *chainLender[T]) SizeHint() (int, int, bool) {
	lo2, hi2, b2 := SizeHint(c.l2)
	if c.l1 == nil {
		return lo2, hi2, b2
	}
	lo1, hi1, b1 := SizeHint(c.l1)
	return saturatingAdd(lo1, lo2), saturatingAdd(hi1, hi2), b1 && b2
}

func saturatingAdd(a, b int) int {
	if s := a + b; s >= a {
		return s
	}
	return int(^uint(0) >> 1)
}

// FlatMap maps each element of outer to a lender and lends that lender's
// elements before pulling the next outer element. Empty inner lenders are
// skipped rather than terminating the sequence. The current inner lender
// is dropped (and closed) before the outer lender advances past the lend
// it was produced from.
func FlatMap[S, T any](outer Lender[S], f func(S) Lender[T]) *Flattened[S, T] {
	return &Flattened[S, T]{outer: outer, f: f}
}

// Flatten lends the elements of each lender produced by outer, in order.
func Flatten[T any](outer Lender[Lender[T]]) *Flattened[Lender[T], T] {
	return FlatMap(outer, func(l Lender[T]) Lender[T] { return l })
}

// Flattened is the lender returned by Flatten and FlatMap.
type Flattened[S, T any] struct {
	outer Lender[S]
	f     func(S) Lender[T]
	cur   Lender[T]
	g     Guard
}

func (f *Flattened[S, T]) Next() (Lend[T], bool) {
	for {
		if f.cur == nil {
			lend, ok := f.outer.Next()
			if !ok {
				f.g.Revoke()
				return Lend[T]{}, false
			}
			f.cur = f.f(lend.Value())
		}
		if lend, ok := f.cur.Next(); ok {
			return Issue(&f.g, lend.Value()), true
		}
		// Inner exhausted: release it before touching the outer again.
		Close(f.cur)
		f.cur = nil
	}
}

// Close releases the buffered inner lender before the outer one.
func (f *Flattened[S, T]) Close() error {
	f.g.Revoke()
	if f.cur != nil {
		if err := Close(f.cur); err != nil {
			return err
		}
		f.cur = nil
	}
	return Close(f.outer)
}

// Scan carries an accumulator across the elements of l, lending the value
// produced for each element. Returning false from f terminates the
// sequence early.
func Scan[T, S, R any](l Lender[T], initial S, f func(*S, T) (R, bool)) Lender[R] {
	return &scanLender[T, S, R]{inner: l, state: initial, f: f}
}

type scanLender[T, S, R any] struct {
	inner Lender[T]
	state S
	f     func(*S, T) (R, bool)
	done  bool
	g     Guard
}

func (s *scanLender[T, S, R]) Next() (Lend[R], bool) {
	if s.done {
		s.g.Revoke()
		return Lend[R]{}, false
	}
	lend, ok := s.inner.Next()
	if !ok {
		s.done = true
		s.g.Revoke()
		return Lend[R]{}, false
	}
	r, ok := s.f(&s.state, lend.Value())
	if !ok {
		s.done = true
		s.g.Revoke()
		return Lend[R]{}, false
	}
	return Issue(&s.g, r), true
}

// Inspect performs action on each element as it passes through, without
// modifying it. Useful for debugging or side effects. Lends pass through
// unchanged.
func Inspect[T any](l Lender[T], action func(T)) Lender[T] {
	return &inspectLender[T]{inner: l, action: action}
}

type inspectLender[T any] struct {
	inner  Lender[T]
	action func(T)
}

func (i *inspectLender[T]) Next() (Lend[T], bool) {
	lend, ok := i.inner.Next()
	if ok {
		i.action(lend.Value())
	}
	return lend, ok
}

func (i *inspectLender[T]) SizeHint() (int, int, bool) { return SizeHint(i.inner) }

// Mutate applies f to each element before lending it. The mutation acts on
// the lent value: for lends that alias lender state (sub-slices, reused
// buffers) the aliased state is mutated in place.
func Mutate[T any](l Lender[T], f func(*T)) Lender[T] {
	return &mutateLender[T]{inner: l, f: f}
}

type mutateLender[T any] struct {
	inner Lender[T]
	f     func(*T)
	g     Guard
}

func (m *mutateLender[T]) Next() (Lend[T], bool) {
	lend, ok := m.inner.Next()
	if !ok {
		m.g.Revoke()
		return Lend[T]{}, false
	}
	v := lend.Value()
	m.f(&v)
	return Issue(&m.g, v), true
}

func (m *mutateLender[T]) SizeHint() (int, int, bool) { return SizeHint(m.inner) }
