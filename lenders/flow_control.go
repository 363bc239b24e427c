package lenders

import "fmt"

// ErrBadConfig reports malformed adapter configuration, detected at
// construction rather than during advancement.
var ErrBadConfig = fmt.Errorf("lenders: invalid configuration")

// Take lends at most n elements of l. A non-positive n produces an empty
// lender. Lends pass through unchanged.
func Take[T any](l Lender[T], n int) Lender[T] {
	return &takeLender[T]{inner: l, left: n}
}

type takeLender[T any] struct {
	inner Lender[T]
	left  int
}

func (t *takeLender[T]) Next() (Lend[T], bool) {
	if t.left <= 0 {
		return Lend[T]{}, false
	}
	t.left--
	return t.inner.Next()
}

func (t *takeLender[T]) SizeHint() (int, int, bool) {
	lo, hi, bounded := SizeHint(t.inner)
	if !bounded || hi > t.left {
		hi = t.left
	}
	return min(lo, t.left), hi, true
}

// Skip discards the first n elements of l, then lends the rest.
func Skip[T any](l Lender[T], n int) Lender[T] {
	return &skipLender[T]{inner: l, left: n}
}

type skipLender[T any] struct {
	inner Lender[T]
	left  int
}

func (s *skipLender[T]) Next() (Lend[T], bool) {
	for s.left > 0 {
		s.left--
		if _, ok := s.inner.Next(); !ok {
			return Lend[T]{}, false
		}
	}
	return s.inner.Next()
}

func (s *skipLender[T]) SizeHint() (int, int, bool) {
	lo, hi, bounded := SizeHint(s.inner)
	return max(lo-s.left, 0), max(hi-s.left, 0), bounded
}

// TakeWhile lends elements of l as long as predicate holds, then stops.
func TakeWhile[T any](l Lender[T], predicate func(T) bool) Lender[T] {
	return &takeWhileLender[T]{inner: l, pred: predicate}
}

type takeWhileLender[T any] struct {
	inner Lender[T]
	pred  func(T) bool
	done  bool
}

func (t *takeWhileLender[T]) Next() (Lend[T], bool) {
	if t.done {
		return Lend[T]{}, false
	}
	lend, ok := t.inner.Next()
	if !ok || !t.pred(lend.Value()) {
		t.done = true
		return Lend[T]{}, false
	}
	return lend, true
}

func (t *takeWhileLender[T]) SizeHint() (int, int, bool) {
	if t.done {
		return 0, 0, true
	}
	_, hi, bounded := SizeHint(t.inner)
	return 0, hi, bounded
}

// DropWhile discards elements of l as long as predicate holds, then lends
// the rest.
func DropWhile[T any](l Lender[T], predicate func(T) bool) Lender[T] {
	return &dropWhileLender[T]{inner: l, pred: predicate, dropping: true}
}

type dropWhileLender[T any] struct {
	inner    Lender[T]
	pred     func(T) bool
	dropping bool
}

func (d *dropWhileLender[T]) Next() (Lend[T], bool) {
	for {
		lend, ok := d.inner.Next()
		if !ok {
			return Lend[T]{}, false
		}
		if d.dropping {
			if d.pred(lend.Value()) {
				continue
			}
			d.dropping = false
		}
		return lend, true
	}
}

// StepBy lends the first element of l and then every step-th element
// after it. A step below 1 is a configuration error.
func StepBy[T any](l Lender[T], step int) (Lender[T], error) {
	if step < 1 {
		return nil, fmt.Errorf("%w: step %d, must be at least 1", ErrBadConfig, step)
	}
	return &stepByLender[T]{inner: l, step: step}, nil
}

type stepByLender[T any] struct {
	inner   Lender[T]
	step    int
	started bool
}

func (s *stepByLender[T]) Next() (Lend[T], bool) {
	if !s.started {
		s.started = true
		return s.inner.Next()
	}
	for i := 0; i < s.step-1; i++ {
		if _, ok := s.inner.Next(); !ok {
			return Lend[T]{}, false
		}
	}
	return s.inner.Next()
}

// Fuse guarantees that once l signals exhaustion, every subsequent call
// also signals exhaustion, regardless of how l behaves afterwards.
func Fuse[T any](l Lender[T]) Lender[T] {
	return &fuseLender[T]{inner: l}
}

type fuseLender[T any] struct {
	inner Lender[T]
	done  bool
}

func (f *fuseLender[T]) Next() (Lend[T], bool) {
	if f.done {
		return Lend[T]{}, false
	}
	lend, ok := f.inner.Next()
	if !ok {
		f.done = true
	}
	return lend, ok
}

func (f *fuseLender[T]) SizeHint() (int, int, bool) {
	if f.done {
		return 0, 0, true
	}
	return SizeHint(f.inner)
}

// Cycle repeats the lender produced by make indefinitely, constructing a
// fresh instance each time the previous one is exhausted. If an instance
// produces no elements at all, Cycle is exhausted immediately (a factory
// of empty lenders would otherwise never terminate).
func Cycle[T any](make func() Lender[T]) Lender[T] {
	return &cycleLender[T]{mk: make}
}

type cycleLender[T any] struct {
	mk      func() Lender[T]
	cur     Lender[T]
	yielded bool // current instance produced at least one element
	done    bool
	g       Guard
}

func (c *cycleLender[T]) Next() (Lend[T], bool) {
	for {
		if c.done {
			c.g.Revoke()
			return Lend[T]{}, false
		}
		if c.cur == nil {
			c.cur = c.mk()
			c.yielded = false
		}
		if lend, ok := c.cur.Next(); ok {
			c.yielded = true
			return Issue(&c.g, lend.Value()), true
		}
		if !c.yielded {
			c.done = true
			continue
		}
		Close(c.cur)
		c.cur = nil
	}
}

func (c *cycleLender[T]) SizeHint() (int, int, bool) {
	if c.done {
		return 0, 0, true
	}
	return 0, 0, false
}

// NewPeekable wraps l so the next element can be inspected without being
// consumed.
func NewPeekable[T any](l Lender[T]) *Peekable[T] {
	return &Peekable[T]{inner: l}
}

// Peekable buffers at most one element of the wrapped lender.
type Peekable[T any] struct {
	inner  Lender[T]
	peeked T
	has    bool
	g      Guard
}

// Peek lends the next element without consuming it. The lend is bound to
// this call: a later Peek or Next revokes it, so a peeked lend cannot
// escape the buffered element's storage. Peeking twice with no Next in
// between lends equal elements.
func (p *Peekable[T]) Peek() (Lend[T], bool) {
	if !p.has {
		lend, ok := p.inner.Next()
		if !ok {
			p.g.Revoke()
			return Lend[T]{}, false
		}
		p.peeked = lend.Value()
		p.has = true
	}
	return Issue(&p.g, p.peeked), true
}

func (p *Peekable[T]) Next() (Lend[T], bool) {
	if p.has {
		p.has = false
		return Issue(&p.g, p.peeked), true
	}
	lend, ok := p.inner.Next()
	if !ok {
		p.g.Revoke()
		return Lend[T]{}, false
	}
	return Issue(&p.g, lend.Value()), true
}

func (p *Peekable[T]) SizeHint() (int, int, bool) {
	lo, hi, bounded := SizeHint(p.inner)
	if p.has {
		lo, hi = saturatingAdd(lo, 1), saturatingAdd(hi, 1)
	}
	return lo, hi, bounded
}

// Close drops the buffered element before releasing the wrapped lender.
func (p *Peekable[T]) Close() error {
	p.g.Revoke()
	p.has = false
	var zero T
	p.peeked = zero
	return Close(p.inner)
}

// Chunk collects the elements of l into groups of the given size and lends
// each group. The lent slice is reused between advancements; the final
// group may be shorter. A size below 1 is a configuration error.
func Chunk[T any](l Lender[T], size int) (*Chunked[T], error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: chunk size %d, must be at least 1", ErrBadConfig, size)
	}
	return &Chunked[T]{inner: l, buf: make([]T, 0, size), size: size}, nil
}

// Chunked lends reused chunk buffers. Created by Chunk.
type Chunked[T any] struct {
	inner Lender[T]
	buf   []T
	size  int
	done  bool
	g     Guard
}

func (c *Chunked[T]) Next() (Lend[[]T], bool) {
	if c.done {
		c.g.Revoke()
		return Lend[[]T]{}, false
	}
	c.buf = c.buf[:0]
	for len(c.buf) < c.size {
		lend, ok := c.inner.Next()
		if !ok {
			c.done = true
			break
		}
		c.buf = append(c.buf, lend.Value())
	}
	if len(c.buf) == 0 {
		c.g.Revoke()
		return Lend[[]T]{}, false
	}
	return Issue(&c.g, c.buf), true
}

// Close drops the chunk buffer before releasing the wrapped lender.
func (c *Chunked[T]) Close() error {
	c.g.Revoke()
	c.buf = nil
	c.done = true
	return Close(c.inner)
}

// Rev reverses a double-ended lender: Next advances from the back and
// NextBack from the front. Lends pass through unchanged.
func Rev[T any](l DoubleEnded[T]) DoubleEnded[T] {
	return &revLender[T]{inner: l}
}

type revLender[T any] struct {
	inner DoubleEnded[T]
}

func (r *revLender[T]) Next() (Lend[T], bool)     { return r.inner.NextBack() }
func (r *revLender[T]) NextBack() (Lend[T], bool) { return r.inner.Next() }

func (r *revLender[T]) SizeHint() (int, int, bool) { return SizeHint[T](r.inner) }
