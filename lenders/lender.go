package lenders

import (
	"fmt"
	"io"
)

var (
	// ErrExpired is reported when a lend is accessed after the lender that
	// issued it has advanced again (or been closed).
	ErrExpired = fmt.Errorf("lenders: use of expired lend")

	// ErrDone signals normal exhaustion of a TryLender. It is a terminal
	// signal, not a failure; compare with errors.Is.
	ErrDone = fmt.Errorf("lenders: lender is done")
)

// Lender is a stateful producer of borrow-scoped elements.
//
// Next advances the lender. It returns the next lend and true, or a zero
// Lend and false once the lender is exhausted. Each lend is valid only
// until the next call to Next (or NextBack, for double-ended lenders);
// advancing revokes the previous lend. Unlike iter.Seq, the produced value
// may alias the lender's internal mutable state, which is what makes
// overlapping mutable windows and reused line buffers expressible.
//
// Calling Next after it has returned false is allowed; the result is
// implementation-defined unless the lender is wrapped in Fuse.
type Lender[T any] interface {
	Next() (Lend[T], bool)
}

// TryLender is the fallible counterpart of Lender. Next returns one of
// three outcomes:
//
//   - (lend, nil): the next element
//   - (zero, ErrDone): normal exhaustion
//   - (zero, err): a failure; behavior of further calls is
//     implementation-defined unless wrapped in TryFuse
type TryLender[T any] interface {
	Next() (Lend[T], error)
}

// DoubleEnded is a Lender that can also advance from the back. Front and
// back advancement consume from the same remaining range and converge
// without duplicating or skipping an element.
type DoubleEnded[T any] interface {
	Lender[T]
	NextBack() (Lend[T], bool)
}

// Sized is implemented by lenders that can estimate how many elements
// remain. The bounds are hints only, never a correctness guarantee: at
// least lo elements remain, and if bounded is true, at most hi.
type Sized interface {
	SizeHint() (lo, hi int, bounded bool)
}

// SizeHint reports l's remaining-element estimate, or (0, 0, false) when l
// does not implement Sized.
func SizeHint[T any](l Lender[T]) (lo, hi int, bounded bool) {
	if s, ok := l.(Sized); ok {
		return s.SizeHint()
	}
	return 0, 0, false
}

// Guard tracks which lend of a single lender is current. Every lender that
// issues its own lends owns one; bumping it revokes all previously issued
// lends. The zero Guard is ready to use.
type Guard struct {
	gen uint64
}

// Revoke ends the validity of every lend issued under g so far. Lenders
// call it when an advancement signals exhaustion, and on Close.
func (g *Guard) Revoke() { g.gen++ }

// Issue revokes the previous lend and returns a new one wrapping v.
func Issue[T any](g *Guard, v T) Lend[T] {
	g.gen++
	return Lend[T]{guard: g, gen: g.gen, v: v}
}

// Lend is the element produced by one advancement of a lender. It is a
// generation-stamped handle: the wrapped value may alias the lender's
// internal state, so the handle expires as soon as the lender advances
// again. The zero Lend is expired.
type Lend[T any] struct {
	guard *Guard
	gen   uint64
	v     T
}

// Valid reports whether l is still the lender's current lend.
func (l Lend[T]) Valid() bool {
	return l.guard != nil && l.guard.gen == l.gen
}

// Value returns the lent element. It panics with ErrExpired if the lender
// has advanced past l; use Get to observe expiry as an error instead.
func (l Lend[T]) Value() T {
	if !l.Valid() {
		panic(ErrExpired)
	}
	return l.v
}

// Get returns the lent element, or ErrExpired if the lender has advanced
// past l.
func (l Lend[T]) Get() (v T, err error) {
	if !l.Valid() {
		return v, ErrExpired
	}
	return l.v, nil
}

// Close releases any buffered state held by l. Lenders that buffer lends
// or wrap external resources (Peekable, Flatten, FromSeq, Chunk, and the
// lines reader) implement io.Closer; for everything else Close is a no-op.
func Close(l any) error {
	if c, ok := l.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
