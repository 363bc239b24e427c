// Package windows provides lending iterators over sub-slices of an owned
// buffer: overlapping mutable windows and non-overlapping chunks. Each
// lend aliases the buffer, so writing through a window mutates it in
// place; at most one window is live at a time, which keeps overlapping
// write access structurally impossible.
package windows

import (
	"fmt"

	"github.com/WanderLanz/Lender/lenders"
)

// Option configures a window lender.
type Option func(*config)

type config struct {
	step int
}

// WithStep sets the stride between consecutive window start positions.
// The default is 1.
func WithStep(step int) Option {
	return func(c *config) { c.step = step }
}

// Mut returns a double-ended lender over mutable windows of the given
// length into buf, starting every step elements (default 1). A buffer of
// length N yields (N-length)/step + 1 windows, and none when length > N.
// A length or step below 1 is a configuration error.
func Mut[T any](buf []T, length int, opts ...Option) (*Windows[T], error) {
	cfg := config{step: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if length < 1 {
		return nil, fmt.Errorf("%w: window length %d, must be at least 1", lenders.ErrBadConfig, length)
	}
	if cfg.step < 1 {
		return nil, fmt.Errorf("%w: window step %d, must be at least 1", lenders.ErrBadConfig, cfg.step)
	}
	count := 0
	if length <= len(buf) {
		count = (len(buf)-length)/cfg.step + 1
	}
	return &Windows[T]{buf: buf, length: length, step: cfg.step, back: count}, nil
}

// Windows lends overlapping sub-slices of a buffer. Front and back
// positions are tracked as window indices; front advancement takes index
// front and back advancement takes index back-1, so the two ends converge
// without skipping or duplicating a window. Created by Mut.
type Windows[T any] struct {
	buf    []T
	length int
	step   int
	front  int // next window index from the front
	back   int // one past the next window index from the back
	g      lenders.Guard
}

func (w *Windows[T]) window(i int) []T {
	start := i * w.step
	return w.buf[start : start+w.length]
}

func (w *Windows[T]) Next() (lenders.Lend[[]T], bool) {
	if w.front >= w.back {
		w.g.Revoke()
		return lenders.Lend[[]T]{}, false
	}
	i := w.front
	w.front++
	return lenders.Issue(&w.g, w.window(i)), true
}

func (w *Windows[T]) NextBack() (lenders.Lend[[]T], bool) {
	if w.front >= w.back {
		w.g.Revoke()
		return lenders.Lend[[]T]{}, false
	}
	w.back--
	return lenders.Issue(&w.g, w.window(w.back)), true
}

// Len reports how many windows remain.
func (w *Windows[T]) Len() int { return w.back - w.front }

func (w *Windows[T]) SizeHint() (int, int, bool) {
	n := w.Len()
	return n, n, true
}

// Chunks returns a lender over non-overlapping sub-slices of buf of the
// given length, in order; the final chunk is shorter when len(buf) is not
// a multiple of length. A length below 1 is a configuration error.
func Chunks[T any](buf []T, length int) (*BufChunks[T], error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: chunk length %d, must be at least 1", lenders.ErrBadConfig, length)
	}
	return &BufChunks[T]{buf: buf, length: length}, nil
}

// BufChunks lends consecutive chunks of a buffer. Created by Chunks.
type BufChunks[T any] struct {
	buf    []T
	length int
	pos    int
	g      lenders.Guard
}

func (c *BufChunks[T]) Next() (lenders.Lend[[]T], bool) {
	if c.pos >= len(c.buf) {
		c.g.Revoke()
		return lenders.Lend[[]T]{}, false
	}
	end := min(c.pos+c.length, len(c.buf))
	chunk := c.buf[c.pos:end]
	c.pos = end
	return lenders.Issue(&c.g, chunk), true
}

func (c *BufChunks[T]) SizeHint() (int, int, bool) {
	n := (len(c.buf) - c.pos + c.length - 1) / c.length
	return n, n, true
}
