package lenders_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WanderLanz/Lender/lenders"
)

func TestTake(t *testing.T) {
	assert.Equal(t, []int{1, 2}, collect[int](t, lenders.Take(lenders.FromSlice([]int{1, 2, 3}), 2)))
	assert.Equal(t, []int{1, 2, 3}, collect[int](t, lenders.Take(lenders.FromSlice([]int{1, 2, 3}), 5)))
	assert.Empty(t, collect[int](t, lenders.Take(lenders.FromSlice([]int{1, 2, 3}), 0)))
}

func TestSkip(t *testing.T) {
	assert.Equal(t, []int{3}, collect[int](t, lenders.Skip(lenders.FromSlice([]int{1, 2, 3}), 2)))
	assert.Empty(t, collect[int](t, lenders.Skip(lenders.FromSlice([]int{1, 2}), 5)))
}

func TestTakeWhile(t *testing.T) {
	l := lenders.TakeWhile(lenders.FromSlice([]int{1, 2, 3, 1}), func(v int) bool { return v < 3 })
	assert.Equal(t, []int{1, 2}, collect[int](t, l))
}

func TestDropWhile(t *testing.T) {
	l := lenders.DropWhile(lenders.FromSlice([]int{1, 2, 3, 1}), func(v int) bool { return v < 3 })
	assert.Equal(t, []int{3, 1}, collect[int](t, l))
}

func TestStepBy(t *testing.T) {
	t.Run("StrideTwo", func(t *testing.T) {
		l, err := lenders.StepBy(lenders.FromSlice([]int{0, 1, 2, 3, 4, 5}), 2)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 2, 4}, collect[int](t, l))
	})

	t.Run("StrideOneIsIdentity", func(t *testing.T) {
		l, err := lenders.StepBy(lenders.FromSlice([]int{1, 2, 3}), 1)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, collect[int](t, l))
	})

	t.Run("ZeroStrideIsConfigError", func(t *testing.T) {
		_, err := lenders.StepBy(lenders.FromSlice([]int{1}), 0)
		assert.ErrorIs(t, err, lenders.ErrBadConfig)
	})
}

// flickerLender pretends to come back to life after exhaustion.
type flickerLender struct {
	calls int
	g     lenders.Guard
}

func (f *flickerLender) Next() (lenders.Lend[int], bool) {
	f.calls++
	if f.calls%2 == 0 {
		f.g.Revoke()
		return lenders.Lend[int]{}, false
	}
	return lenders.Issue(&f.g, f.calls), true
}

func TestFuse(t *testing.T) {
	t.Run("StickyExhaustion", func(t *testing.T) {
		l := lenders.Fuse[int](&flickerLender{})

		_, ok := l.Next()
		require.True(t, ok)
		_, ok = l.Next()
		require.False(t, ok)
		for i := 0; i < 5; i++ {
			_, ok = l.Next()
			assert.False(t, ok, "a fused lender must stay exhausted")
		}
	})

	t.Run("UnfusedFlickers", func(t *testing.T) {
		l := &flickerLender{}
		_, ok := l.Next()
		require.True(t, ok)
		_, ok = l.Next()
		require.False(t, ok)
		_, ok = l.Next()
		require.True(t, ok, "the raw lender really does flicker; Fuse is what stops it")
	})
}

func TestCycle(t *testing.T) {
	t.Run("RepeatsForever", func(t *testing.T) {
		l := lenders.Take(lenders.Cycle(func() lenders.Lender[int] {
			return lenders.FromSlice([]int{1, 2})
		}), 5)
		assert.Equal(t, []int{1, 2, 1, 2, 1}, collect[int](t, l))
	})

	t.Run("EmptyInnerExhaustsImmediately", func(t *testing.T) {
		l := lenders.Cycle(func() lenders.Lender[int] { return lenders.Empty[int]() })
		_, ok := l.Next()
		assert.False(t, ok)
		_, ok = l.Next()
		assert.False(t, ok)
	})

	t.Run("SizeHintUnbounded", func(t *testing.T) {
		l := lenders.Cycle(func() lenders.Lender[int] { return lenders.FromSlice([]int{1}) })
		_, _, bounded := lenders.SizeHint(l)
		assert.False(t, bounded)
	})
}

func TestPeekable(t *testing.T) {
	t.Run("PeekDoesNotAdvance", func(t *testing.T) {
		p := lenders.NewPeekable(lenders.FromSlice([]int{1, 2}))

		lend, ok := p.Peek()
		require.True(t, ok)
		first := lend.Value()

		lend, ok = p.Peek()
		require.True(t, ok)
		assert.Equal(t, first, lend.Value(), "peeking twice must observe the same element")

		lend, ok = p.Next()
		require.True(t, ok)
		assert.Equal(t, first, lend.Value(), "the next advancement returns the peeked element")

		lend, ok = p.Next()
		require.True(t, ok)
		assert.Equal(t, 2, lend.Value())

		_, ok = p.Next()
		assert.False(t, ok)
	})

	t.Run("PeekIsCallScoped", func(t *testing.T) {
		p := lenders.NewPeekable(lenders.FromSlice([]int{1, 2}))

		first, ok := p.Peek()
		require.True(t, ok)
		_, ok = p.Peek()
		require.True(t, ok)
		assert.False(t, first.Valid(), "a peeked lend must not outlive the call that produced it")
	})

	t.Run("PeekAtEnd", func(t *testing.T) {
		p := lenders.NewPeekable(lenders.Empty[int]())
		_, ok := p.Peek()
		assert.False(t, ok)
		_, ok = p.Next()
		assert.False(t, ok)
	})

	t.Run("SizeHintCountsBuffered", func(t *testing.T) {
		p := lenders.NewPeekable(lenders.FromSlice([]int{1, 2}))
		_, ok := p.Peek()
		require.True(t, ok)
		lo, hi, bounded := p.SizeHint()
		assert.Equal(t, 2, lo)
		assert.Equal(t, 2, hi)
		assert.True(t, bounded)
	})

	t.Run("CloseDropsBufferFirst", func(t *testing.T) {
		var order []string
		inner := &recordingLender[int]{inner: lenders.FromSlice([]int{1}), name: "inner", log: &order}
		p := lenders.NewPeekable[int](inner)

		lend, ok := p.Peek()
		require.True(t, ok)

		require.NoError(t, p.Close())
		assert.False(t, lend.Valid(), "Close must revoke the buffered lend")
		assert.Equal(t, []string{"inner"}, order)
	})
}

func TestChunk(t *testing.T) {
	t.Run("PartialTail", func(t *testing.T) {
		c, err := lenders.Chunk(lenders.FromSlice([]int{1, 2, 3, 4, 5}), 2)
		require.NoError(t, err)

		var got [][]int
		for {
			lend, ok := c.Next()
			if !ok {
				break
			}
			got = append(got, append([]int(nil), lend.Value()...))
		}
		assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, got)
	})

	t.Run("BufferIsReused", func(t *testing.T) {
		c, err := lenders.Chunk(lenders.FromSlice([]int{1, 2, 3, 4}), 2)
		require.NoError(t, err)

		first, ok := c.Next()
		require.True(t, ok)
		buf := first.Value()
		assert.Equal(t, []int{1, 2}, buf)

		second, ok := c.Next()
		require.True(t, ok)
		assert.False(t, first.Valid())
		assert.Equal(t, []int{3, 4}, second.Value())
		assert.Equal(t, []int{3, 4}, buf, "the lent buffer is overwritten in place")
	})

	t.Run("ZeroSizeIsConfigError", func(t *testing.T) {
		_, err := lenders.Chunk(lenders.FromSlice([]int{1}), 0)
		assert.ErrorIs(t, err, lenders.ErrBadConfig)
	})
}

func TestRev(t *testing.T) {
	r := lenders.Rev[int](lenders.FromSlice([]int{1, 2, 3}))
	assert.Equal(t, []int{3, 2, 1}, collect[int](t, r))

	r = lenders.Rev[int](lenders.FromSlice([]int{1, 2}))
	lend, ok := r.NextBack()
	require.True(t, ok)
	assert.Equal(t, 1, lend.Value(), "NextBack on a reversed lender advances from the original front")
}
