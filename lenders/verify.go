package lenders

import "fmt"

// ErrVerify is wrapped by every failure reported by Verify and VerifyTry.
var ErrVerify = fmt.Errorf("lenders: lend discipline violation")

// verifyLimit bounds the advancement prefix exercised per check, so
// unbounded lenders (Cycle, generators) can still be verified.
const verifyLimit = 64

// Verify checks, once per lender implementation, that the implementation
// honors the lend discipline: every advancement must issue a genuinely
// stamped lend that is valid when returned, and must revoke the lend of
// the previous advancement, including the final advancement that signals
// exhaustion. It is meant to gate source lenders before they are used
// generically.
//
// The check constructs a real instance with make and exercises produced
// values, so it cannot be satisfied by an implementation that substitutes
// zero-valued lends, dead code paths, or panics for real elements: a zero
// Lend is invalid by construction, and a panic during advancement is
// reported as a verification failure. Verification covers a bounded
// prefix of the sequence; an implementation that misbehaves only beyond
// that prefix is out of reach, as is one that never returns from Next.
//
// Adapters that pass inner lends through unchanged (Filter, Take, Skip,
// TakeWhile, DropWhile, StepBy, Fuse, Inspect, Rev) add no lend state of
// their own and inherit the proof of the lender they wrap instead of
// re-running the check. That inheritance deliberately bypasses Verify and
// is only sound for adapters with no new exposure: in particular, a
// short-circuiting adapter such as Take leaves the final inner lend
// unrevoked when it stops early, which strict verification would flag.
func Verify[T any](make func() Lender[T]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic during advancement: %v", ErrVerify, r)
		}
	}()

	l := make()
	if l == nil {
		return fmt.Errorf("%w: factory returned nil lender", ErrVerify)
	}
	var prev Lend[T]
	hasPrev := false
	for i := 0; i < verifyLimit; i++ {
		lend, ok := l.Next()
		if hasPrev && prev.Valid() {
			return fmt.Errorf("%w: advancement %d did not revoke the previous lend", ErrVerify, i)
		}
		if !ok {
			if lend.Valid() {
				return fmt.Errorf("%w: exhaustion at advancement %d returned a live lend", ErrVerify, i)
			}
			return nil
		}
		if !lend.Valid() {
			return fmt.Errorf("%w: advancement %d returned an unstamped or expired lend", ErrVerify, i)
		}
		// Exercise the produced value for real; a lend that cannot be
		// read is no lend at all.
		if _, err := lend.Get(); err != nil {
			return fmt.Errorf("%w: advancement %d: %v", ErrVerify, i, err)
		}
		prev, hasPrev = lend, true
	}
	return nil
}

// VerifyTry is Verify for the fallible protocol. An error outcome must
// revoke the previous lend just as exhaustion does; the check stops at
// the first non-exhaustion error, since the protocol makes no promise
// about what follows one.
func VerifyTry[T any](make func() TryLender[T]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic during advancement: %v", ErrVerify, r)
		}
	}()

	l := make()
	if l == nil {
		return fmt.Errorf("%w: factory returned nil lender", ErrVerify)
	}
	var prev Lend[T]
	hasPrev := false
	for i := 0; i < verifyLimit; i++ {
		lend, nextErr := l.Next()
		if hasPrev && prev.Valid() {
			return fmt.Errorf("%w: advancement %d did not revoke the previous lend", ErrVerify, i)
		}
		if nextErr != nil {
			if lend.Valid() {
				return fmt.Errorf("%w: advancement %d returned both a live lend and an error", ErrVerify, i)
			}
			return nil
		}
		if !lend.Valid() {
			return fmt.Errorf("%w: advancement %d returned an unstamped or expired lend", ErrVerify, i)
		}
		if _, err := lend.Get(); err != nil {
			return fmt.Errorf("%w: advancement %d: %v", ErrVerify, i, err)
		}
		prev, hasPrev = lend, true
	}
	return nil
}

// MustVerify is Verify for use in package init or tests; it panics on a
// verification failure.
func MustVerify[T any](make func() Lender[T]) {
	if err := Verify(make); err != nil {
		panic(err)
	}
}
