/*
Package lenders implements borrow-scoped sequences: pull-style iterators
whose elements may alias the iterator's own mutable state.

A [Lender] produces one [Lend] per advancement. The lend is valid only
until the lender advances again, which is what lets a lender hand out
overlapping mutable windows into a buffer, or lines read into a single
reused buffer, without copying. Validity is enforced at runtime by a
generation stamp carried in every Lend; reading an expired lend panics
(or reports [ErrExpired] through [Lend.Get]).

# Sources and adapters

Leaf lenders come from [FromSlice], [FromSeq], [FromFunc], [Empty],
[Once], [Repeat], and [Range], and from the windows and lines packages.
Adapters compose them: [Map], [Filter], [FilterMap], [Enumerate], [Zip],
[Chain], [Flatten], [FlatMap], [Scan], [Inspect], [Mutate], [Take],
[Skip], [TakeWhile], [DropWhile], [StepBy], [Fuse], [Cycle], [Chunk],
[NewPeekable], and [Rev].

# Verification

Every source lender should be gated by [Verify] (or [VerifyTry]) once,
which exercises real produced lends and rejects implementations that
fail to revoke previous lends or that substitute zero values or panics
for real elements. Pass-through adapters inherit the wrapped lender's
proof; see [Verify] for the exact rules.

# Error handling

Many operations come in fallible form: a [TryLender] reports elements,
the [ErrDone] sentinel for normal exhaustion, or a real error. [AsTry]
and [StopOnError] convert between the two protocols, and [TryMap],
[TryFilter], [TryFuse], and [TryForEach] mirror their plain counterparts.

# Bridging

[Cloned], [Copied], [Owned], and [Values] convert a lender into a plain
iter.Seq once each element is made independent of the lender's state.
*/
package lenders
