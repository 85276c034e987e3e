// Package kmerge implements a k-way merge over asynchronous streams: the
// items of any number of individually sorted inputs are interleaved into
// one sorted output according to a caller-supplied ordering.
//
// The merge is lazy and poll-driven. It implements stream.Stream itself,
// so it composes with other stream combinators, and new inputs can be
// attached at any time, even after polling has started.
//
// Basic usage:
//
//	m := kmerge.Min(stream.Of(1, 3)).Merge(stream.Of(2, 4))
//	got := stream.Collect[int](m) // [1 2 3 4]
//
// Ordering is decided by a compare.Func: when cmp(a, b) is positive, a is
// emitted before b. Min and Max wrap the common ascending and descending
// cases; By accepts an "ordered before" predicate.
//
// Each input is owned by one merge entry that buffers a single lookahead
// item. Before anything is emitted, every input is polled once to prime
// its lookahead, which is what lets the engine's heap top double as the
// globally next item. Inputs that are not ready make the whole merge
// report Pending without consuming or reordering anything.
//
// Ties between equal-ranked items from different inputs are broken
// arbitrarily; callers must not rely on a stable interleaving for equal
// keys.
package kmerge
