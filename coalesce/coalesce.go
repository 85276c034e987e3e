package coalesce

import "github.com/drmingdrmer/stream-more/stream"

// CombineFunc decides whether two adjacent items fuse. It is called with
// the pending item prev and the freshly produced cur.
//
// When merged is true, first is the fused replacement and becomes the new
// pending item; second is ignored. When merged is false, first is emitted
// immediately and second becomes the new pending item. A rejecting
// CombineFunc usually returns (prev, cur, false) but may reshape the pair.
type CombineFunc[T any] func(prev, cur T) (first, second T, merged bool)

// Coalesce fuses runs of adjacent compatible items of one stream into
// single items, as decided by a CombineFunc. It implements stream.Stream.
type Coalesce[T any] struct {
	pending    T
	hasPending bool
	finished   bool
	inner      stream.Stream[T]
	combine    CombineFunc[T]
}

// New returns a stream that coalesces adjacent items of s with f.
func New[T any](s stream.Stream[T], f CombineFunc[T]) *Coalesce[T] {
	return &Coalesce[T]{inner: s, combine: f}
}

// PollNext implements stream.Stream.
//
// Items are accumulated greedily: each new item is combined into the
// pending one until the CombineFunc rejects a pair, at which point the
// pending item is emitted. When the inner stream ends, the last pending
// item (if any) is emitted before Done, and the inner stream is never
// polled again.
func (c *Coalesce[T]) PollNext(w stream.Waker) (T, stream.State) {
	var zero T
	if c.finished {
		return zero, stream.Done
	}

	for {
		cur, st := c.inner.PollNext(w)
		if st == stream.Pending {
			return zero, stream.Pending
		}

		switch {
		case st == stream.Done && !c.hasPending:
			c.finished = true
			return zero, stream.Done

		case st == stream.Done:
			c.finished = true
			c.hasPending = false
			return c.pending, stream.Ready

		case !c.hasPending:
			c.pending = cur
			c.hasPending = true

		default:
			first, second, merged := c.combine(c.pending, cur)
			if merged {
				c.pending = first
				continue
			}
			c.pending = second
			return first, stream.Ready
		}
	}
}
