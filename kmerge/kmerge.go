package kmerge

import (
	"cmp"
	"strconv"

	"github.com/drmingdrmer/stream-more/compare"
	"github.com/drmingdrmer/stream-more/priority"
	"github.com/drmingdrmer/stream-more/stream"
)

// KMerge interleaves several sorted streams into one sorted stream.
//
// Entries are kept in a max-first heap ranked by entryCompare: unpeeked
// entries outrank peeked ones, so every input is primed with a lookahead
// item before the first emission, after which the heap top holds the
// globally next item. For sorted output, every input must itself yield
// items in the order the comparator decides; otherwise the output order
// is undefined, though the engine stays consistent.
type KMerge[T any] struct {
	nextID uint64
	heap   *priority.Heap[*entry[T]]
}

// New returns an empty merge ordered by cmp. When cmp(a, b) is positive,
// a is chosen before b.
func New[T any](cmp compare.Func[T]) *KMerge[T] {
	entryCmp := entryCompare(cmp)
	return &KMerge[T]{
		heap: priority.NewHeap(func(a, b *entry[T]) bool {
			return entryCmp(a, b) > 0
		}),
	}
}

// By returns a merge of s ordered by the predicate first. first(a, b)
// should report whether a is ordered before b; if every input is sorted
// according to first, the result is sorted.
func By[T any](first func(a, b T) bool, s stream.Stream[T]) *KMerge[T] {
	return New(compare.Fn(first)).Merge(s)
}

// ByCmp returns a merge of s ordered by the comparator cmp.
func ByCmp[T any](cmp compare.Func[T], s stream.Stream[T]) *KMerge[T] {
	return New(cmp).Merge(s)
}

// Max returns a merge of s that always chooses the largest buffered item,
// behaving like a max-heap. Inputs should be sorted in descending order.
func Max[T cmp.Ordered](s stream.Stream[T]) *KMerge[T] {
	return New(compare.Descending[T]()).Merge(s)
}

// Min returns a merge of s that always chooses the smallest buffered
// item, behaving like a min-heap. Inputs should be sorted in ascending
// order.
func Min[T cmp.Ordered](s stream.Stream[T]) *KMerge[T] {
	return New(compare.Ascending[T]()).Merge(s)
}

// Merge attaches another input stream and returns the engine for
// chaining. It may be called at any time, including between polls: items
// already returned are unaffected, and the new stream's items merge into
// everything not yet returned.
func (m *KMerge[T]) Merge(s stream.Stream[T]) *KMerge[T] {
	m.nextID++
	m.heap.Push(&entry[T]{
		source: s,
		id:     strconv.FormatUint(m.nextID, 10),
	})
	return m
}

// Len returns the number of attached streams that are not yet exhausted.
func (m *KMerge[T]) Len() int {
	return m.heap.Len()
}

// PollNext implements stream.Stream.
//
// Each call loops over the heap top:
//
//  1. An empty heap means every input is exhausted: Done.
//  2. A peeked top entry holds the globally next item: take it and
//     return. Taking leaves the entry unpeeked, which ranks it back at
//     the top, so it is re-primed on the next poll.
//  3. An unpeeked top entry is polled. Pending propagates to the caller
//     with all state unchanged. An item fills the lookahead cell and the
//     top is re-ranked. An exhausted input is removed from the heap and
//     never polled again.
func (m *KMerge[T]) PollNext(w stream.Waker) (T, stream.State) {
	var zero T
	for {
		top, ok := m.heap.Peek()
		if !ok {
			return zero, stream.Done
		}

		if top.peeked.has() {
			return top.peeked.take(), stream.Ready
		}

		v, st := top.source.PollNext(w)
		switch st {
		case stream.Pending:
			return zero, stream.Pending
		case stream.Ready:
			top.peeked.fill(v)
			m.heap.Fix()
		case stream.Done:
			m.heap.Pop()
		}
	}
}
