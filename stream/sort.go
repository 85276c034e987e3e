package stream

import "github.com/google/btree"

// Sort buffers every item of s in a B-tree and then produces them ordered
// by less. Arrival order breaks ties between equal items, so duplicates
// are preserved and equal items keep their production order.
//
// Nothing is emitted until the inner stream is exhausted; a Pending inner
// stream makes Sort pending too.
func Sort[T any](s Stream[T], less func(a, b T) bool) Stream[T] {
	tree := btree.NewG(2, func(a, b arrival[T]) bool {
		if less(a.value, b.value) {
			return true
		}
		if less(b.value, a.value) {
			return false
		}
		return a.seq < b.seq
	})
	return &sortStream[T]{inner: s, tree: tree}
}

// arrival tags a buffered item with its arrival index.
type arrival[T any] struct {
	value T
	seq   uint64
}

type sortStream[T any] struct {
	inner  Stream[T]
	tree   *btree.BTreeG[arrival[T]]
	seq    uint64
	loaded bool
}

func (s *sortStream[T]) PollNext(w Waker) (T, State) {
	var zero T
	for !s.loaded {
		v, st := s.inner.PollNext(w)
		switch st {
		case Pending:
			return zero, Pending
		case Ready:
			s.seq++
			s.tree.ReplaceOrInsert(arrival[T]{value: v, seq: s.seq})
		case Done:
			s.loaded = true
		}
	}

	v, ok := s.tree.DeleteMin()
	if !ok {
		return zero, Done
	}
	return v.value, Ready
}
