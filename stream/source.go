package stream

import "iter"

// Of returns an always-ready stream over the given items.
func Of[T any](items ...T) Stream[T] {
	return &sliceStream[T]{items: items}
}

type sliceStream[T any] struct {
	items []T
}

func (s *sliceStream[T]) PollNext(Waker) (T, State) {
	if len(s.items) == 0 {
		var zero T
		return zero, Done
	}
	v := s.items[0]
	s.items = s.items[1:]
	return v, Ready
}

// FromSeq adapts an iter.Seq into a stream. The sequence is pulled one
// element per poll and stopped once it is exhausted.
func FromSeq[T any](seq iter.Seq[T]) Stream[T] {
	next, stop := iter.Pull(seq)
	return &seqStream[T]{next: next, stop: stop}
}

type seqStream[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

func (s *seqStream[T]) PollNext(Waker) (T, State) {
	var zero T
	if s.done {
		return zero, Done
	}
	v, ok := s.next()
	if !ok {
		s.done = true
		s.stop()
		return zero, Done
	}
	return v, Ready
}
