package stream

import (
	"iter"
	"slices"
)

// All drives the stream to completion and yields every item in production
// order. The calling goroutine blocks whenever the stream is pending,
// parking until the waker fires.
func All[T any](s Stream[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		wake := make(chan struct{}, 1)
		w := Waker(func() {
			select {
			case wake <- struct{}{}:
			default:
			}
		})
		for {
			v, st := s.PollNext(w)
			switch st {
			case Ready:
				if !yield(v) {
					return
				}
			case Pending:
				<-wake
			case Done:
				return
			}
		}
	}
}

// Collect drives the stream to completion and returns every item it
// produced.
func Collect[T any](s Stream[T]) []T {
	return slices.Collect(All(s))
}

// Next blocks until the stream produces its next item. It reports false
// when the stream is exhausted instead.
func Next[T any](s Stream[T]) (T, bool) {
	for v := range All(s) {
		return v, true
	}
	var zero T
	return zero, false
}
