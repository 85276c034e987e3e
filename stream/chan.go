package stream

import "sync"

// FromChan adapts a receive channel into a stream. Receives never block:
// when the channel has nothing to offer, the poll reports Pending and a
// watcher goroutine is parked on the channel to fire the waker once an
// item arrives or the channel closes. A closed channel ends the stream.
//
// A parked watcher stays blocked on the channel until the next send or
// close, even when the stream itself is no longer polled; abandoning a
// pending channel stream without closing the channel leaks that
// goroutine.
func FromChan[T any](ch <-chan T) Stream[T] {
	return &chanStream[T]{ch: ch}
}

type chanStream[T any] struct {
	mu       sync.Mutex
	ch       <-chan T
	buf      T
	buffered bool
	closed   bool
	waker    Waker
	waiting  bool
}

func (s *chanStream[T]) PollNext(w Waker) (T, State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	if s.buffered {
		v := s.buf
		s.buf = zero
		s.buffered = false
		return v, Ready
	}
	if s.closed {
		return zero, Done
	}

	// While a watcher is parked it is the sole receiver: receiving here
	// as well could take a later item before the watcher's earlier one
	// is buffered. A re-poll only refreshes the waker.
	if s.waiting {
		s.waker = w
		return zero, Pending
	}

	select {
	case v, ok := <-s.ch:
		if !ok {
			s.closed = true
			return zero, Done
		}
		return v, Ready
	default:
	}

	s.waker = w
	s.waiting = true
	go s.watch()
	return zero, Pending
}

// watch blocks on the channel on behalf of a pending poll, stashes the
// outcome, and fires the most recent waker.
func (s *chanStream[T]) watch() {
	v, ok := <-s.ch

	s.mu.Lock()
	s.waiting = false
	if ok {
		s.buf = v
		s.buffered = true
	} else {
		s.closed = true
	}
	w := s.waker
	s.mu.Unlock()

	w()
}
