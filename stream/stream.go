package stream

// State is the outcome of a single poll of a Stream.
type State uint8

const (
	// Pending means no item is available yet. The producer has registered
	// the Waker passed to PollNext and will invoke it once another poll
	// may make progress.
	Pending State = iota

	// Ready means one item was produced.
	Ready

	// Done means the stream is exhausted. Done is terminal: every later
	// poll reports Done again and never yields another item.
	Done
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Ready:
		return "Ready"
	case Done:
		return "Done"
	}
	return "Unknown"
}

// A Waker is the wake-up callback handed to a poll. A producer that
// returns Pending must arrange for the most recently supplied Waker to be
// invoked when a subsequent poll can make progress. Combinators forward
// the Waker to their inner streams and never invoke it themselves.
type Waker func()

// Stream is a pull-based asynchronous sequence. One item is requested per
// poll; a stream that cannot produce yet answers Pending instead of
// blocking.
//
// A Stream is single-consumer: polls must be serialized by the caller,
// and only one poll may be outstanding at a time.
type Stream[T any] interface {
	// PollNext attempts to produce the next item without blocking.
	// The returned item is only meaningful when the state is Ready.
	PollNext(w Waker) (T, State)
}

// PollFunc adapts a poll function into a Stream.
type PollFunc[T any] func(w Waker) (T, State)

// PollNext implements Stream by calling f.
func (f PollFunc[T]) PollNext(w Waker) (T, State) { return f(w) }
