package kmerge

import (
	"github.com/drmingdrmer/stream-more/compare"
	"github.com/drmingdrmer/stream-more/stream"
)

// entry couples one input stream with its lookahead cell. Entries live in
// the engine's max-first heap and own their stream exclusively.
type entry[T any] struct {
	peeked peeked[T]
	source stream.Stream[T]

	// id identifies the entry in diagnostics. Assigned sequentially from
	// 1 as streams are attached.
	id string
}

// entryCompare derives the entry ordering from the user comparator: an
// entry that has not been peeked yet outranks every peeked entry, which
// forces the engine to prime all inputs before emitting anything. Two
// unpeeked entries are equal-ranked; two peeked entries compare by the
// user comparator on their buffered items.
func entryCompare[T any](cmp compare.Func[T]) func(a, b *entry[T]) int {
	return func(a, b *entry[T]) int {
		switch {
		case !a.peeked.has() && !b.peeked.has():
			return 0
		case !a.peeked.has():
			return 1
		case !b.peeked.has():
			return -1
		default:
			return cmp(a.peeked.value, b.peeked.value)
		}
	}
}
