package kmerge

// peeked is the lookahead cell of one merge entry: it holds at most one
// item fetched from the producer ahead of emission, so the heads of all
// inputs can be compared without consuming them.
type peeked[T any] struct {
	value T
	ok    bool
}

// has reports whether the cell holds a buffered item.
func (p *peeked[T]) has() bool {
	return p.ok
}

// fill buffers v. The cell must be empty.
func (p *peeked[T]) fill(v T) {
	p.value = v
	p.ok = true
}

// take returns the buffered item and resets the cell to empty.
func (p *peeked[T]) take() T {
	v := p.value
	var zero T
	p.value = zero
	p.ok = false
	return v
}
