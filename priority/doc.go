// Package priority implements a generic binary heap ordered by a
// user-provided comparison function.
//
// The heap supports the access pattern a merging engine needs: inspect
// the top element, mutate its ranking key in place (for pointer element
// types), then re-rank it with Fix rather than popping and re-pushing.
//
// Basic usage:
//
//	h := priority.NewHeap[int](func(a, b int) bool { return a < b })
//	h.Push(5)
//	h.Push(3)
//	h.Push(7)
//
//	top, ok := h.Peek() // 3, true
//	top, ok = h.Pop()   // 3, true
//
// The less function should return true if a outranks b; the
// highest-ranking element is kept at the top. Ordering among
// equal-ranked elements is unspecified.
package priority
