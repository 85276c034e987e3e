// Package compare defines the three-way comparators used to order merged
// streams.
package compare

import "cmp"

// Func compares two values. A positive result means a should be chosen
// before b, negative means b first, zero means the two are equal-ranked.
type Func[T any] func(a, b T) int

// Descending orders values by their natural order, largest first.
func Descending[T cmp.Ordered]() Func[T] {
	return func(a, b T) int {
		return cmp.Compare(a, b)
	}
}

// Ascending orders values by their reversed natural order, smallest
// first.
func Ascending[T cmp.Ordered]() Func[T] {
	return func(a, b T) int {
		return cmp.Compare(b, a)
	}
}

// Fn adapts a predicate into a comparator. first(a, b) should report
// whether a is ordered before b. The resulting comparator never reports
// two values as equal-ranked.
func Fn[T any](first func(a, b T) bool) Func[T] {
	return func(a, b T) int {
		if first(a, b) {
			return 1
		}
		return -1
	}
}
