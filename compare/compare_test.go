package compare_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drmingdrmer/stream-more/compare"
)

func TestDescending(t *testing.T) {
	cmp := compare.Descending[int]()

	assert.Positive(t, cmp(2, 1), "larger value is chosen first")
	assert.Negative(t, cmp(1, 2))
	assert.Zero(t, cmp(3, 3))
}

func TestAscending(t *testing.T) {
	cmp := compare.Ascending[int]()

	assert.Positive(t, cmp(1, 2), "smaller value is chosen first")
	assert.Negative(t, cmp(2, 1))
	assert.Zero(t, cmp(3, 3))
}

func TestAscendingStrings(t *testing.T) {
	cmp := compare.Ascending[string]()

	assert.Positive(t, cmp("apple", "banana"))
	assert.Negative(t, cmp("banana", "apple"))
}

func TestFn(t *testing.T) {
	// Order by the last digit only.
	cmp := compare.Fn(func(a, b int) bool { return a%10 < b%10 })

	assert.Positive(t, cmp(21, 13))
	assert.Negative(t, cmp(13, 21))

	// Fn never reports equality, even for equal-ranked values.
	assert.NotZero(t, cmp(11, 21))
}
