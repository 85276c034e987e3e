// Package coalesce fuses adjacent items of a stream into single items
// using a caller-supplied combine function.
//
// The combinator keeps at most one pending item. Each item produced by
// the inner stream is offered to the CombineFunc together with the
// pending item; compatible pairs are fused and accumulation continues,
// while a rejected pair emits the pending item and retains the new one.
// Output order is strictly the inner stream's order with adjacent runs
// fused.
//
// Summing runs of same-sign numbers:
//
//	s := stream.Of(-1, -2, -3, 3, 1, 0, -1)
//	c := coalesce.New(s, func(a, b int) (int, int, bool) {
//	    if (a >= 0) == (b >= 0) {
//	        return a + b, 0, true
//	    }
//	    return a, b, false
//	})
//	got := stream.Collect[int](c) // [-6 4 -1]
package coalesce
