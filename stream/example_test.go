package stream_test

import (
	"fmt"

	"github.com/drmingdrmer/stream-more/stream"
)

// ExampleAll iterates a stream with a range loop.
func ExampleAll() {
	s := stream.Of("a", "b", "c")

	for v := range stream.All(s) {
		fmt.Printf("%s ", v)
	}

	// Output: a b c
}

// ExampleFromChan drives a stream fed by a producer goroutine.
func ExampleFromChan() {
	ch := make(chan int)
	go func() {
		defer close(ch)
		for i := 1; i <= 3; i++ {
			ch <- i
		}
	}()

	fmt.Println(stream.Collect(stream.FromChan(ch)))

	// Output: [1 2 3]
}

// ExampleSort buffers an unsorted stream and produces it in order.
func ExampleSort() {
	s := stream.Of(3, 1, 2)

	sorted := stream.Sort(s, func(a, b int) bool { return a < b })
	fmt.Println(stream.Collect(sorted))

	// Output: [1 2 3]
}
