// Package stream provides a pull-based asynchronous sequence abstraction
// and adaptors between it and slices, iterators, and channels.
//
// A Stream produces one item per poll. A poll never blocks: it answers
// with one of three states, Ready (an item was produced), Pending (try
// again after the waker fires), or Done (exhausted, terminal). This makes
// streams composable without threads; a combinator polls its inputs and
// simply forwards Pending upward, together with the caller's Waker, so the
// wake-up responsibility always rests with whichever innermost producer
// was not ready.
//
// Basic usage:
//
//	s := stream.Of(1, 2, 3)
//	for v := range stream.All(s) {
//	    fmt.Println(v)
//	}
//
// Channel-backed streams bridge goroutine producers into the polling
// world:
//
//	ch := make(chan int)
//	go produce(ch)
//	got := stream.Collect(stream.FromChan(ch))
//
// Streams are single-consumer. Polls must be serialized by the caller and
// only one may be outstanding at a time; the drivers in this package
// (All, Collect, Next) obey that discipline.
package stream
