// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.
package future

// Result is the outcome of an asynchronous operation, either a value of type
// T or an error.
type Result[T any] struct {
	Value T
	Error error
}

// Ok creates a successful result.
func Ok[T any](value T) Result[T] {
	return Result[T]{Value: value}
}

// Get returns the value and error contained in the result.
func (r Result[T]) Get() (T, error) {
	return r.Value, r.Error
}

// Future is a handle on a value computed asynchronously. The value becomes
// available once the matching Promise is fulfilled.
type Future[T any] struct {
	result <-chan Result[T]
}

// Promise is the producing side of a Future. It must be fulfilled exactly
// once.
type Promise[T any] struct {
	result chan<- Result[T]
}

// Create creates a connected pair of a promise and a future.
func Create[T any]() (Promise[T], Future[T]) {
	channel := make(chan Result[T], 1)
	return Promise[T]{channel}, Future[T]{channel}
}

// Fulfill resolves the associated future with the given result. Calling
// Fulfill more than once panics.
func (p Promise[T]) Fulfill(result Result[T]) {
	p.result <- result
	close(p.result)
}

// Await blocks until the value of the future is available and returns it.
// Await must only be called once per future.
func (f Future[T]) Await() Result[T] {
	return <-f.result
}
