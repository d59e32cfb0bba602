// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package promise

import (
	"sync"
)

// A Promise is a single-settlement container for the future result of an
// asynchronous operation. It starts out pending and settles exactly once,
// either resolved with a value or rejected with an error. Settling a
// promise that has already settled is a no-op.
//
// A Promise is safe for concurrent use by multiple goroutines: any number
// of goroutines may settle or await the same promise, and all awaiters
// observe the same outcome.
type Promise[T any] struct {
	done  chan struct{}
	once  sync.Once
	value T
	err   error
}

// New returns a new pending promise.
func New[T any]() *Promise[T] {
	return &Promise[T]{done: make(chan struct{})}
}

// Resolve settles the promise with a value. It returns true if this call
// settled the promise, and false if the promise was already settled, in
// which case the call has no effect.
func (p *Promise[T]) Resolve(value T) bool {
	settled := false
	p.once.Do(func() {
		p.value = value
		settled = true
		close(p.done)
	})
	return settled
}

// Reject settles the promise with an error, which must be non-nil. It
// returns true if this call settled the promise, and false if the promise
// was already settled, in which case the call has no effect.
func (p *Promise[T]) Reject(err error) bool {
	if err == nil {
		panic("fetchx/promise: nil error")
	}
	settled := false
	p.once.Do(func() {
		p.err = err
		settled = true
		close(p.done)
	})
	return settled
}

// Await blocks the calling goroutine until the promise settles, then
// returns the settlement outcome: the resolved value and a nil error, or
// the zero value and the rejection error.
//
// Await may be called any number of times, from any number of goroutines,
// before or after settlement. Every call returns the same outcome.
func (p *Promise[T]) Await() (T, error) {
	<-p.done
	return p.value, p.err
}

// Done returns a channel that is closed when the promise settles. It
// allows a promise to participate in select statements.
func (p *Promise[T]) Done() <-chan struct{} {
	return p.done
}

// Settled reports whether the promise has settled. It never blocks.
func (p *Promise[T]) Settled() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}
