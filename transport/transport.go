// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import "net/http"

// Opener is the interface through which a client begins an HTTP
// exchange.
//
// Open constructs a new, unsent Operation bound to the given method
// and URL. Open is where request construction problems, for example a
// malformed URL, surface; it performs no network I/O. Each call to
// Open yields a fresh single-use Operation.
//
// Opener implementations must be safe for concurrent use by multiple
// goroutines.
type Opener interface {
	Open(method, url string) (Operation, error)
}

// Operation is a single in-flight HTTP exchange.
//
// An Operation is single-use. The intended call sequence is: register
// callbacks with OnLoad and OnError, then call Send exactly once.
// Registering a callback after Send is a programming error and panics.
//
// Send either returns a non-nil error synchronously, in which case no
// callback will ever fire, or returns nil, in which case exactly one
// of the two callback kinds fires later, from the operation's own
// goroutine:
//
//   - On the success path the OnLoad callback fires at every ready
//     state transition after send (HeadersReceived, Loading, Done),
//     so it fires more than once per exchange. Callbacks that only
//     care about the outcome must filter on ReadyState.
//   - On the failure path the OnError callback fires exactly once,
//     and the OnLoad callback does not fire for the failure.
//
// StatusCode and StatusText are readable once the operation reaches
// HeadersReceived; ResponseText once it reaches Done. After a failure
// the operation is Done but carries no response data.
type Operation interface {
	// OnLoad registers the callback invoked at each ready state
	// transition on the success path. A later call replaces the
	// previously registered callback.
	OnLoad(fn func())
	// OnError registers the callback invoked when the exchange fails.
	// A later call replaces the previously registered callback.
	OnError(fn func(error))
	// Send transmits the request, with the given payload if body is
	// non-empty and without one if body is nil or empty. Send returns
	// a non-nil error if the operation was already sent.
	Send(body []byte) error
	// ReadyState reports how far the exchange has progressed.
	ReadyState() ReadyState
	// StatusCode returns the HTTP status code, or 0 before
	// HeadersReceived and after a failure.
	StatusCode() int
	// StatusText returns the reason phrase accompanying the status
	// code, or the empty string before HeadersReceived and after a
	// failure.
	StatusText() string
	// ResponseText returns the full response body as text, or the
	// empty string before Done and after a failure.
	ResponseText() string
}

// HTTPDoer is the interface which must be implemented by the HTTP
// client NetHTTP uses to exchange requests. The interface is
// implemented by *http.Client from the standard net/http library, and
// NetHTTP uses http.DefaultClient when no other HTTPDoer is installed.
//
// Implementations of HTTPDoer must be safe for concurrent use by
// multiple goroutines.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}
