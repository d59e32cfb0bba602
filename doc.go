// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package fetchx provides a minimal asynchronous HTTP client built on a
request/response/promise contract within a simple and familiar
interface.

Create a Client to begin making requests.

	client := &fetchx.Client{}
	resp, err := client.Get("https://www.example.com")
	...
	resp, err := client.Post("https://www.example.com/upload",
		`{"greeting":"hello"}`)

Every request executes exactly once: the client never retries, never
times out an exchange on its own, and never rejects a response because
of its HTTP status. A completed exchange resolves to a Response even
when the status is 404 or 500; a *RequestError is produced only when
the exchange itself could not be completed. To treat non-2XX statuses
as errors, chain the response through RejectOnFailure, or fetch with
GetURLContents, which does the chaining for you:

	text, err := client.GetURLContents("https://www.example.com")
	...

To keep working while a request is in flight, use DoAsync, which
returns a promise in place of a response:

	prom := client.DoAsync(request.For("GET", "https://www.example.com"))
	... // other work
	resp, err := prom.Await()

For control over how requests are exchanged, install a custom
transport.Opener. For example, wrap the default transport in the
rate-limited decorator from package throttle:

	opener, err := throttle.NewOpener(10, 2, logFn, nil)
	...
	client := &fetchx.Client{
		Transport: opener,
	}

To hook into the fine-grained details of the client's execution logic,
install a handler into the appropriate handler chain:

	handlers := &fetchx.HandlerGroup{}
	handlers.PushBack(fetchx.AfterExecutionEnd, fetchx.HandlerFunc(
		func(_ fetchx.Event, e *request.Execution) {
			log.Printf("%s %s finished in state %s after %s",
				e.Plan.Method, e.Plan.URL, e.State, e.Duration())
		}),
	)
	client := &fetchx.Client{
		Handlers: handlers,
	}

Package fetchx provides basic interfaces for each method of the client
(Doer, AsyncDoer, Getter, Poster, Putter, Patcher, Deleter, and
ContentsGetter); a combined interface that composes all the basic
methods (Executor); and utility functions for working with a Doer
(Inflate, Get, Post, Put, Patch, Delete, and GetURLContents).
*/
package fetchx
