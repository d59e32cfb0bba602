// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the core types Plan (describes an HTTP
request) and Execution (describes a Plan execution). These two types
are fundamental to making asynchronous HTTP requests.

The first core type is Plan, which represents a single HTTP request.

A Plan describes how to make one logical HTTP request. For those
familiar with the Go standard HTTP library, net/http, a Plan looks
like a radically stripped-down http.Request: a method, a URL kept in
string form, and an optional pre-buffered body. There is deliberately
nothing else, because everything else about the exchange belongs to
the transport.

Create a plan with the For builder, attaching a body where one is
needed:

	p := request.For("GET", "https://example.com")
	...
	q := request.For("POST", "https://example.com/upload").WithBody(payload)
	...

Building a plan performs no validation and no I/O. A malformed URL,
an unreachable host, or any other problem with the request surfaces
only when the plan is executed.

The second core type is Execution, which represents the state of the
execution of a plan. Execution is the input type for event handlers
invoked during the plan execution, and records the execution's
lifecycle State (Built, Sent, and finally Completed or Failed), its
identity, its timing, and its outcome. You will typically not allocate
Execution instances yourself, but will instead work with the ones
handed out by the client's execution logic.
*/
package request
