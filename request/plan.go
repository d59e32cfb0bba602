// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

// A Plan contains a description of a single HTTP request for execution
// by a client.
//
// A Plan carries only the parts of a request this library deals in:
// the method, the URL, and an optional pre-buffered body. Everything
// else about the exchange (headers, encodings, connection handling) is
// delegated to the transport. A Plan results in at most one request on
// the wire per execution, and an execution is never retried.
//
// Build a plan with For, chaining WithBody when a payload is needed:
//
//	p := request.For("POST", "https://example.com/upload").
//		WithBody(`{"greeting":"hello"}`)
//	resp, err := client.Do(p)
//	...
//
// A Plan is mutable while it is being built. Once it has been handed
// to a client for execution it must not be modified.
type Plan struct {
	// Method specifies the HTTP method (GET, POST, PUT, etc.). An
	// empty string means GET.
	Method string

	// URL specifies the URL to access, in string form.
	//
	// The URL is not parsed or validated when the plan is built. A
	// malformed URL surfaces as an error when the transport opens the
	// request, not before.
	URL string

	// Body is the pre-buffered request body to be sent. A nil or
	// empty body indicates no request body should be sent, for example
	// on a GET or DELETE request.
	Body []byte
}

// For returns a new Plan describing a request with the given method
// and URL, and no body.
//
// For has no side effects: nothing is validated, and nothing is sent,
// until the plan is handed to a client for execution.
func For(method, url string) *Plan {
	return &Plan{
		Method: method,
		URL:    url,
	}
}

// WithBody attaches body to the plan and returns the same plan to
// allow call chaining. Calling WithBody more than once replaces the
// previous body with the new one: the last value set is the one sent.
func (p *Plan) WithBody(body string) *Plan {
	p.Body = []byte(body)
	return p
}
