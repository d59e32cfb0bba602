// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package transport defines the boundary between the fetchx client and
whatever performs its HTTP exchanges, and provides NetHTTP, the
standard implementation of that boundary over net/http.

The boundary is event-shaped rather than call-shaped. An Opener hands
out single-use Operations; the consumer registers callbacks on the
operation and then sends it:

	op, err := opener.Open("GET", "https://example.com")
	if err != nil {
		// request could not be constructed
	}
	op.OnLoad(func() {
		if op.ReadyState() != transport.Done {
			return // headers or body still arriving
		}
		// op.StatusCode(), op.StatusText(), op.ResponseText()
	})
	op.OnError(func(err error) {
		// exchange failed; no response data
	})
	err = op.Send(nil)

The load callback fires at every ready state transition after send,
not just the last one, so consumers interested only in the outcome
filter on ReadyState. The error callback fires instead of, never in
addition to, the terminal load callback. Callbacks run on the
operation's own goroutine, one at a time.

Most users never touch this package directly: the fetchx client drives
it and translates its signals into promises, responses, and errors.
It is public so that clients can be pointed at alternative transports,
for example the rate-limited decorator in the throttle package, or a
scripted fake in tests.
*/
package transport
