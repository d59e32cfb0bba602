// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package response contains the core type Response (the outcome of a
completed HTTP exchange) and the error type HTTPError (a completed
exchange whose status indicates failure).

A Response is a snapshot taken at the moment the transport reports the
exchange finished. It records the numeric status code, the reason
phrase from the status line, and the full body text. Once constructed
it is never modified.

Callers that only want successful responses chain through
RejectOnFailure, which passes 2XX responses through unchanged and
converts everything else into an HTTPError:

	resp, err := fetchx.Get(cl, "https://example.com")
	if err != nil {
		// transport-level failure
	}
	if resp, err = resp.RejectOnFailure(); err != nil {
		// completed exchange, non-2XX status
	}
	fmt.Println(resp.Text)

Callers that want to inspect error statuses themselves skip
RejectOnFailure and read the fields directly.
*/
package response
