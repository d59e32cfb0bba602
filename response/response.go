// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package response

// Response describes the outcome of a completed HTTP exchange. It is
// constructed once, when the transport reports the exchange finished,
// and must not be modified afterward.
//
// A Response is produced for every completed exchange regardless of
// status code. A 404 or 500 still yields a Response; it only becomes
// an error if the caller asks for that classification via
// RejectOnFailure.
type Response struct {
	// StatusCode is the numeric HTTP status code, e.g. 200.
	StatusCode int

	// StatusText is the reason phrase accompanying the status code,
	// e.g. "OK".
	StatusText string

	// Text is the full response body, as text.
	Text string
}

// IsSuccess indicates whether the response status code lies in the
// 2XX range. It is the non-destructive form of the classification
// applied by RejectOnFailure.
func (r *Response) IsSuccess() bool {
	return r.StatusCode/100 == 2
}

// RejectOnFailure returns the response unchanged if its status code
// lies in the 2XX range, and otherwise returns a nil response and an
// *HTTPError wrapping this response. No other classification is
// applied: redirects and client errors fail the same way server
// errors do.
func (r *Response) RejectOnFailure() (*Response, error) {
	if !r.IsSuccess() {
		return nil, &HTTPError{Response: r}
	}
	return r, nil
}
