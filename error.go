// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

// A RequestError indicates that an execution failed at the transport
// level: the request could not be constructed, could not be sent, or
// the exchange was interrupted before a complete response arrived.
//
// Every RequestError carries the same fixed message regardless of
// cause. The underlying transport error is not part of the message
// but remains reachable through errors.Unwrap, errors.Is, and
// errors.As.
//
// A RequestError never represents an HTTP error status. A completed
// exchange always yields a response, whatever its status code;
// classifying non-2XX statuses as failures is the caller's choice,
// made through response.Response.RejectOnFailure.
type RequestError struct {
	cause error
}

// Error returns the fixed request error message.
func (e *RequestError) Error() string {
	return "An error occurred when constructing the request"
}

// Unwrap returns the underlying transport error, if one was recorded.
func (e *RequestError) Unwrap() error {
	return e.cause
}
