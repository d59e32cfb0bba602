// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package response

import "fmt"

// HTTPError indicates that an HTTP exchange completed but the server
// replied with a status code outside the 2XX range. The offending
// response is retained in full so callers can still inspect its
// status and body.
type HTTPError struct {
	// Response is the complete response that triggered the error.
	Response *Response
}

// Error returns a message naming the status code and reason phrase of
// the failed exchange. The response body is not included.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("Got non-OK response: %d: %s", e.Response.StatusCode, e.Response.StatusText)
}
