// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPError_Error(t *testing.T) {
	testCases := []struct {
		name     string
		response *Response
		expected string
	}{
		{
			name:     "not found",
			response: &Response{StatusCode: 404, StatusText: "Not Found", Text: "<html>nope</html>"},
			expected: "Got non-OK response: 404: Not Found",
		},
		{
			name:     "server error",
			response: &Response{StatusCode: 500, StatusText: "Internal Server Error"},
			expected: "Got non-OK response: 500: Internal Server Error",
		},
		{
			name:     "redirect",
			response: &Response{StatusCode: 301, StatusText: "Moved Permanently"},
			expected: "Got non-OK response: 301: Moved Permanently",
		},
		{
			name:     "empty status text",
			response: &Response{StatusCode: 599},
			expected: "Got non-OK response: 599: ",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			err := &HTTPError{Response: testCase.response}

			assert.EqualError(t, err, testCase.expected)
		})
	}
}
