// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	require.NotNil(t, Default)
	n, ok := Default.(*NetHTTP)
	require.True(t, ok)
	assert.Nil(t, n.HTTPDoer)
}

func TestNetHTTP_Open(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		n := &NetHTTP{}

		op, err := n.Open("GET", "http://example.com")

		require.NoError(t, err)
		require.NotNil(t, op)
		assert.Equal(t, Opened, op.ReadyState())
		assert.Equal(t, 0, op.StatusCode())
		assert.Empty(t, op.StatusText())
		assert.Empty(t, op.ResponseText())
	})
	t.Run("malformed URL", func(t *testing.T) {
		n := &NetHTTP{}

		op, err := n.Open("GET", ":::")

		assert.Nil(t, op)
		assert.Error(t, err)
	})
	t.Run("invalid method", func(t *testing.T) {
		n := &NetHTTP{}

		op, err := n.Open("bad method", "http://example.com")

		assert.Nil(t, op)
		assert.Error(t, err)
	})
}

func TestNetHTTP_doer(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		n := &NetHTTP{}
		assert.Same(t, http.DefaultClient, n.doer())
	})
	t.Run("installed", func(t *testing.T) {
		cl := &http.Client{}
		n := &NetHTTP{HTTPDoer: cl}
		assert.Same(t, cl, n.doer())
	})
}

func TestOperation_Send(t *testing.T) {
	t.Run("load fires on every transition", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "hello")
		}))
		defer server.Close()
		op := open(t, server.Client(), "GET", server.URL)
		var states []ReadyState
		done := make(chan struct{})
		op.OnLoad(func() {
			states = append(states, op.ReadyState())
			if op.ReadyState() == Done {
				close(done)
			}
		})
		op.OnError(func(err error) {
			t.Error("error callback fired:", err)
			close(done)
		})

		err := op.Send(nil)

		require.NoError(t, err)
		waitFor(t, done)
		assert.Equal(t, []ReadyState{HeadersReceived, Loading, Done}, states)
		assert.Equal(t, 200, op.StatusCode())
		assert.Equal(t, "OK", op.StatusText())
		assert.Equal(t, "hello", op.ResponseText())
	})
	t.Run("non-2XX is still a load", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(404)
			_, _ = io.WriteString(w, "nothing here")
		}))
		defer server.Close()
		op := open(t, server.Client(), "GET", server.URL)
		done := make(chan struct{})
		op.OnLoad(func() {
			if op.ReadyState() == Done {
				close(done)
			}
		})
		op.OnError(func(err error) {
			t.Error("error callback fired:", err)
			close(done)
		})

		err := op.Send(nil)

		require.NoError(t, err)
		waitFor(t, done)
		assert.Equal(t, 404, op.StatusCode())
		assert.Equal(t, "Not Found", op.StatusText())
		assert.Equal(t, "nothing here", op.ResponseText())
	})
	t.Run("body is transmitted", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b, err := io.ReadAll(r.Body)
			assert.NoError(t, err)
			assert.Equal(t, int64(len(b)), r.ContentLength)
			_, _ = w.Write(b)
		}))
		defer server.Close()
		op := open(t, server.Client(), "POST", server.URL)
		done := make(chan struct{})
		op.OnLoad(func() {
			if op.ReadyState() == Done {
				close(done)
			}
		})

		err := op.Send([]byte(`{"greeting":"hello"}`))

		require.NoError(t, err)
		waitFor(t, done)
		assert.Equal(t, `{"greeting":"hello"}`, op.ResponseText())
	})
	t.Run("nil body sends no body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b, err := io.ReadAll(r.Body)
			assert.NoError(t, err)
			assert.Empty(t, b)
			assert.Equal(t, int64(0), r.ContentLength)
		}))
		defer server.Close()
		op := open(t, server.Client(), "GET", server.URL)
		done := make(chan struct{})
		op.OnLoad(func() {
			if op.ReadyState() == Done {
				close(done)
			}
		})

		err := op.Send(nil)

		require.NoError(t, err)
		waitFor(t, done)
	})
	t.Run("second send errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer server.Close()
		op := open(t, server.Client(), "GET", server.URL)
		done := make(chan struct{})
		op.OnLoad(func() {
			if op.ReadyState() == Done {
				close(done)
			}
		})
		require.NoError(t, op.Send(nil))

		err := op.Send(nil)

		assert.EqualError(t, err, alreadySentMsg)
		waitFor(t, done)
	})
	t.Run("callback registration after send panics", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer server.Close()
		op := open(t, server.Client(), "GET", server.URL)
		done := make(chan struct{})
		op.OnLoad(func() {
			if op.ReadyState() == Done {
				close(done)
			}
		})
		require.NoError(t, op.Send(nil))

		assert.PanicsWithValue(t, lateCallbackMsg, func() {
			op.OnLoad(func() {})
		})
		assert.PanicsWithValue(t, lateCallbackMsg, func() {
			op.OnError(func(error) {})
		})
		waitFor(t, done)
	})
	t.Run("connection refused fires error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()
		n := &NetHTTP{}
		op, err := n.Open("GET", url)
		require.NoError(t, err)
		errCh := make(chan error, 1)
		op.OnLoad(func() {
			t.Error("load callback fired on failure")
		})
		op.OnError(func(err error) {
			errCh <- err
		})

		err = op.Send(nil)

		require.NoError(t, err)
		opErr := waitForErr(t, errCh)
		assert.ErrorContains(t, opErr, "fetchx/transport: send")
		assert.Equal(t, Done, op.ReadyState())
		assert.Equal(t, 0, op.StatusCode())
		assert.Empty(t, op.StatusText())
		assert.Empty(t, op.ResponseText())
	})
	t.Run("body read failure fires error after load", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Promise more body than is delivered so the client's read
			// fails once the connection closes.
			w.Header().Set("Content-Length", "100")
			_, _ = io.WriteString(w, "short")
		}))
		defer server.Close()
		op := open(t, server.Client(), "GET", server.URL)
		var states []ReadyState
		errCh := make(chan error, 1)
		op.OnLoad(func() {
			states = append(states, op.ReadyState())
		})
		op.OnError(func(err error) {
			errCh <- err
		})

		err := op.Send(nil)

		require.NoError(t, err)
		opErr := waitForErr(t, errCh)
		assert.ErrorContains(t, opErr, "fetchx/transport: read body")
		assert.Equal(t, []ReadyState{HeadersReceived, Loading}, states)
		assert.Equal(t, Done, op.ReadyState())
		assert.Equal(t, 0, op.StatusCode())
		assert.Empty(t, op.ResponseText())
	})
}

func TestReasonPhrase(t *testing.T) {
	testCases := []struct {
		name     string
		response *http.Response
		expected string
	}{
		{
			name:     "phrase on the wire",
			response: &http.Response{Status: "200 OK", StatusCode: 200},
			expected: "OK",
		},
		{
			name:     "custom phrase preserved",
			response: &http.Response{Status: "404 No Such Spam", StatusCode: 404},
			expected: "No Such Spam",
		},
		{
			name:     "empty phrase falls back to standard text",
			response: &http.Response{Status: "", StatusCode: 404},
			expected: "Not Found",
		},
		{
			name:     "bare code falls back to standard text",
			response: &http.Response{Status: "503", StatusCode: 503},
			expected: "Service Unavailable",
		},
		{
			name:     "unknown code without phrase",
			response: &http.Response{Status: "701", StatusCode: 701},
			expected: "",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, reasonPhrase(testCase.response))
		})
	}
}

func open(t *testing.T, doer HTTPDoer, method, url string) Operation {
	t.Helper()
	n := &NetHTTP{HTTPDoer: doer}
	op, err := n.Open(method, url)
	require.NoError(t, err)
	require.NotNil(t, op)
	return op
}

func waitFor(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for operation to finish")
	}
}

func waitForErr(t *testing.T, errCh <-chan error) error {
	t.Helper()
	select {
	case err := <-errCh:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for operation error")
		return nil
	}
}
