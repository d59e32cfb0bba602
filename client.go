// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

import (
	"sync/atomic"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	"github.com/gogama/fetchx/promise"
	"github.com/gogama/fetchx/request"
	"github.com/gogama/fetchx/response"
	"github.com/gogama/fetchx/transport"
)

var (
	emptyHandlers = HandlerGroup{}
	defaultClock  = clock.New()
)

// A Client is an asynchronous HTTP client. Its zero value is a valid
// configuration.
//
// The zero value client uses transport.Default as its transport, the
// system clock, and an empty handler group (no event handlers).
//
// Client is safe for concurrent use by multiple goroutines: each
// execution gets its own transport operation, execution record, and
// promise, and the client itself holds no per-request state.
//
// A Client is higher-level than a transport.Opener. The opener is
// responsible for all details of exchanging an HTTP request, while
// Client builds on top of the opener's event-shaped contract. On top
// of the exchange mechanics provided by the opener, Client adds the
// following:
//
// • Client turns the transport's multi-fire load signal and its error
// signal into a promise that settles exactly once, with a response or
// with an error;
//
// • Client reads and buffers the complete response into an immutable
// response.Response;
//
// • Client translates transport-level failures into *RequestError,
// keeping them distinct from HTTP error statuses, which never fail an
// execution on their own;
//
// • Client invokes user-provided handler functions at designated
// plug-in points within the execution lifecycle, allowing new features
// to be mixed in from outside libraries; and
//
// • Client implements the fetchx.Executor interface.
//
// Each plan execution is single-shot. The client sends the request at
// most once, never retries, and imposes no timeout: an execution ends
// when the transport reports an outcome, whichever outcome that is.
type Client struct {
	// Transport specifies the mechanics of opening and exchanging
	// HTTP requests.
	//
	// If Transport is nil, transport.Default is used.
	Transport transport.Opener
	// Handlers allows custom handler chains to be invoked when
	// designated events occur during execution of a request plan.
	//
	// If Handlers is nil, no custom handlers will be run.
	Handlers *HandlerGroup
	// Clock supplies the time used to stamp the start and end of each
	// execution.
	//
	// If Clock is nil, the system clock is used.
	Clock clock.Clock
}

// DoAsync starts executing an HTTP request plan and returns a promise
// which settles when the execution ends. DoAsync never blocks: the
// exchange proceeds on the transport's goroutine while the caller
// keeps working, and the caller collects the outcome with the
// promise's Await method whenever it is ready to.
//
// The promise resolves with a response if the transport delivers one,
// regardless of HTTP status code: a non-2XX status does not reject
// the promise. Callers which want error statuses converted into
// errors chain the resolved response through its RejectOnFailure
// method, or use GetURLContents.
//
// The promise rejects with a *RequestError if the exchange could not
// be completed: the request could not be constructed from the plan,
// could not be sent, or failed at the network level. If construction
// or sending fails, the returned promise is already rejected.
//
// Each plan execution is single-shot. The promise settles exactly
// once, with exactly one of a response or an error, and the plan is
// not retried. The plan must not be modified until the promise
// settles. By the time the promise settles, the execution record is
// in its terminal state and the AfterExecutionEnd handlers have
// returned.
func (c *Client) DoAsync(p *request.Plan) *promise.Promise[*response.Response] {
	e := &request.Execution{
		Plan:  p,
		ID:    uuid.NewString(),
		State: request.Built,
	}

	clk := c.clock()
	handlers := c.Handlers
	if handlers == nil {
		handlers = &emptyHandlers
	}
	prom := promise.New[*response.Response]()

	// settled arbitrates between competing terminal signals. The
	// winning signal finalizes the execution record and runs the
	// AfterExecutionEnd handlers before the promise settles, so a
	// caller returning from Await always observes an ended execution.
	var settled atomic.Bool

	// fail is the terminal transition for every failure path.
	fail := func(cause error) {
		if !settled.CompareAndSwap(false, true) {
			return
		}
		reqErr := &RequestError{cause: cause}
		e.Err = reqErr
		e.State = request.Failed
		e.End = clk.Now()
		handlers.run(AfterExecutionEnd, e)
		prom.Reject(reqErr)
	}

	handlers.run(BeforeExecutionStart, e)
	e.Start = clk.Now()

	op, err := c.opener().Open(p.Method, p.URL)
	if err != nil {
		fail(err)
		return prom
	}

	op.OnLoad(func() {
		e.StateChanges++
		handlers.run(AfterReadyStateChange, e)
		if op.ReadyState() != transport.Done {
			return
		}
		if !settled.CompareAndSwap(false, true) {
			return
		}
		resp := &response.Response{
			StatusCode: op.StatusCode(),
			StatusText: op.StatusText(),
			Text:       op.ResponseText(),
		}
		e.Response = resp
		e.State = request.Completed
		e.End = clk.Now()
		handlers.run(AfterExecutionEnd, e)
		prom.Resolve(resp)
	})
	op.OnError(fail)

	handlers.run(BeforeSend, e)

	// The state must advance before Send: once Send returns, the
	// operation's goroutine owns the execution record, and a write
	// from this goroutine would race with the callbacks.
	e.State = request.Sent
	if err := op.Send(p.Body); err != nil {
		fail(err)
	}

	return prom
}

// Do executes an HTTP request plan and blocks until the execution
// ends, returning the response or error the execution settled with.
//
// A response is returned if the transport delivered one, regardless
// of HTTP status code: a non-2XX status does not produce an error.
// Callers which want error statuses converted into errors chain the
// response through its RejectOnFailure method, or use GetURLContents.
//
// An error is returned if the exchange could not be completed, and it
// is always of type *RequestError.
//
// Do is equivalent to DoAsync followed immediately by Await. For
// simple use cases, the Get, Post, Put, Patch, and Delete methods may
// prove easier to use than Do.
func (c *Client) Do(p *request.Plan) (*response.Response, error) {
	return c.DoAsync(p).Await()
}

// Get issues a GET to the specified URL and returns the response,
// following the same rules as Do.
func (c *Client) Get(url string) (*response.Response, error) {
	return Get(c, url)
}

// Post issues a POST with the given body to the specified URL and
// returns the response, following the same rules as Do.
func (c *Client) Post(url, body string) (*response.Response, error) {
	return Post(c, url, body)
}

// Put issues a PUT with the given body to the specified URL and
// returns the response, following the same rules as Do.
func (c *Client) Put(url, body string) (*response.Response, error) {
	return Put(c, url, body)
}

// Patch issues a PATCH with the given body to the specified URL and
// returns the response, following the same rules as Do.
func (c *Client) Patch(url, body string) (*response.Response, error) {
	return Patch(c, url, body)
}

// Delete issues a DELETE to the specified URL and returns the
// response, following the same rules as Do.
func (c *Client) Delete(url string) (*response.Response, error) {
	return Delete(c, url)
}

// GetURLContents issues a GET to the specified URL and returns the
// response body text, rejecting any response whose status code lies
// outside the 2XX range with a *response.HTTPError.
func (c *Client) GetURLContents(url string) (string, error) {
	return GetURLContents(c, url)
}

func (c *Client) opener() transport.Opener {
	if c.Transport == nil {
		return transport.Default
	}

	return c.Transport
}

func (c *Client) clock() clock.Clock {
	if c.Clock == nil {
		return defaultClock
	}

	return c.Clock
}
