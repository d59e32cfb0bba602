// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"
)

const (
	alreadySentMsg  = "fetchx/transport: operation already sent"
	lateCallbackMsg = "fetchx/transport: callback registered after send"
)

// Default is the opener used by clients which do not have their own
// opener installed. It exchanges requests through http.DefaultClient.
var Default Opener = &NetHTTP{}

// NetHTTP is an Opener which exchanges requests through an HTTP client
// from the standard net/http library, or anything else implementing
// HTTPDoer.
//
// The zero value is a valid NetHTTP which uses http.DefaultClient. To
// control redirect behavior, TLS, proxies, or connection pooling,
// install a configured *http.Client:
//
//	opener := &transport.NetHTTP{
//		HTTPDoer: &http.Client{Transport: myTransport},
//	}
//
// NetHTTP is safe for concurrent use by multiple goroutines.
type NetHTTP struct {
	// HTTPDoer specifies the mechanism used to exchange individual
	// HTTP requests.
	//
	// If HTTPDoer is nil, http.DefaultClient is used.
	HTTPDoer HTTPDoer
}

// Open returns a new unsent Operation bound to the given method and
// URL. Open fails if a request cannot be constructed from them, for
// example because the URL is malformed. It performs no network I/O.
func (n *NetHTTP) Open(method, url string) (Operation, error) {
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return nil, err
	}
	op := &operation{
		doer: n.doer(),
		req:  req,
	}
	op.state.Store(int32(Opened))
	return op, nil
}

func (n *NetHTTP) doer() HTTPDoer {
	if n.HTTPDoer == nil {
		return http.DefaultClient
	}

	return n.HTTPDoer
}

// operation is the Operation implementation produced by NetHTTP.
//
// The caller's goroutine owns the operation until Send; after Send
// returns nil, the exchange goroutine owns it, and the caller may only
// call ReadyState (atomic) or read response data from inside a
// callback or after the exchange goroutine has signalled completion.
type operation struct {
	doer         HTTPDoer
	req          *http.Request
	state        atomic.Int32
	sent         atomic.Bool
	onLoad       func()
	onError      func(error)
	statusCode   int
	statusText   string
	responseText string
}

func (o *operation) OnLoad(fn func()) {
	if o.sent.Load() {
		panic(lateCallbackMsg)
	}
	o.onLoad = fn
}

func (o *operation) OnError(fn func(error)) {
	if o.sent.Load() {
		panic(lateCallbackMsg)
	}
	o.onError = fn
}

func (o *operation) Send(body []byte) error {
	if !o.sent.CompareAndSwap(false, true) {
		return errors.New(alreadySentMsg)
	}
	if len(body) > 0 {
		o.req.Body = io.NopCloser(bytes.NewReader(body))
		o.req.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		}
		o.req.ContentLength = int64(len(body))
	}
	go o.exchange()
	return nil
}

func (o *operation) ReadyState() ReadyState {
	return ReadyState(o.state.Load())
}

func (o *operation) StatusCode() int {
	return o.statusCode
}

func (o *operation) StatusText() string {
	return o.statusText
}

func (o *operation) ResponseText() string {
	return o.responseText
}

// exchange completes the HTTP exchange. It runs on its own goroutine
// and is the only writer to the operation's state and response data
// after Send.
func (o *operation) exchange() {
	resp, err := o.doer.Do(o.req)
	if err != nil {
		o.fail(errors.Wrap(err, "fetchx/transport: send"))
		return
	}
	o.statusCode = resp.StatusCode
	o.statusText = reasonPhrase(resp)
	o.advance(HeadersReceived)
	o.advance(Loading)
	text, err := io.ReadAll(resp.Body)
	if err != nil {
		_ = resp.Body.Close()
		o.fail(errors.Wrap(err, "fetchx/transport: read body"))
		return
	}
	if err = resp.Body.Close(); err != nil {
		o.fail(errors.Wrap(err, "fetchx/transport: close body"))
		return
	}
	o.responseText = string(text)
	o.advance(Done)
}

// advance moves the operation to ready state s and fires the load
// callback.
func (o *operation) advance(s ReadyState) {
	o.state.Store(int32(s))
	if o.onLoad != nil {
		o.onLoad()
	}
}

// fail finishes the operation without response data and fires the
// error callback. The load callback is not fired for the state change
// to Done.
func (o *operation) fail(err error) {
	o.statusCode = 0
	o.statusText = ""
	o.responseText = ""
	o.state.Store(int32(Done))
	if o.onError != nil {
		o.onError(err)
	}
}

// reasonPhrase extracts the reason phrase from the response status
// line. Some exchanges carry no phrase on the wire (HTTP/2 abolished
// it), so an empty phrase falls back to the standard text for the
// status code.
func reasonPhrase(resp *http.Response) string {
	phrase := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))
	phrase = strings.TrimPrefix(phrase, " ")
	if phrase == "" {
		return http.StatusText(resp.StatusCode)
	}

	return phrase
}
