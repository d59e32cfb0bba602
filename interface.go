// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

import (
	"github.com/gogama/fetchx/promise"
	"github.com/gogama/fetchx/request"
	"github.com/gogama/fetchx/response"
)

// Doer is the interface that wraps the basic Do method.
//
// Do executes an HTTP request plan, blocking until the execution ends,
// and returns the response or error it settled with. Client implements
// the Doer interface, and any other Doer implementation must behave
// substantially the same as Client.Do.
//
// Any Doer can be converted into an Executor via the Inflate function.
type Doer interface {
	Do(p *request.Plan) (*response.Response, error)
}

// AsyncDoer is the interface that wraps the basic DoAsync method.
//
// DoAsync starts executing an HTTP request plan and returns, without
// blocking, a promise which settles with the response or error the
// execution ends with. Client implements the AsyncDoer interface, and
// any other AsyncDoer implementation must behave substantially the
// same as Client.DoAsync.
//
// Any Doer can be used to emulate an AsyncDoer via the Inflate
// function.
type AsyncDoer interface {
	DoAsync(p *request.Plan) *promise.Promise[*response.Response]
}

// Getter is the interface that wraps the basic Get method.
//
// Get builds an HTTP request plan to issue a GET to the specified URL,
// executes the plan, and returns the response (and error, if any).
// Client implements the Getter interface, and any other Getter
// implementation must behave substantially the same as Client.Get.
//
// Any Doer can be used to emulate a Getter via the Get function.
type Getter interface {
	Get(url string) (*response.Response, error)
}

// Poster is the interface that wraps the basic Post method.
//
// Post builds an HTTP request plan to issue a POST with the given body
// to the specified URL, executes the plan, and returns the response
// (and error, if any). Client implements the Poster interface, and any
// other Poster implementation must behave substantially the same as
// Client.Post.
//
// Any Doer can be used to emulate a Poster via the Post function.
type Poster interface {
	Post(url, body string) (*response.Response, error)
}

// Putter is the interface that wraps the basic Put method.
//
// Put builds an HTTP request plan to issue a PUT with the given body
// to the specified URL, executes the plan, and returns the response
// (and error, if any). Client implements the Putter interface, and any
// other Putter implementation must behave substantially the same as
// Client.Put.
//
// Any Doer can be used to emulate a Putter via the Put function.
type Putter interface {
	Put(url, body string) (*response.Response, error)
}

// Patcher is the interface that wraps the basic Patch method.
//
// Patch builds an HTTP request plan to issue a PATCH with the given
// body to the specified URL, executes the plan, and returns the
// response (and error, if any). Client implements the Patcher
// interface, and any other Patcher implementation must behave
// substantially the same as Client.Patch.
//
// Any Doer can be used to emulate a Patcher via the Patch function.
type Patcher interface {
	Patch(url, body string) (*response.Response, error)
}

// Deleter is the interface that wraps the basic Delete method.
//
// Delete builds an HTTP request plan to issue a DELETE to the
// specified URL, executes the plan, and returns the response (and
// error, if any). Client implements the Deleter interface, and any
// other Deleter implementation must behave substantially the same as
// Client.Delete.
//
// Any Doer can be used to emulate a Deleter via the Delete function.
type Deleter interface {
	Delete(url string) (*response.Response, error)
}

// ContentsGetter is the interface that wraps the basic GetURLContents
// method.
//
// GetURLContents issues a GET to the specified URL and returns the
// response body text, or an error if the exchange failed or the
// response status code lies outside the 2XX range. Client implements
// the ContentsGetter interface, and any other ContentsGetter
// implementation must behave substantially the same as
// Client.GetURLContents.
//
// Any Doer can be used to emulate a ContentsGetter via the
// GetURLContents function.
type ContentsGetter interface {
	GetURLContents(url string) (string, error)
}

// Executor is the interface that groups the basic Do, DoAsync, Get,
// Post, Put, Patch, Delete, and GetURLContents methods.
//
// Any Doer can be converted into an Executor via the Inflate function.
type Executor interface {
	Doer
	AsyncDoer
	Getter
	Poster
	Putter
	Patcher
	Deleter
	ContentsGetter
}

// Get uses the specified Doer to issue a GET to the specified URL.
//
// The raw response is returned whatever its status code. To treat
// non-2XX statuses as errors, use GetURLContents, or chain the
// response through its RejectOnFailure method.
func Get(d Doer, url string) (*response.Response, error) {
	return d.Do(request.For("GET", url))
}

// Post uses the specified Doer to issue a POST with the given body to
// the specified URL.
//
// The raw response is returned whatever its status code. To treat
// non-2XX statuses as errors, chain the response through its
// RejectOnFailure method.
func Post(d Doer, url, body string) (*response.Response, error) {
	return d.Do(request.For("POST", url).WithBody(body))
}

// Put uses the specified Doer to issue a PUT with the given body to
// the specified URL.
//
// The raw response is returned whatever its status code. To treat
// non-2XX statuses as errors, chain the response through its
// RejectOnFailure method.
func Put(d Doer, url, body string) (*response.Response, error) {
	return d.Do(request.For("PUT", url).WithBody(body))
}

// Patch uses the specified Doer to issue a PATCH with the given body
// to the specified URL.
//
// The raw response is returned whatever its status code. To treat
// non-2XX statuses as errors, chain the response through its
// RejectOnFailure method.
func Patch(d Doer, url, body string) (*response.Response, error) {
	return d.Do(request.For("PATCH", url).WithBody(body))
}

// Delete uses the specified Doer to issue a DELETE to the specified
// URL.
//
// The raw response is returned whatever its status code. To treat
// non-2XX statuses as errors, chain the response through its
// RejectOnFailure method.
func Delete(d Doer, url string) (*response.Response, error) {
	return d.Do(request.For("DELETE", url))
}

// GetURLContents uses the specified Doer to issue a GET to the
// specified URL and returns the response body text.
//
// Unlike the bare verb functions, GetURLContents validates the
// response status: a status code outside the 2XX range fails with a
// *response.HTTPError and the zero string. A transport-level failure
// fails with a *RequestError.
func GetURLContents(d Doer, url string) (string, error) {
	resp, err := Get(d, url)
	if err != nil {
		return "", err
	}
	resp, err = resp.RejectOnFailure()
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// Inflate converts any non-nil Doer into an Executor. This may be
// helpful for interop across library boundaries, i.e. if code that
// only has access to a Doer needs to call a function that requires an
// Executor.
//
// If the Doer does not natively support DoAsync, the Executor
// synthesizes it by running Do on a new goroutine and settling a
// promise with its outcome.
func Inflate(d Doer) Executor {
	if d == nil {
		panic("fetchx: nil doer")
	}

	if e, ok := d.(Executor); ok {
		return e
	}

	return inflated{d}
}

type inflated struct {
	doer Doer
}

func (i inflated) Do(p *request.Plan) (*response.Response, error) {
	return i.doer.Do(p)
}

func (i inflated) DoAsync(p *request.Plan) *promise.Promise[*response.Response] {
	if a, ok := i.doer.(AsyncDoer); ok {
		return a.DoAsync(p)
	}

	prom := promise.New[*response.Response]()
	go func() {
		resp, err := i.doer.Do(p)
		if err != nil {
			prom.Reject(err)
			return
		}
		prom.Resolve(resp)
	}()
	return prom
}

func (i inflated) Get(url string) (*response.Response, error) {
	return Get(i.doer, url)
}

func (i inflated) Post(url, body string) (*response.Response, error) {
	return Post(i.doer, url, body)
}

func (i inflated) Put(url, body string) (*response.Response, error) {
	return Put(i.doer, url, body)
}

func (i inflated) Patch(url, body string) (*response.Response, error) {
	return Patch(i.doer, url, body)
}

func (i inflated) Delete(url string) (*response.Response, error) {
	return Delete(i.doer, url)
}

func (i inflated) GetURLContents(url string) (string, error) {
	return GetURLContents(i.doer, url)
}
