// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"time"

	"github.com/gogama/fetchx/response"
)

// An Execution represents the state of a single Plan execution.
//
// When a plan execution is requested, an Execution is created for it.
// The Execution is updated as the execution progresses through its
// lifecycle (Built, Sent, and finally one of Completed or Failed) and
// is the value handed to event handlers at each lifecycle event.
//
// Event handlers may set values on an Execution using its SetValue
// method and read them back using the Value method. However, they
// should treat the structure's exported fields as immutable and leave
// them unmodified, as the execution state is vital to the correct
// functioning of the execution logic.
type Execution struct {
	// Plan specifies the HTTP request plan being executed. It is
	// never nil.
	Plan *Plan

	// ID uniquely identifies the execution. It is assigned when the
	// execution is created and never changes thereafter.
	ID string

	// State identifies the lifecycle stage the execution has reached.
	// It only ever moves forward, and exactly one of the two terminal
	// states, Completed or Failed, is reached per execution.
	State State

	// Start is the start time of the execution. It is assigned a
	// non-zero value when the execution starts, and this value remains
	// constant thereafter.
	Start time.Time

	// End is the end time of the execution. It contains the zero value
	// until the execution reaches a terminal state, when it is set to
	// the current time.
	End time.Time

	// StateChanges counts the ready state change signals received from
	// the transport during the execution. It is zero until the request
	// is sent, and increments on every signal, including the terminal
	// one. A successful execution over a real HTTP transport observes
	// several signals, not just the final one.
	StateChanges int

	// Response specifies the response received, if the execution
	// completed. It is nil while the execution is in flight, and stays
	// nil forever if the execution failed.
	Response *response.Response

	// Err indicates the error that failed the execution. It is nil
	// while the execution is in flight, and stays nil forever if the
	// execution completed.
	Err error

	// data contains arbitrary user data set by event handlers. It is
	// accessed via the Value and SetValue methods.
	data context.Context
}

// StatusCode returns the status code of the response received in the
// execution. If there is no response, 0 is returned.
//
// A zero value due to no response will be returned if the execution
// failed, or if the execution is still in flight.
func (e *Execution) StatusCode() int {
	if e.Response == nil {
		return 0
	}

	return e.Response.StatusCode
}

// Duration returns the duration of the execution.
//
// If the execution has not yet started, the duration is zero. If the
// execution has Ended, the duration returned is equal to End minus
// Start. Otherwise, it is equal to the current time minus Start. The
// return value is thus monotonically increasing over the life of the
// execution, and becomes static when the execution has ended.
func (e *Execution) Duration() time.Duration {
	if !e.Started() {
		return time.Duration(0)
	} else if !e.Ended() {
		return time.Now().Sub(e.Start)
	}

	return e.End.Sub(e.Start)
}

// Started indicates whether the execution has started.
//
// If the return value is false, the execution has not started yet. If
// the return value is true, then the execution has started, and Start
// is a non-zero time, indicating the execution start time.
func (e *Execution) Started() bool {
	return e.Start != (time.Time{})
}

// Ended indicates whether the execution has ended.
//
// If the return value is false, the execution is still in-flight. If
// the return value is true, then the execution is over, End is a
// non-zero time, and there will be no further changes to the
// execution.
func (e *Execution) Ended() bool {
	return e.End != (time.Time{})
}

// SetValue allows event handlers to store arbitrary data in the
// execution.
//
// The key must follow the same rules as the key parameter in
// context.WithValue, namely it:
//
// • it may not be nil;
//
// • it must be comparable;
//
// • it should not be of type string or any other built-in type to
// avoid collisions between different event handlers putting data into
// the same execution.
func (e *Execution) SetValue(key, value any) {
	ctx := e.data
	if ctx == nil {
		ctx = context.Background()
	}

	e.data = context.WithValue(ctx, key, value)
}

// Value returns the data value associated with this execution for key,
// or nil if there is no value associated with key.
func (e *Execution) Value(key any) any {
	ctx := e.data
	if ctx == nil {
		return nil
	}

	return ctx.Value(key)
}
