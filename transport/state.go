// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

// A ReadyState identifies how far an Operation has progressed through
// its exchange.
//
// Ready states only ever advance. Operations returned by an Opener
// start in Opened; a sent operation passes through HeadersReceived and
// Loading before settling in Done. Done is also reached when the
// exchange fails, in which case no response data is available.
type ReadyState int

const (
	// Unsent is the zero value. An Operation returned by an Opener
	// has already progressed past it; it is never observed on a live
	// operation.
	Unsent ReadyState = iota
	// Opened indicates the operation has been created but its request
	// has not been sent.
	Opened
	// HeadersReceived indicates the status line and response headers
	// have arrived. The status code and status text are readable.
	HeadersReceived
	// Loading indicates the response body is being received.
	Loading
	// Done indicates the exchange is finished, successfully or not.
	// After a successful exchange the response text is readable; after
	// a failed one the operation carries no response data.
	Done
	// stateSentinel provides the total number of ready states typed as
	// a ReadyState.
	stateSentinel

	// numStates provides the total number of ready states typed as an
	// int.
	numStates = int(stateSentinel)
)

var stateNames = []string{
	"Unsent",
	"Opened",
	"HeadersReceived",
	"Loading",
	"Done",
}

// States returns a slice containing all ready states an operation can
// pass through, in order of progression.
func States() []ReadyState {
	return []ReadyState{
		Unsent,
		Opened,
		HeadersReceived,
		Loading,
		Done,
	}
}

// Name returns the name of the ready state.
func (s ReadyState) Name() string {
	return stateNames[int(s)]
}

// String returns the name of the ready state.
func (s ReadyState) String() string {
	return s.Name()
}
