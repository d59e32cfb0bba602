// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

// A State identifies the lifecycle stage an Execution has reached.
//
// Every execution moves forward through the states in order, never
// backward: it is created in Built, advances to Sent when the request
// goes out on the wire, and finishes in exactly one of Completed or
// Failed. An execution that fails before its request could be sent
// moves from Built directly to Failed.
type State int

const (
	// Built indicates the execution has been created but its request
	// has not been handed to the transport yet.
	Built State = iota
	// Sent indicates the request has been sent and the execution is
	// waiting on the transport for an outcome.
	Sent
	// Completed indicates the transport delivered a response. The
	// execution's response field is set and will not change.
	// Completed is a terminal state.
	Completed
	// Failed indicates the exchange could not be completed. The
	// execution's error field is set and will not change. Failed is a
	// terminal state.
	Failed
	// stateSentinel provides the total number of states typed as a
	// State.
	stateSentinel

	// numStates provides the total number of states typed as an int.
	numStates = int(stateSentinel)
)

var stateNames = []string{
	"Built",
	"Sent",
	"Completed",
	"Failed",
}

// States returns a slice containing all states an execution can pass
// through, in lifecycle order.
func States() []State {
	return []State{
		Built,
		Sent,
		Completed,
		Failed,
	}
}

// Name returns the name of the state.
func (s State) Name() string {
	return stateNames[int(s)]
}

// String returns the name of the state.
func (s State) String() string {
	return s.Name()
}

// Terminal indicates whether the state is one of the two final states,
// Completed or Failed. Once an execution reaches a terminal state it
// does not change again.
func (s State) Terminal() bool {
	return s == Completed || s == Failed
}
