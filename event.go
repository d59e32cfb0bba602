// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Client to extend it with custom
// functionality.
type Event int

const (
	// BeforeExecutionStart identifies the event that occurs before the
	// plan execution starts.
	//
	// When Client fires BeforeExecutionStart, the execution is
	// non-nil but the only fields that have been set are the plan and
	// the execution ID.
	BeforeExecutionStart Event = iota
	// BeforeSend identifies the event that occurs after the transport
	// operation has been opened, but before the request is sent.
	//
	// When Client fires BeforeSend, the execution's start time is set
	// and its state is still Built. After all BeforeSend handlers have
	// finished, the request WILL BE sent.
	BeforeSend
	// AfterReadyStateChange identifies the event that occurs every
	// time the transport signals progress on the success path.
	//
	// When Client fires AfterReadyStateChange, the execution's state
	// change counter has already been incremented for the signal. The
	// event fires for intermediate signals as well as the terminal
	// one, so it normally occurs several times during an execution.
	// It does not occur at all when the exchange fails.
	AfterReadyStateChange
	// AfterExecutionEnd identifies the event that occurs after the
	// plan execution ends.
	//
	// When Client fires AfterExecutionEnd, the execution's state is
	// one of the two terminal states (Completed or Failed), its end
	// time is set, and exactly one of its response and error fields
	// is set. The event fires exactly once per execution.
	AfterExecutionEnd
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events types as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeExecutionStart",
	"BeforeSend",
	"AfterReadyStateChange",
	"AfterExecutionEnd",
}

// Events returns a slice containing all events which can occur in an
// HTTP request plan execution by Client, in the order in which they
// would occur.
func Events() []Event {
	return []Event{
		BeforeExecutionStart,
		BeforeSend,
		AfterReadyStateChange,
		AfterExecutionEnd,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
