// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package throttle provides a rate-limited decorator for a
transport.Opener.

The decorator admits new operations from a token bucket: each Open
consumes one token, waiting for one to become available when the
bucket is empty. Admission is the only thing throttled. An operation
that has been opened sends, loads, and settles at full speed, and
nothing is retried or cancelled on the decorator's account.

Install the decorator between a client and its transport:

	opener, err := throttle.NewOpener(10, 2, logFn, nil)
	if err != nil {
		// invalid rate or burst
	}
	cl := &fetchx.Client{Transport: opener}

The logFn parameter follows the lazy-logger convention: it is invoked
at open time, so the logger in effect is always the current one no
matter when the decorator was constructed.
*/
package throttle
