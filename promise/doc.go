// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package promise provides a minimal single-settlement promise for bridging
callback-style completion into awaitable results.

A promise settles exactly once. The producer side calls Resolve or Reject;
whichever happens first wins and later settlement attempts are no-ops,
which makes promises safe to settle from event handlers that may fire more
than once:

	prom := promise.New[string]()
	go func() {
		v, err := produce()
		if err != nil {
			prom.Reject(err)
			return
		}
		prom.Resolve(v)
	}()
	v, err := prom.Await()

The consumer side blocks with Await, polls with Settled, or selects on the
Done channel:

	select {
	case <-prom.Done():
		v, err := prom.Await() // never blocks once Done is closed
		...
	case <-other:
		...
	}
*/
package promise
