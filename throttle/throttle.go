// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package throttle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gogama/fetchx/transport"
	"golang.org/x/time/rate"
)

// opener wraps a transport.Opener, using the time/rate token bucket
// limiter to restrict how often new operations may be opened.
type opener struct {
	limiter *rate.Limiter
	rps     int
	burst   int
	next    transport.Opener
	logFn   func() *slog.Logger
}

var (
	ErrMustNotBeZero = errors.New("must be greater than zero")
	ErrWaitingFailed = errors.New("limiter waiting failed")
)

// NewOpener returns a transport.Opener that throttles admission of new
// operations using a token bucket rate limiter. Throttling happens at Open
// time: once an operation has been admitted it proceeds unimpeded. A nil
// next delegates to transport.Default.
//
// logFn lazily resolves the logger at open time, making option ordering
// irrelevant. A nil or nil-returning logFn disables logging, including the
// token inspection that decides whether exhaustion is worth reporting.
func NewOpener(rps, burst int, logFn func() *slog.Logger, next transport.Opener) (transport.Opener, error) {
	if rps <= 0 || burst <= 0 {
		return nil, fmt.Errorf("rps[%d] and burst[%d] %w", rps, burst, ErrMustNotBeZero)
	}
	if next == nil {
		next = transport.Default
	}

	o := &opener{
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		rps:     rps,
		burst:   burst,
		next:    next,
		logFn:   logFn,
	}

	return o, nil
}

func (o *opener) Open(method, url string) (transport.Operation, error) {
	if o.limiter == nil {
		return o.next.Open(method, url)
	}

	var waited time.Duration
	var logger *slog.Logger
	if o.logFn != nil {
		logger = o.logFn()
	}
	if logger != nil && o.limiter.Tokens() < 1 {
		logger.Info("throttle tokens exhausted", "rate", o.rps, "burst", o.burst, "url", url)

		defer func() {
			logger.Info("throttle wait complete", "waited", waited.String(), "rate", o.rps, "burst", o.burst)
		}()
	}

	start := time.Now()

	err := o.limiter.Wait(context.Background())
	waited = time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWaitingFailed, err)
	}

	return o.next.Open(method, url)
}
