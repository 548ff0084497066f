// Package service implements the PulseConnect data services: users, posts,
// and stories. Each service owns one collection through a store and exposes
// the read/write/query contract consumed by the view layer.
//
// Every method simulates a network round-trip with a fixed per-call delay.
// The delay always elapses and the mutation always applies; the context is
// carried for tracing and logging but never cancels a call mid-flight.
package service

import (
	"context"
	"time"

	"pulseconnect/internal/observability"
)

// Latency scales the simulated per-call delay.
type Latency struct {
	Scale float64
}

// NoLatency disables simulated delays. Intended for tests.
var NoLatency = Latency{Scale: 0}

func (l Latency) sleep(d time.Duration) {
	if l.Scale <= 0 {
		return
	}
	time.Sleep(time.Duration(float64(d) * l.Scale))
}

// instrument starts a span and returns a completion func that records call
// metrics and closes the span. Use with defer and a named error return.
func instrument(ctx context.Context, service, method string) (context.Context, func(*error)) {
	ctx, span := observability.StartServiceSpan(ctx, service, method)
	start := time.Now()
	return ctx, func(errp *error) {
		observability.ObserveCall(service, method, start, errp)
		var err error
		if errp != nil {
			err = *errp
		}
		observability.EndServiceSpan(span, err)
	}
}
