// Package chflow holds channel and timing helpers that give up as soon as
// their context is done.
package chflow

import (
	"context"
	"time"
)

// Send writes data to ch and reports whether it was delivered before ctx was done.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

// Sleep pauses for d and reports whether it ran to completion. It returns
// false as soon as ctx is done.
func Sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
