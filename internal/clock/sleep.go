// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// Sleep blocks for the duration, returning early with the context
// error if the context is canceled first.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
