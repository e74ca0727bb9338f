// Package sim provides in-process stand-ins for the downstream services so
// the full chain can run locally without external dependencies. Behaviour is
// deterministic under the available options, which makes the stubs usable
// from tests as well.
package sim

import (
	"context"
	"time"
)

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
