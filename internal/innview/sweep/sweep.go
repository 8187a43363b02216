// Package sweep periodically removes expired key-value entries.
package sweep

import (
	"context"
	"time"

	"github.com/colonyops/innview/internal/core/logging"
)

// Sweeper deletes expired entries and reports how many were removed.
type Sweeper interface {
	SweepExpired(ctx context.Context) (int64, error)
}

// Start sweeps once immediately and then every interval until ctx is
// cancelled. It blocks; run it in a goroutine.
func Start(ctx context.Context, store Sweeper, interval time.Duration) {
	log := logging.Component("sweep")

	run := func() {
		n, err := store.SweepExpired(ctx)
		if err != nil {
			log.Debug().Err(err).Msg("kv sweep failed")
			return
		}
		if n > 0 {
			log.Debug().Int64("removed", n).Msg("kv sweep")
		}
	}

	run()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			run()
		}
	}
}
