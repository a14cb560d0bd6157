package router

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Schedule periodically refreshes the cached now-playing entry, which keeps
// the underlying page cache warm as a side effect.
func Schedule(ctx context.Context, duration time.Duration) {
	ticker := time.NewTicker(duration)
	go func() {
		for {
			select {
			case <-ctx.Done():
				logger.Info("The scheduling task has been stopped.")
				return
			case <-ticker.C:
				logger.Info("Start executing the scheduling task.")

				if err := updateNowPlaying(ctx); err != nil {
					logger.Error("Failed to update the now-playing entry.", zap.Error(err))
				}

				logger.Info("The scheduling task has been completed.")
			}
		}
	}()
}
