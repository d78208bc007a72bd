package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/five82/roster/internal/feed"
	"github.com/five82/roster/internal/state"
)

const (
	defaultPollInterval = 15 * time.Second
	maxBackoff          = 30 * time.Second
)

// calculateBackoff doubles the poll interval for every consecutive failure,
// capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}

// StartPoller launches a background goroutine that refreshes the store at a
// fixed cadence, backing off while the feed is failing. It returns immediately.
func StartPoller(ctx context.Context, store *state.Store, fetcher feed.Fetcher, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("component", "poller")

	go func() {
		timer := time.NewTimer(interval)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}
			failures := refresh(ctx, store, fetcher, logger)
			wait := calculateBackoff(failures, interval)
			if failures > 0 {
				logger.Debug("backing off", "failures", failures, "wait", wait)
			}
			timer.Reset(wait)
		}
	}()
}

// refresh fetches once and records the result. It returns the consecutive
// failure count after the update.
func refresh(ctx context.Context, store *state.Store, fetcher feed.Fetcher, logger *slog.Logger) int {
	entities, err := fetcher.FetchFriends(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return store.Snapshot().ConsecutiveFailures
		}
		store.Update(nil, err)
		logger.Warn("friends poll failed", "error", err)
		return store.Snapshot().ConsecutiveFailures
	}
	before := store.Version()
	store.Update(entities, nil)
	if after := store.Version(); after != before {
		logger.Info("friends updated", "count", len(entities), "version", after)
	}
	return 0
}
