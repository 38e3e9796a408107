package jobs

import (
	"context"
	"log/slog"
	"time"
)

// Purger removes expired entries from a store.
type Purger interface {
	Purge() (int, error)
}

// ExpiryPurger periodically purges expired recent searches from the local
// store. Redis expires keys itself and needs no purger.
type ExpiryPurger struct {
	store    Purger
	interval time.Duration
}

// NewExpiryPurger creates a new purger.
func NewExpiryPurger(store Purger, interval time.Duration) *ExpiryPurger {
	if interval <= 0 {
		interval = time.Hour
	}
	return &ExpiryPurger{store: store, interval: interval}
}

// Start runs a purge every interval until ctx is done.
func (p *ExpiryPurger) Start(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.RunOnce()
		}
	}
}

// RunOnce purges expired entries and returns how many were removed.
func (p *ExpiryPurger) RunOnce() int {
	n, err := p.store.Purge()
	if err != nil {
		slog.Error("failed to purge expired recent searches", "error", err)
		return 0
	}
	if n > 0 {
		slog.Debug("purged expired recent searches", "count", n)
	}
	return n
}
