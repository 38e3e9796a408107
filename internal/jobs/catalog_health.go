package jobs

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// Pinger checks whether a backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// CatalogHealth periodically pings the catalog and remembers the result for
// the readiness probe.
type CatalogHealth struct {
	catalog  Pinger
	interval time.Duration
	timeout  time.Duration
	healthy  atomic.Bool
	checked  atomic.Bool
}

// NewCatalogHealth creates a new catalog health checker.
func NewCatalogHealth(catalog Pinger, interval time.Duration) *CatalogHealth {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &CatalogHealth{catalog: catalog, interval: interval, timeout: 5 * time.Second}
}

// Start begins the background check loop and blocks until ctx is done.
func (h *CatalogHealth) Start(ctx context.Context) {
	slog.Info("catalog health checker started", "interval", h.interval)

	h.Check(ctx)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("catalog health checker stopped")
			return
		case <-ticker.C:
			h.Check(ctx)
		}
	}
}

// Check pings the catalog once and records the result. Transitions between
// healthy and unhealthy are logged.
func (h *CatalogHealth) Check(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	err := h.catalog.Ping(ctx)
	healthy := err == nil
	previous := h.healthy.Swap(healthy)
	first := !h.checked.Swap(true)

	switch {
	case !healthy && (first || previous):
		slog.Warn("catalog unhealthy", "error", err)
	case healthy && (first || !previous):
		slog.Info("catalog healthy")
	}
}

// Healthy reports the result of the last check. It is false until the
// first check completes.
func (h *CatalogHealth) Healthy() bool {
	return h.healthy.Load()
}
