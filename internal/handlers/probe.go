package handlers

import (
	"context"

	"github.com/gofiber/fiber/v3"
)

// Pinger is a dependency that can report whether it is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthReporter reports the last known health of a dependency.
type HealthReporter interface {
	Healthy() bool
}

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	db      Pinger
	catalog HealthReporter
}

// NewProbeHandler creates a new probe handler. database may be nil when
// statistics are disabled.
func NewProbeHandler(database Pinger, catalog HealthReporter) *ProbeHandler {
	return &ProbeHandler{db: database, catalog: catalog}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK if the catalog is healthy and the statistics database, when
// configured, is reachable.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if h.catalog != nil && !h.catalog.Healthy() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "catalog unavailable",
		})
	}

	if h.db != nil {
		if err := h.db.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "error",
				"error":  "database unavailable",
			})
		}
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
