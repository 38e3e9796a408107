package api

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"storesearch/internal/models"
)

const (
	defaultTopCategories = 10
	maxTopCategories     = 100
)

// TopCategoriesStore reads aggregated strategy statistics.
type TopCategoriesStore interface {
	GetTopCategories(ctx context.Context, limit int) ([]models.CategoryCount, error)
}

// StatsHandler exposes strategy statistics.
type StatsHandler struct {
	store TopCategoriesStore
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(store TopCategoriesStore) *StatsHandler {
	return &StatsHandler{store: store}
}

// TopCategories returns the categories that most often produced results.
func (h *StatsHandler) TopCategories(c fiber.Ctx) error {
	limit := defaultTopCategories
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxTopCategories {
			return jsonError(c, fiber.StatusBadRequest, "limit must be between 1 and "+strconv.Itoa(maxTopCategories))
		}
		limit = n
	}

	top, err := h.store.GetTopCategories(c.Context(), limit)
	if err != nil {
		slog.Error("failed to load top categories", "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to load statistics")
	}
	if top == nil {
		top = []models.CategoryCount{}
	}
	return jsonSuccess(c, models.TopCategoriesResponse{Categories: top})
}
