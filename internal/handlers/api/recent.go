package api

import (
	"encoding/json"
	"log/slog"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v3"

	"storesearch/internal/middleware"
	"storesearch/internal/models"
	"storesearch/internal/validation"
)

// RecentHandler manages the shopper's recent searches.
type RecentHandler struct {
	store RecentStore
}

// NewRecentHandler creates a new recent searches handler.
func NewRecentHandler(store RecentStore) *RecentHandler {
	return &RecentHandler{store: store}
}

// List returns the shopper's recent searches.
func (h *RecentHandler) List(c fiber.Ctx) error {
	shopper, ok := shopperID(c)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "shopper not identified")
	}
	queries, err := h.store.List(shopper)
	if err != nil {
		slog.Error("failed to list recent searches", "shopper", shopper, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to load recent searches")
	}
	return jsonSuccess(c, models.RecentResponse{Queries: queries})
}

// Add records a query at the front of the shopper's recent searches.
func (h *RecentHandler) Add(c fiber.Ctx) error {
	shopper, ok := shopperID(c)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "shopper not identified")
	}

	var req models.RecentRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		return jsonError(c, fiber.StatusBadRequest, "query is required")
	}
	if valid, msg := validation.ValidateQuery(req.Query); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	queries, err := h.store.Add(shopper, req.Query)
	if err != nil {
		slog.Error("failed to add recent search", "shopper", shopper, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to save recent search")
	}
	return jsonSuccess(c, models.RecentResponse{Queries: queries})
}

// Remove deletes :query from the shopper's recent searches.
func (h *RecentHandler) Remove(c fiber.Ctx) error {
	shopper, ok := shopperID(c)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "shopper not identified")
	}

	query, err := url.PathUnescape(c.Params("query"))
	if err != nil || strings.TrimSpace(query) == "" {
		return jsonError(c, fiber.StatusBadRequest, "invalid query")
	}

	queries, err := h.store.Remove(shopper, query)
	if err != nil {
		slog.Error("failed to remove recent search", "shopper", shopper, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to save recent searches")
	}
	return jsonSuccess(c, models.RecentResponse{Queries: queries})
}

// Clear forgets all of the shopper's recent searches.
func (h *RecentHandler) Clear(c fiber.Ctx) error {
	shopper, ok := shopperID(c)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "shopper not identified")
	}
	if err := h.store.Clear(shopper); err != nil {
		slog.Error("failed to clear recent searches", "shopper", shopper, "error", err)
		return jsonError(c, fiber.StatusInternalServerError, "failed to clear recent searches")
	}
	return jsonSuccess(c, models.RecentResponse{Queries: []string{}})
}

func shopperID(c fiber.Ctx) (string, bool) {
	id := middleware.Shopper(c)
	return id, id != ""
}
