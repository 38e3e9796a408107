package api

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"

	"storesearch/internal/catalog"
	"storesearch/internal/middleware"
	"storesearch/internal/search"
	"storesearch/internal/validation"
)

// Executor runs a search plan against the catalog.
type Executor interface {
	Execute(ctx context.Context, req search.Request) (*search.Result, error)
}

// RecentStore keeps per-shopper recent searches.
type RecentStore interface {
	List(owner string) ([]string, error)
	Add(owner, query string) ([]string, error)
	Remove(owner, query string) ([]string, error)
	Clear(owner string) error
}

// SearchHandler executes storefront searches.
type SearchHandler struct {
	executor Executor
	recent   RecentStore
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(executor Executor, recent RecentStore) *SearchHandler {
	return &SearchHandler{executor: executor, recent: recent}
}

// Search resolves the strategy for ?q= and ?category=, runs it against the
// catalog and remembers the query in the shopper's recent searches.
func (h *SearchHandler) Search(c fiber.Ctx) error {
	q, category, msg := queryAndCategory(c)
	if msg != "" {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}
	page, valid, msg := validation.ParsePage(c.Query("page"))
	if !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}
	pageSize, valid, msg := validation.ParsePageSize(c.Query("page_size"))
	if !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	result, err := h.executor.Execute(c.Context(), search.Request{
		Query:    q,
		Category: category,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		slog.Error("search failed", "query", q, "category", category, "error", err)
		switch {
		case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
			return jsonError(c, fiber.StatusGatewayTimeout, "search timed out")
		case errors.Is(err, catalog.ErrCatalogUnavailable):
			return jsonError(c, fiber.StatusServiceUnavailable, "catalog unavailable")
		case errors.Is(err, catalog.ErrCatalogStatus):
			return jsonError(c, fiber.StatusBadGateway, "catalog error")
		default:
			return jsonError(c, fiber.StatusInternalServerError, "search failed")
		}
	}

	if h.recent != nil && strings.TrimSpace(q) != "" {
		if shopper := middleware.Shopper(c); shopper != "" {
			if _, err := h.recent.Add(shopper, q); err != nil {
				slog.Warn("failed to remember recent search", "shopper", shopper, "error", err)
			}
		}
	}

	return jsonSuccess(c, result)
}
