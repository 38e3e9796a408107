package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"storesearch/internal/middleware"
	"storesearch/internal/suggest"
	"storesearch/internal/validation"
)

// SuggestHandler serves search-box suggestions.
type SuggestHandler struct {
	recent  RecentStore
	popular []string
	limit   int
}

// NewSuggestHandler creates a new suggestions handler.
func NewSuggestHandler(recent RecentStore, popular []string, limit int) *SuggestHandler {
	return &SuggestHandler{recent: recent, popular: popular, limit: limit}
}

// Suggestions returns suggestions for ?q= from the shopper's recent searches
// and the popular searches. A recent searches failure degrades to popular only.
func (h *SuggestHandler) Suggestions(c fiber.Ctx) error {
	q := c.Query("q")
	if valid, msg := validation.ValidateQuery(q); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	var recent []string
	if shopper := middleware.Shopper(c); shopper != "" && h.recent != nil {
		list, err := h.recent.List(shopper)
		if err != nil {
			slog.Warn("failed to load recent searches for suggestions", "shopper", shopper, "error", err)
		} else {
			recent = list
		}
	}

	return jsonSuccess(c, suggest.Build(q, recent, h.popular, h.limit))
}
