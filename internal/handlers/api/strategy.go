package api

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"storesearch/internal/intent"
	"storesearch/internal/models"
	"storesearch/internal/validation"
)

// IntentHandler exposes the search intent resolver.
type IntentHandler struct{}

// NewIntentHandler creates a new intent handler.
func NewIntentHandler() *IntentHandler {
	return &IntentHandler{}
}

// Strategy resolves the search strategy for ?q= and ?category=.
func (h *IntentHandler) Strategy(c fiber.Ctx) error {
	q, category, msg := queryAndCategory(c)
	if msg != "" {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	strategy := intent.Resolve(q, category)
	selected := category
	if selected == "" {
		selected = intent.AllCategories
	}
	return jsonSuccess(c, models.StrategyResponse{
		Query:            q,
		SelectedCategory: selected,
		PrimaryCategory:  strategy.PrimaryCategory,
		Fallback:         strategy.FallbackCategories,
		SearchType:       string(strategy.SearchType),
		Banner:           strategy.Banner(),
	})
}

// Keywords returns the keywords extracted from ?q= and their categories.
func (h *IntentHandler) Keywords(c fiber.Ctx) error {
	q := c.Query("q")
	if valid, msg := validation.ValidateQuery(q); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}
	return jsonSuccess(c, models.KeywordsResponse{
		Query:      q,
		Keywords:   intent.ExtractKeywords(q),
		Categories: intent.FindCategoriesForQuery(q),
	})
}

// Related returns the categories related to :category.
func (h *IntentHandler) Related(c fiber.Ctx) error {
	category := c.Params("category")
	if valid, msg := validation.ValidateCategory(category); !valid || category == "" {
		if msg == "" {
			msg = "category is required"
		}
		return jsonError(c, fiber.StatusBadRequest, msg)
	}
	return jsonSuccess(c, models.RelatedResponse{
		Category: strings.ToLower(category),
		Related:  intent.RelatedCategories(category),
	})
}

// queryAndCategory reads the q and category query parameters. A non-empty
// message means validation failed.
func queryAndCategory(c fiber.Ctx) (string, string, string) {
	q := c.Query("q")
	if valid, msg := validation.ValidateQuery(q); !valid {
		return "", "", msg
	}
	category := c.Query("category")
	if valid, msg := validation.ValidateCategory(category); !valid {
		return "", "", msg
	}
	return q, category, ""
}
