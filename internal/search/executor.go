// Package search executes a resolved search strategy against the catalog:
// primary category, then each fallback, then an unfiltered query, stopping at
// the first query that returns products.
package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"storesearch/internal/catalog"
	"storesearch/internal/intent"
)

// Step labels which stage of the plan produced the results.
type Step string

const (
	StepPrimary  Step = "primary"
	StepFallback Step = "fallback"
	StepBroad    Step = "broad"
	StepEmpty    Step = "empty"
)

// DefaultMaxCategoryAttempts bounds the category queries made per search.
const DefaultMaxCategoryAttempts = 8

// Catalog is the product search backend.
type Catalog interface {
	Search(ctx context.Context, q catalog.Query) (*catalog.Page, error)
}

// Outcome describes one completed search for statistics.
type Outcome struct {
	SearchType intent.SearchType
	Category   string
	Step       Step
}

// Recorder receives search outcomes and per-attempt latencies.
type Recorder interface {
	RecordOutcome(o Outcome)
	ObserveCatalogRequest(step Step, d time.Duration)
}

// Request is a storefront search.
type Request struct {
	Query    string
	Category string
	Page     int
	PageSize int
}

// Result is the outcome of executing a strategy.
type Result struct {
	Strategy        intent.Strategy `json:"strategy"`
	Banner          string          `json:"banner,omitempty"`
	AppliedCategory *string         `json:"appliedCategory"`
	Step            Step            `json:"step"`
	Attempts        int             `json:"attempts"`
	Page            *catalog.Page   `json:"page"`
}

// Executor runs strategies against a catalog.
type Executor struct {
	catalog     Catalog
	recorder    Recorder
	maxAttempts int
}

// NewExecutor creates an executor. A nil recorder discards statistics and a
// non-positive maxAttempts uses DefaultMaxCategoryAttempts.
func NewExecutor(c Catalog, recorder Recorder, maxAttempts int) *Executor {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxCategoryAttempts
	}
	return &Executor{catalog: c, recorder: recorder, maxAttempts: maxAttempts}
}

// Execute resolves the request's strategy and queries the catalog in plan
// order. A category already queried during this execution is not queried
// again. Catalog errors abort the execution.
func (e *Executor) Execute(ctx context.Context, req Request) (*Result, error) {
	strategy := intent.Resolve(req.Query, req.Category)
	result := &Result{
		Strategy: strategy,
		Banner:   strategy.Banner(),
	}

	tried := make(map[string]struct{})
	categoryAttempts := 0
	for i, category := range strategy.Categories() {
		key := strings.ToLower(category)
		if _, ok := tried[key]; ok {
			continue
		}
		if categoryAttempts >= e.maxAttempts {
			break
		}
		tried[key] = struct{}{}
		categoryAttempts++

		step := StepFallback
		if i == 0 && strategy.PrimaryCategory != nil {
			step = StepPrimary
		}

		page, err := e.attempt(ctx, result, step, req, category)
		if err != nil {
			return nil, err
		}
		if len(page.Results) > 0 {
			applied := category
			return e.finish(result, &applied, step, page), nil
		}
	}

	page, err := e.attempt(ctx, result, StepBroad, req, "")
	if err != nil {
		return nil, err
	}
	if len(page.Results) > 0 {
		return e.finish(result, nil, StepBroad, page), nil
	}
	return e.finish(result, nil, StepEmpty, page), nil
}

func (e *Executor) attempt(ctx context.Context, result *Result, step Step, req Request, category string) (*catalog.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result.Attempts++
	start := time.Now()
	page, err := e.catalog.Search(ctx, catalog.Query{
		ProductName: req.Query,
		Category:    category,
		Page:        req.Page,
		PageSize:    req.PageSize,
	})
	e.recorder.ObserveCatalogRequest(step, time.Since(start))
	if err != nil {
		if category == "" {
			return nil, fmt.Errorf("broad search failed: %w", err)
		}
		return nil, fmt.Errorf("search in category %q failed: %w", category, err)
	}
	return page, nil
}

func (e *Executor) finish(result *Result, applied *string, step Step, page *catalog.Page) *Result {
	result.AppliedCategory = applied
	result.Step = step
	result.Page = page

	outcome := Outcome{SearchType: result.Strategy.SearchType, Step: step}
	if applied != nil {
		outcome.Category = *applied
	}
	e.recorder.RecordOutcome(outcome)
	return result
}

type nopRecorder struct{}

func (nopRecorder) RecordOutcome(Outcome)                     {}
func (nopRecorder) ObserveCatalogRequest(Step, time.Duration) {}
