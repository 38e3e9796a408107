package search

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storesearch/internal/catalog"
	"storesearch/internal/intent"
)

// fakeCatalog returns products only for the categories listed in stock; the
// empty key stands for the unfiltered query.
type fakeCatalog struct {
	stock   map[string]int
	fail    map[string]error
	queries []catalog.Query
}

func (f *fakeCatalog) Search(_ context.Context, q catalog.Query) (*catalog.Page, error) {
	f.queries = append(f.queries, q)
	if err := f.fail[q.Category]; err != nil {
		return nil, err
	}
	n := f.stock[q.Category]
	page := &catalog.Page{Count: n, Results: []catalog.Product{}}
	for i := 0; i < n; i++ {
		page.Results = append(page.Results, catalog.Product{ID: i + 1, Category: catalog.Category{Slug: q.Category}})
	}
	return page, nil
}

func (f *fakeCatalog) categories() []string {
	out := make([]string, 0, len(f.queries))
	for _, q := range f.queries {
		out = append(out, q.Category)
	}
	return out
}

type fakeRecorder struct {
	mu       sync.Mutex
	outcomes []Outcome
	observed []Step
}

func (r *fakeRecorder) RecordOutcome(o Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, o)
}

func (r *fakeRecorder) ObserveCatalogRequest(step Step, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observed = append(r.observed, step)
}

func TestExecutePrimaryHit(t *testing.T) {
	cat := &fakeCatalog{stock: map[string]int{"sports-fitness": 2}}
	rec := &fakeRecorder{}
	exec := NewExecutor(cat, rec, 0)

	res, err := exec.Execute(context.Background(), Request{Query: "blue dumbbell", Category: "all", Page: 1, PageSize: 20})
	require.NoError(t, err)

	assert.Equal(t, StepPrimary, res.Step)
	require.NotNil(t, res.AppliedCategory)
	assert.Equal(t, "sports-fitness", *res.AppliedCategory)
	assert.Equal(t, 1, res.Attempts)
	assert.Len(t, res.Page.Results, 2)
	assert.Equal(t, "Showing related products in sports-fitness", res.Banner)

	require.Len(t, cat.queries, 1)
	assert.Equal(t, catalog.Query{ProductName: "blue dumbbell", Category: "sports-fitness", Page: 1, PageSize: 20}, cat.queries[0])

	assert.Equal(t, []Outcome{{SearchType: intent.SearchKeywordCategory, Category: "sports-fitness", Step: StepPrimary}}, rec.outcomes)
	assert.Equal(t, []Step{StepPrimary}, rec.observed)
}

func TestExecuteFallbackSkipsRepeatedCategories(t *testing.T) {
	// Plan: sports-fitness | fitness gym sports fitness gym sports footwear
	cat := &fakeCatalog{stock: map[string]int{"footwear": 1}}
	rec := &fakeRecorder{}
	exec := NewExecutor(cat, rec, 0)

	res, err := exec.Execute(context.Background(), Request{Query: "blue dumbbell"})
	require.NoError(t, err)

	assert.Equal(t, StepFallback, res.Step)
	require.NotNil(t, res.AppliedCategory)
	assert.Equal(t, "footwear", *res.AppliedCategory)
	assert.Equal(t, []string{"sports-fitness", "fitness", "gym", "sports", "footwear"}, cat.categories())
	assert.Equal(t, 5, res.Attempts)

	// The plan itself keeps its duplicates.
	assert.Len(t, res.Strategy.FallbackCategories, 7)
}

func TestExecuteBroadAfterCategories(t *testing.T) {
	cat := &fakeCatalog{stock: map[string]int{"": 3}}
	exec := NewExecutor(cat, nil, 0)

	res, err := exec.Execute(context.Background(), Request{Query: "tablet", Category: "all"})
	require.NoError(t, err)

	assert.Equal(t, StepBroad, res.Step)
	assert.Nil(t, res.AppliedCategory)
	assert.Equal(t,
		[]string{"electronics", "tablets", "smartphones", "laptops-computers", "audio", ""},
		cat.categories(),
	)
}

func TestExecuteBroadStrategy(t *testing.T) {
	cat := &fakeCatalog{stock: map[string]int{"": 1}}
	rec := &fakeRecorder{}
	exec := NewExecutor(cat, rec, 0)

	res, err := exec.Execute(context.Background(), Request{Query: "xyzzy"})
	require.NoError(t, err)

	assert.Equal(t, intent.SearchBroad, res.Strategy.SearchType)
	assert.Equal(t, StepBroad, res.Step)
	assert.Equal(t, 1, res.Attempts)
	assert.Empty(t, res.Banner)
	assert.Equal(t, []Outcome{{SearchType: intent.SearchBroad, Step: StepBroad}}, rec.outcomes)
}

func TestExecuteEmpty(t *testing.T) {
	cat := &fakeCatalog{}
	rec := &fakeRecorder{}
	exec := NewExecutor(cat, rec, 0)

	res, err := exec.Execute(context.Background(), Request{Query: "", Category: "gym"})
	require.NoError(t, err)

	assert.Equal(t, StepEmpty, res.Step)
	assert.NotNil(t, res.Page)
	assert.Equal(t, []string{"gym", "sports-fitness", "fitness", "sports", ""}, cat.categories())
	assert.Equal(t, []Outcome{{SearchType: intent.SearchCategory, Step: StepEmpty}}, rec.outcomes)
}

func TestExecuteCapsCategoryAttempts(t *testing.T) {
	cat := &fakeCatalog{}
	exec := NewExecutor(cat, nil, 2)

	res, err := exec.Execute(context.Background(), Request{Query: "shoes"})
	require.NoError(t, err)

	assert.Equal(t, []string{"footwear", "shoes", ""}, cat.categories())
	assert.Equal(t, 3, res.Attempts)
}

func TestExecuteCatalogError(t *testing.T) {
	boom := errors.New("boom")
	cat := &fakeCatalog{
		stock: map[string]int{"fitness": 1},
		fail:  map[string]error{"sports-fitness": boom},
	}
	rec := &fakeRecorder{}
	exec := NewExecutor(cat, rec, 0)

	_, err := exec.Execute(context.Background(), Request{Query: "gym"})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `"sports-fitness"`)
	assert.Empty(t, rec.outcomes)
}

func TestExecuteCanceled(t *testing.T) {
	cat := &fakeCatalog{}
	exec := NewExecutor(cat, nil, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := exec.Execute(ctx, Request{Query: "shoes"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, cat.queries)
}
