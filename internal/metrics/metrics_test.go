package metrics

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storesearch/internal/intent"
	"storesearch/internal/models"
	"storesearch/internal/search"
	"storesearch/internal/testutil"
)

type fakeStore struct {
	mu       sync.Mutex
	recorded []string
	done     chan struct{}
	lookups  []models.StrategyLookup
	err      error
}

func (f *fakeStore) IncrementStrategyLookup(_ context.Context, searchType, category, step string) error {
	f.mu.Lock()
	f.recorded = append(f.recorded, searchType+"/"+category+"/"+step)
	f.mu.Unlock()
	if f.done != nil {
		f.done <- struct{}{}
	}
	return nil
}

func (f *fakeStore) GetAllStrategyLookups(context.Context) ([]models.StrategyLookup, error) {
	return f.lookups, f.err
}

func TestRecordOutcome(t *testing.T) {
	store := &fakeStore{done: make(chan struct{}, 1)}
	rec, err := New(store, 2, prometheus.NewRegistry())
	require.NoError(t, err)
	defer rec.Close()

	rec.RecordOutcome(search.Outcome{SearchType: intent.SearchKeywordCategory, Category: "footwear", Step: search.StepFallback})

	select {
	case <-store.done:
	case <-time.After(2 * time.Second):
		t.Fatal("outcome was not recorded")
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Equal(t, []string{"keyword-category/footwear/fallback"}, store.recorded)
}

func TestRecordOutcomeDropsWhenSaturated(t *testing.T) {
	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer slog.SetDefault(prev)

	store := &fakeStore{done: make(chan struct{})}
	rec, err := New(store, 1, prometheus.NewRegistry())
	require.NoError(t, err)

	// The only worker blocks until done is drained.
	rec.RecordOutcome(search.Outcome{SearchType: intent.SearchCategory, Category: "electronics", Step: search.StepPrimary})
	rec.RecordOutcome(search.Outcome{SearchType: intent.SearchKeywordCategory, Category: "footwear", Step: search.StepFallback})

	assert.Equal(t, float64(1), promtest.ToFloat64(rec.dropped))
	assert.Contains(t, logs.String(), "stats workers saturated")
	assert.Contains(t, logs.String(), "category=footwear")

	select {
	case <-store.done:
	case <-time.After(2 * time.Second):
		t.Fatal("blocked outcome was never recorded")
	}
	rec.Close()

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Equal(t, []string{"category/electronics/primary"}, store.recorded)
}

func TestRecordOutcomeWithoutStore(t *testing.T) {
	rec, err := New(nil, 2, prometheus.NewRegistry())
	require.NoError(t, err)

	rec.RecordOutcome(search.Outcome{SearchType: intent.SearchBroad, Step: search.StepBroad})
	assert.NoError(t, rec.Close())
}

func TestObserveCatalogRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := New(nil, 1, reg)
	require.NoError(t, err)

	rec.ObserveCatalogRequest(search.StepPrimary, 20*time.Millisecond)
	rec.ObserveCatalogRequest(search.StepBroad, 40*time.Millisecond)

	assert.Equal(t, 2, promtest.CollectAndCount(rec.duration))
}

func TestStrategyCollector(t *testing.T) {
	store := &fakeStore{lookups: []models.StrategyLookup{
		{SearchType: "category", Category: "electronics", Step: "primary", Count: 3},
		{SearchType: "broad", Category: "", Step: "broad", Count: 1},
	}}

	expected := `
# HELP storesearch_strategy_lookups_total Total completed searches by strategy, category that produced results, and plan step
# TYPE storesearch_strategy_lookups_total counter
storesearch_strategy_lookups_total{category="",search_type="broad",step="broad"} 1
storesearch_strategy_lookups_total{category="electronics",search_type="category",step="primary"} 3
`
	err := promtest.CollectAndCompare(&StrategyCollector{store: store}, strings.NewReader(expected))
	assert.NoError(t, err)
}

func TestStrategyCollectorStoreError(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	assert.Equal(t, 0, promtest.CollectAndCount(&StrategyCollector{store: store}))
}

func TestNewDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(nil, 1, reg)
	require.NoError(t, err)

	_, err = New(nil, 1, reg)
	assert.Error(t, err)
}

func TestRecorderWithDatabase(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	reg := prometheus.NewRegistry()
	rec, err := New(database, 2, reg)
	require.NoError(t, err)

	rec.RecordOutcome(search.Outcome{SearchType: intent.SearchCategory, Category: "electronics", Step: search.StepPrimary})
	rec.RecordOutcome(search.Outcome{SearchType: intent.SearchCategory, Category: "electronics", Step: search.StepPrimary})
	require.NoError(t, rec.Close())

	expected := `
# HELP storesearch_strategy_lookups_total Total completed searches by strategy, category that produced results, and plan step
# TYPE storesearch_strategy_lookups_total counter
storesearch_strategy_lookups_total{category="electronics",search_type="category",step="primary"} 2
`
	err = promtest.GatherAndCompare(reg, strings.NewReader(expected), "storesearch_strategy_lookups_total")
	assert.NoError(t, err)
}
