package metrics

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/prometheus/client_golang/prometheus"

	"storesearch/internal/models"
	"storesearch/internal/search"
)

var strategyLookupDesc = prometheus.NewDesc(
	"storesearch_strategy_lookups_total",
	"Total completed searches by strategy, category that produced results, and plan step",
	[]string{"search_type", "category", "step"},
	nil,
)

// LookupStore persists and reads strategy lookup counts.
type LookupStore interface {
	IncrementStrategyLookup(ctx context.Context, searchType, category, step string) error
	GetAllStrategyLookups(ctx context.Context) ([]models.StrategyLookup, error)
}

// StrategyCollector is a custom Prometheus collector that reads strategy
// lookup counts from the database on each scrape.
type StrategyCollector struct {
	store LookupStore
}

// Describe sends the metric descriptor to the channel.
func (c *StrategyCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- strategyLookupDesc
}

// Collect queries the database for all strategy lookups and emits them as counters.
func (c *StrategyCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	lookups, err := c.store.GetAllStrategyLookups(ctx)
	if err != nil {
		slog.Error("failed to collect strategy lookup metrics", "error", err)
		return
	}
	for _, l := range lookups {
		ch <- prometheus.MustNewConstMetric(
			strategyLookupDesc,
			prometheus.CounterValue,
			float64(l.Count),
			l.SearchType,
			l.Category,
			l.Step,
		)
	}
}

// Recorder implements search.Recorder. Outcomes are written to the store on
// a bounded worker pool; when every worker is busy the outcome is dropped.
type Recorder struct {
	store    LookupStore
	pool     *ants.Pool
	duration *prometheus.HistogramVec
	dropped  prometheus.Counter
}

// New creates a recorder and registers its metrics with reg. A nil store
// disables outcome persistence but keeps the latency histogram.
func New(store LookupStore, workers int, reg prometheus.Registerer) (*Recorder, error) {
	if workers < 1 {
		workers = 1
	}

	r := &Recorder{
		store: store,
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "storesearch_catalog_request_duration_seconds",
			Help:    "Catalog request latency by plan step",
			Buckets: prometheus.DefBuckets,
		}, []string{"step"}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "storesearch_stats_dropped_total",
			Help: "Search outcomes dropped because the stats workers were saturated",
		}),
	}

	collectors := []prometheus.Collector{r.duration, r.dropped}
	if store != nil {
		pool, err := ants.NewPool(workers, ants.WithNonblocking(true))
		if err != nil {
			return nil, err
		}
		r.pool = pool
		collectors = append(collectors, &StrategyCollector{store: store})
	}

	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			r.Close()
			return nil, err
		}
	}
	return r, nil
}

// RecordOutcome asynchronously persists a search outcome.
func (r *Recorder) RecordOutcome(o search.Outcome) {
	if r.pool == nil {
		return
	}
	searchType, category, step := string(o.SearchType), o.Category, string(o.Step)
	err := r.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := r.store.IncrementStrategyLookup(ctx, searchType, category, step); err != nil {
			slog.Error("failed to record strategy lookup",
				"search_type", searchType, "category", category, "step", step, "error", err)
		}
	})
	if err != nil {
		r.dropped.Inc()
		if errors.Is(err, ants.ErrPoolOverload) {
			slog.Debug("stats workers saturated, dropping outcome",
				"search_type", searchType, "category", category, "step", step)
		} else {
			slog.Warn("stats pool rejected outcome", "error", err)
		}
	}
}

// ObserveCatalogRequest records the latency of one catalog request.
func (r *Recorder) ObserveCatalogRequest(step search.Step, d time.Duration) {
	r.duration.WithLabelValues(string(step)).Observe(d.Seconds())
}

// Close waits for in-flight outcomes to be written and stops the workers.
func (r *Recorder) Close() error {
	if r.pool == nil {
		return nil
	}
	return r.pool.ReleaseTimeout(5 * time.Second)
}
