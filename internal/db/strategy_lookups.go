package db

import (
	"context"

	"storesearch/internal/models"
)

// IncrementStrategyLookup upserts the count for one search outcome.
func (d *DB) IncrementStrategyLookup(ctx context.Context, searchType, category, step string) error {
	if searchType == "" || step == "" {
		return ErrInvalidLookup
	}
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO strategy_lookups (search_type, category, step, count, last_seen_at)
		VALUES ($1, $2, $3, 1, NOW())
		ON CONFLICT (search_type, category, step) DO UPDATE
		SET count = strategy_lookups.count + 1, last_seen_at = NOW()
	`, searchType, category, step)
	return err
}

// GetAllStrategyLookups returns all strategy lookup rows for metrics export.
func (d *DB) GetAllStrategyLookups(ctx context.Context) ([]models.StrategyLookup, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT search_type, category, step, count, last_seen_at
		FROM strategy_lookups
		ORDER BY search_type, category, step
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lookups []models.StrategyLookup
	for rows.Next() {
		var l models.StrategyLookup
		if err := rows.Scan(&l.SearchType, &l.Category, &l.Step, &l.Count, &l.LastSeenAt); err != nil {
			return nil, err
		}
		lookups = append(lookups, l)
	}
	return lookups, rows.Err()
}

// GetTopCategories returns the categories that most often produced results,
// summed across search types and steps, highest count first.
func (d *DB) GetTopCategories(ctx context.Context, limit int) ([]models.CategoryCount, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT category, SUM(count)::BIGINT AS total, MAX(last_seen_at)
		FROM strategy_lookups
		WHERE category <> ''
		GROUP BY category
		ORDER BY total DESC, category ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []models.CategoryCount
	for rows.Next() {
		var c models.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count, &c.LastSeenAt); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
