package models

import "time"

// StrategyLookup is a per (search type, category, step) count of completed
// searches. Category is empty when the results came from the broad query or
// nothing was found.
type StrategyLookup struct {
	SearchType string    `json:"search_type"`
	Category   string    `json:"category"`
	Step       string    `json:"step"`
	Count      int64     `json:"count"`
	LastSeenAt time.Time `json:"last_seen_at"`
}

// CategoryCount is the number of searches a category produced results for,
// across all search types and steps.
type CategoryCount struct {
	Category   string    `json:"category"`
	Count      int64     `json:"count"`
	LastSeenAt time.Time `json:"last_seen_at"`
}
