package db

import "errors"

// Domain-level database error sentinels.
var (
	// ErrStatsUnavailable is returned when the statistics database cannot be reached.
	ErrStatsUnavailable = errors.New("statistics database unavailable")

	// ErrInvalidLookup is returned for a lookup without search type or step.
	ErrInvalidLookup = errors.New("strategy lookup requires search type and step")
)
