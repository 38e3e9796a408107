package models

// StrategyResponse is the resolved strategy for a query and selected category.
type StrategyResponse struct {
	Query            string   `json:"query"`
	SelectedCategory string   `json:"selectedCategory"`
	PrimaryCategory  *string  `json:"primaryCategory"`
	Fallback         []string `json:"fallbackCategories"`
	SearchType       string   `json:"searchType"`
	Banner           string   `json:"banner,omitempty"`
}

// KeywordsResponse contains the keywords extracted from a query and the
// categories they map to.
type KeywordsResponse struct {
	Query      string   `json:"query"`
	Keywords   []string `json:"keywords"`
	Categories []string `json:"categories"`
}

// RelatedResponse lists the categories related to a category.
type RelatedResponse struct {
	Category string   `json:"category"`
	Related  []string `json:"related"`
}

// RecentResponse is a shopper's recent searches, newest first.
type RecentResponse struct {
	Queries []string `json:"queries"`
}

// RecentRequest is the body of POST /api/v1/recent.
type RecentRequest struct {
	Query string `json:"query"`
}

// TopCategoriesResponse lists the categories that most often produced results.
type TopCategoriesResponse struct {
	Categories []CategoryCount `json:"categories"`
}
