package intent

// SearchType labels the branch that produced a Strategy.
type SearchType string

const (
	// SearchCategory means the shopper picked a category explicitly.
	SearchCategory SearchType = "category"
	// SearchKeywordCategory means the category was inferred from query keywords.
	SearchKeywordCategory SearchType = "keyword-category"
	// SearchBroad means no category applies; search the whole catalog.
	SearchBroad SearchType = "broad"
)

// AllCategories is the dropdown value meaning "no category selected".
const AllCategories = "all"

// Strategy is the ordered search plan for one query.
type Strategy struct {
	PrimaryCategory    *string    `json:"primaryCategory"`
	FallbackCategories []string   `json:"fallbackCategories"`
	SearchType         SearchType `json:"searchType"`
}

// Resolve builds the search plan for a query and the category selected in
// the search dropdown. An explicit selection always wins over categories
// inferred from the query text. An empty selection is treated as
// AllCategories.
//
// In the keyword branch the fallbacks are the remaining keyword matches
// followed by the primary's related categories; the two segments are not
// deduplicated against each other, so a category may appear twice.
func Resolve(query, selectedCategory string) Strategy {
	if selectedCategory == "" {
		selectedCategory = AllCategories
	}

	if selectedCategory != AllCategories {
		primary := selectedCategory
		return Strategy{
			PrimaryCategory:    &primary,
			FallbackCategories: RelatedCategories(selectedCategory),
			SearchType:         SearchCategory,
		}
	}

	if matches := FindCategoriesForQuery(query); len(matches) > 0 {
		primary := matches[0]
		fallbacks := make([]string, 0, len(matches)-1)
		fallbacks = append(fallbacks, matches[1:]...)
		fallbacks = append(fallbacks, RelatedCategories(primary)...)
		return Strategy{
			PrimaryCategory:    &primary,
			FallbackCategories: fallbacks,
			SearchType:         SearchKeywordCategory,
		}
	}

	return Strategy{
		PrimaryCategory:    nil,
		FallbackCategories: []string{},
		SearchType:         SearchBroad,
	}
}

// Categories returns the categories to query in order: the primary category,
// if any, followed by the fallbacks. The final unfiltered query is implied.
func (s Strategy) Categories() []string {
	out := make([]string, 0, len(s.FallbackCategories)+1)
	if s.PrimaryCategory != nil {
		out = append(out, *s.PrimaryCategory)
	}
	return append(out, s.FallbackCategories...)
}

// Primary returns the primary category, or "" for a broad strategy.
func (s Strategy) Primary() string {
	if s.PrimaryCategory == nil {
		return ""
	}
	return *s.PrimaryCategory
}

// Banner is the notice shown above results produced by this strategy.
func (s Strategy) Banner() string {
	switch s.SearchType {
	case SearchKeywordCategory:
		if p := s.Primary(); p != "" {
			return "Showing related products in " + p
		}
		return "Showing related products in related categories"
	case SearchCategory:
		if p := s.Primary(); p != "" {
			return "Showing products in " + p
		}
		return "Showing products in selected category"
	default:
		return ""
	}
}
