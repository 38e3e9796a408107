package intent

import "strings"

// FindCategoriesForQuery returns every category implied by the query's
// keywords. Categories keep first-seen order across keywords and within each
// keyword's list, so index 0 is the most likely category.
func FindCategoriesForQuery(query string) []string {
	matched := []string{}
	seen := make(map[string]struct{})

	for _, keyword := range ExtractKeywords(query) {
		for _, category := range keywordCategories[keyword] {
			if _, ok := seen[category]; ok {
				continue
			}
			seen[category] = struct{}{}
			matched = append(matched, category)
		}
	}
	return matched
}

// RelatedCategories returns the categories related to category. The lookup
// is case-insensitive; unknown or empty categories have none.
func RelatedCategories(category string) []string {
	if category == "" {
		return []string{}
	}
	related, ok := relatedCategories[strings.ToLower(category)]
	if !ok {
		return []string{}
	}
	return append([]string(nil), related...)
}
