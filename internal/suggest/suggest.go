// Package suggest builds search-box suggestions from a shopper's recent
// searches and the store's popular searches.
package suggest

import "strings"

// DefaultLimit is the number of suggestions shown in the search box.
const DefaultLimit = 8

// DefaultPopular is used when no popular searches are configured.
var DefaultPopular = []string{
	"smartphones",
	"laptops",
	"shoes",
	"dresses",
	"headphones",
	"watches",
	"bags",
	"cameras",
}

// Suggestions is what the search box shows for the current input.
type Suggestions struct {
	Query   string   `json:"query"`
	Items   []string `json:"items"`
	Recent  []string `json:"recent"`
	Popular []string `json:"popular"`
}

// Build returns suggestions for query. With an empty query it shows the
// shopper's recent searches, or the popular ones when there are none. With
// text it shows matching recent searches first, then matching popular ones.
func Build(query string, recent, popular []string, limit int) Suggestions {
	if limit <= 0 {
		limit = DefaultLimit
	}
	normalized := strings.ToLower(strings.TrimSpace(query))
	out := Suggestions{Query: query, Items: []string{}, Recent: []string{}, Popular: []string{}}

	if normalized == "" {
		if len(recent) > 0 {
			out.Recent = head(recent, limit)
			out.Items = out.Recent
		} else {
			out.Popular = head(popular, limit)
			out.Items = out.Popular
		}
		return out
	}

	popularSeen := make(map[string]struct{})
	for _, p := range popular {
		if strings.Contains(strings.ToLower(p), normalized) {
			out.Popular = append(out.Popular, p)
			popularSeen[strings.ToLower(p)] = struct{}{}
		}
	}
	for _, r := range recent {
		if !strings.Contains(strings.ToLower(r), normalized) {
			continue
		}
		if _, dup := popularSeen[strings.ToLower(r)]; dup {
			continue
		}
		out.Recent = append(out.Recent, r)
	}

	items := make([]string, 0, len(out.Recent)+len(out.Popular))
	items = append(items, out.Recent...)
	items = append(items, out.Popular...)
	out.Items = head(items, limit)
	return out
}

func head(list []string, n int) []string {
	if len(list) > n {
		list = list[:n]
	}
	return append([]string{}, list...)
}
