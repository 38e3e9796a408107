// Package intent decides which catalog categories a storefront search should
// target. Everything here is a pure lookup over static tables and is safe for
// concurrent use.
package intent

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// minKeywordLen is the shortest token kept by ExtractKeywords.
const minKeywordLen = 3

// ExtractKeywords lowercases the query, splits it on whitespace and keeps the
// tokens longer than two characters, in query order. Punctuation is kept, so
// "shoes," does not match "shoes".
func ExtractKeywords(query string) []string {
	keywords := []string{}
	if query == "" {
		return keywords
	}

	// A Caser is stateful; build one per call.
	lowered := cases.Lower(language.Und).String(query)
	for _, word := range strings.Fields(lowered) {
		if utf8.RuneCountInString(word) < minKeywordLen {
			continue
		}
		keywords = append(keywords, word)
	}
	return keywords
}
