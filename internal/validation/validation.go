package validation

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// MaxQueryLength is the longest accepted search query, in characters.
	MaxQueryLength = 200

	// MaxPageSize bounds the page_size parameter.
	MaxPageSize = 100

	maxCategoryLength = 100
)

// CategoryPattern defines the valid category slug format.
var CategoryPattern = regexp.MustCompile(`(?i)^[a-z0-9][a-z0-9-]*$`)

// ValidateQuery checks the length of a search query. Empty queries are allowed.
func ValidateQuery(q string) (bool, string) {
	if utf8.RuneCountInString(q) > MaxQueryLength {
		return false, "Query must be at most " + strconv.Itoa(MaxQueryLength) + " characters"
	}
	return true, ""
}

// ValidateCategory checks a selected category: empty, "all", or a slug.
func ValidateCategory(category string) (bool, string) {
	if category == "" || category == "all" {
		return true, ""
	}
	if len(category) > maxCategoryLength || !CategoryPattern.MatchString(category) {
		return false, "Category must be 'all' or a slug of letters, digits and hyphens"
	}
	return true, ""
}

// ParsePage parses the page parameter. An empty value yields 0, which leaves
// paging to the catalog.
func ParsePage(raw string) (int, bool, string) {
	if raw == "" {
		return 0, true, ""
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, false, "Page must be a positive integer"
	}
	return n, true, ""
}

// ParsePageSize parses the page_size parameter. An empty value yields 0.
func ParsePageSize(raw string) (int, bool, string) {
	if raw == "" {
		return 0, true, ""
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > MaxPageSize {
		return 0, false, "Page size must be between 1 and " + strconv.Itoa(MaxPageSize)
	}
	return n, true, ""
}

// ValidateURL checks if a URL is valid and uses an allowed scheme (http/https only).
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}
