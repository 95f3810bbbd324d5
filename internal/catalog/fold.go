package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// lower applies full Unicode lower-casing, including special casing rules
// that strings.ToLower does not handle.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// containsFold reports whether s contains the already lower-cased substr,
// ignoring case.
func containsFold(s, substr string) bool {
	return strings.Contains(lower(s), substr)
}
