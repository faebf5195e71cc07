package generator

import (
	"regexp"
	"strings"
)

var (
	// fooBar, foo2Bar
	lowerUpperBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	// HTMLPage -> HTML-Page
	acronymBoundary = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
)

// camelToKebab converts CamelCase or camelCase to kebab-case.
// Underscores become hyphens; leading and trailing hyphens are trimmed.
func camelToKebab(s string) string {
	if s == "" {
		return ""
	}
	s = acronymBoundary.ReplaceAllString(s, "${1}-${2}")
	s = lowerUpperBoundary.ReplaceAllString(s, "${1}-${2}")
	s = strings.ReplaceAll(s, "_", "-")
	return strings.Trim(strings.ToLower(s), "-")
}

// singular strips one trailing "s"
func singular(resource string) string {
	return strings.TrimSuffix(resource, "s")
}
