package scraper

import (
	"net/url"
	"strings"
	"unicode"
)

// Course name validation bounds.
const (
	minCourseNameLen = 5
	maxCourseNameLen = 150
)

// uiTerms are navigation/UI strings that disqualify a candidate course name.
var uiTerms = []string{"Cookie", "Menu", "Search", "Apply", "More", "Click here", "Read more"}

// cleanText collapses whitespace runs and trims the result.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// absoluteURL resolves href against base. Invalid inputs return href as-is.
func absoluteURL(base, href string) string {
	if href == "" {
		return ""
	}

	baseURL, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}

	return baseURL.ResolveReference(ref).String()
}

// validCourseName checks a candidate name against length bounds, required
// degree/subject keywords, UI-term exclusions, and the all-uppercase rule.
func validCourseName(text string, indicators, subjects []string) bool {
	if len(text) < minCourseNameLen || len(text) > maxCourseNameLen {
		return false
	}

	hasIndicator := containsAny(text, indicators)
	hasSubject := containsAny(text, subjects)
	if !hasIndicator && !hasSubject {
		return false
	}

	if containsAny(text, uiTerms) {
		return false
	}

	return !isAllUpper(text)
}

// isAllUpper reports whether the string has cased letters and all of them
// are uppercase (headings like "UNDERGRADUATE STUDY").
func isAllUpper(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}
