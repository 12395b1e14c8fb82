package util

import "strings"

// ExclusionMatcher excludes paths containing any configured substring.
// Matching is plain substring containment against the full path, not
// glob expansion.
type ExclusionMatcher struct {
	patterns []string
}

// NewExclusionMatcher creates a matcher from exclusion substrings
func NewExclusionMatcher(patterns []string) *ExclusionMatcher {
	return &ExclusionMatcher{patterns: patterns}
}

// Matches reports whether the path should be excluded
func (m *ExclusionMatcher) Matches(path string) bool {
	for _, p := range m.patterns {
		if p != "" && strings.Contains(path, p) {
			return true
		}
	}
	return false
}
