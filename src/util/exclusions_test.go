package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExclusionMatcher(t *testing.T) {
	m := NewExclusionMatcher([]string{"node_modules", ".git", "generated"})

	assert.True(t, m.Matches("web/node_modules/react/index.js"))
	assert.True(t, m.Matches("/repo/.git/HEAD"))
	assert.True(t, m.Matches("pkg/generated_code.go"))

	assert.False(t, m.Matches("src/main.go"))
	assert.False(t, m.Matches("pkg/nodes/module.go"))
}

func TestExclusionMatcherEmptyPatterns(t *testing.T) {
	m := NewExclusionMatcher(nil)
	assert.False(t, m.Matches("anything/at/all.go"))

	// Empty strings in the pattern list never match
	m = NewExclusionMatcher([]string{""})
	assert.False(t, m.Matches("src/main.go"))
}
