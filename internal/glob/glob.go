// Package glob compiles shell-style glob patterns (*, **, ?, [...],
// {a,b}) into a filter matched against paths relative to the search
// root. Matching against relative paths is the load-bearing contract:
// absolute prefixes vary by invocation and must never influence the
// result.
package glob

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	gerrors "github.com/glintsearch/glint/internal/errors"
)

// Filter holds a compiled set of glob patterns. A Filter with zero
// patterns matches nothing; callers that want "no filtering" pass a
// nil *Filter instead.
type Filter struct {
	patterns      []string
	caseSensitive bool
}

// Compile validates the patterns and builds a filter. A malformed
// pattern aborts with a ConfigError naming it; the whole operation is
// expected to fail before any file I/O happens.
func Compile(patterns []string, caseSensitive bool) (*Filter, error) {
	compiled := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		p := pattern
		if !caseSensitive {
			p = strings.ToLower(p)
		}
		if !doublestar.ValidatePattern(p) {
			return nil, gerrors.NewConfigError("glob pattern", pattern,
				fmt.Errorf("malformed pattern syntax"))
		}
		compiled = append(compiled, p)
	}

	return &Filter{patterns: compiled, caseSensitive: caseSensitive}, nil
}

// Matches reports whether the relative path matches any pattern in the
// set. An empty pattern set matches nothing.
func (f *Filter) Matches(relPath string) bool {
	if f == nil || len(f.patterns) == 0 {
		return false
	}

	candidate := filepath.ToSlash(relPath)
	if !f.caseSensitive {
		candidate = strings.ToLower(candidate)
	}

	for _, pattern := range f.patterns {
		// Patterns are pre-validated, so Match cannot fail here.
		if matched, _ := doublestar.Match(pattern, candidate); matched {
			return true
		}
	}
	return false
}

// Empty reports whether the filter holds no patterns.
func (f *Filter) Empty() bool {
	return f == nil || len(f.patterns) == 0
}
