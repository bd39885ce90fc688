// Package pathutil provides small path manipulation helpers shared by
// the search, traverse and tree operations.
package pathutil

import (
	"path/filepath"
	"strings"
)

// RemovePrefix strips prefix from path when path is inside it. The
// comparison is component-aware: "/a/bc" does not have the prefix
// "/a/b". If the prefix does not match, the path is returned unchanged.
func RemovePrefix(path, prefix string) string {
	if prefix == "" {
		return path
	}

	cleanPath := filepath.Clean(path)
	cleanPrefix := filepath.Clean(prefix)

	if cleanPath == cleanPrefix {
		return ""
	}

	sep := string(filepath.Separator)
	if strings.HasPrefix(cleanPath, cleanPrefix+sep) {
		return strings.TrimPrefix(cleanPath, cleanPrefix+sep)
	}

	return path
}
