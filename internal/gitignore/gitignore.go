// Package gitignore applies .gitignore semantics during directory
// walks. Matchers are loaded per directory as the walk descends, so
// nested .gitignore files apply only below the directory that declares
// them, and the repository-level .git/info/exclude file is honored at
// the root.
package gitignore

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/monochromegane/go-gitignore"
)

type entry struct {
	base    string
	matcher gitignore.IgnoreMatcher
}

// Index holds the ignore matchers discovered so far during one walk.
// It is not safe for concurrent use; each walk owns its own Index.
type Index struct {
	root          string
	caseSensitive bool
	entries       []entry
}

// NewIndex creates an index rooted at root and loads the root-level
// ignore sources: the user's global excludes file, .git/info/exclude
// and the root .gitignore.
func NewIndex(root string, caseSensitive bool) *Index {
	ix := &Index{root: root, caseSensitive: caseSensitive}
	if global := globalExcludesFile(); global != "" {
		ix.load(global, root)
	}
	ix.load(filepath.Join(root, ".git", "info", "exclude"), root)
	ix.AddDir(root)
	return ix
}

// globalExcludesFile resolves git's default location for the
// user-global excludes file: $XDG_CONFIG_HOME/git/ignore, falling back
// to ~/.config/git/ignore. A missing file is handled by load.
func globalExcludesFile() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "git", "ignore")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "git", "ignore")
}

// AddDir loads dir/.gitignore into the index if the file exists.
// Missing or unreadable ignore files are not an error.
func (ix *Index) AddDir(dir string) {
	ix.load(filepath.Join(dir, ".gitignore"), dir)
}

func (ix *Index) load(ignoreFile, base string) {
	content, err := os.ReadFile(ignoreFile)
	if err != nil {
		return
	}
	if !ix.caseSensitive {
		content = bytes.ToLower(content)
		base = strings.ToLower(base)
	}
	matcher := gitignore.NewGitIgnoreFromReader(base, bytes.NewReader(content))
	ix.entries = append(ix.entries, entry{base: base, matcher: matcher})
}

// Ignored reports whether path is excluded by any loaded ignore source.
// Pattern negation is resolved within each .gitignore file by the
// underlying matcher; across files, any source that ignores the path
// wins.
func (ix *Index) Ignored(path string, isDir bool) bool {
	candidate := path
	if !ix.caseSensitive {
		candidate = strings.ToLower(candidate)
	}
	for _, e := range ix.entries {
		// Only consult matchers whose base directory contains the path.
		if !strings.HasPrefix(candidate, e.base+string(filepath.Separator)) && candidate != e.base {
			continue
		}
		if e.matcher.Match(candidate, isDir) {
			return true
		}
	}
	return false
}
