// Package walker implements gitignore-aware directory traversal with
// hidden-file semantics, depth limits and glob-based include/exclude
// filtering. It yields candidate paths for the search, traverse and
// tree operations; per-entry read errors are logged and skipped so a
// single unreadable subtree never aborts a walk.
package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gerrors "github.com/glintsearch/glint/internal/errors"
	"github.com/glintsearch/glint/internal/gitignore"
	"github.com/glintsearch/glint/internal/glob"
	"github.com/glintsearch/glint/internal/telemetry"
)

// Entry is one filesystem object yielded by the walk.
type Entry struct {
	Path  string
	IsDir bool
}

// Options configures a walk.
type Options struct {
	// RespectGitignore applies .gitignore files, the repository's
	// info/exclude file, and skips dot-prefixed entries. When false all
	// ignore sources are disabled and hidden entries are included.
	RespectGitignore bool

	// CaseSensitive controls how ignore patterns and glob filters treat
	// case. It does not alter the returned file names.
	CaseSensitive bool

	// MaxDepth bounds recursion in directory levels below the root;
	// entries directly in the root are at depth 1. Zero means
	// unbounded.
	MaxDepth int

	// Include keeps a file only when it matches; nil disables the
	// filter entirely. A non-nil filter with zero patterns keeps
	// nothing. Patterns are matched against paths relative to the walk
	// root.
	Include *glob.Filter

	// Exclude drops files that match, applied after Include. Nil drops
	// nothing.
	Exclude *glob.Filter
}

// Walk traverses root and returns the files that survive filtering, in
// filesystem order. Only a failure to access the root itself is fatal.
func Walk(root string, opts Options, log *telemetry.Logger) ([]string, error) {
	entries, err := WalkEntries(root, opts, log)
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir {
			files = append(files, e.Path)
		}
	}
	return files, nil
}

// WalkEntries traverses root and returns both files and directories
// that survive filtering. The root itself is not included. Glob
// filters apply to files only; directories are pruned by the ignore
// rules, hidden-entry handling and the depth bound.
func WalkEntries(root string, opts Options, log *telemetry.Logger) ([]Entry, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, gerrors.NewFileError("walk", root, err)
	}
	if !info.IsDir() {
		return nil, gerrors.NewFileError("walk", root, fmt.Errorf("not a directory"))
	}

	var ignores *gitignore.Index
	if opts.RespectGitignore {
		ignores = gitignore.NewIndex(root, opts.CaseSensitive)
	}

	var results []Entry

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return gerrors.NewFileError("walk", root, err)
			}
			log.Warn("walker", "error walking directory entry",
				telemetry.F("path", path), telemetry.F("error", err.Error()))
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil || rel == "." {
			return nil
		}

		isDir := d.IsDir()

		// Hidden entries are only skipped while ignore rules are active,
		// mirroring how disabling gitignore also surfaces dotfiles.
		if opts.RespectGitignore && strings.HasPrefix(d.Name(), ".") {
			if isDir {
				return filepath.SkipDir
			}
			return nil
		}

		depth := len(strings.Split(filepath.ToSlash(rel), "/"))
		if opts.MaxDepth > 0 && isDir && depth >= opts.MaxDepth {
			// Entries inside this directory would exceed the bound.
			if ignored := ignores != nil && ignores.Ignored(path, true); !ignored {
				results = append(results, Entry{Path: path, IsDir: true})
			}
			return filepath.SkipDir
		}

		if ignores != nil && ignores.Ignored(path, isDir) {
			if isDir {
				return filepath.SkipDir
			}
			return nil
		}

		if isDir {
			if ignores != nil {
				ignores.AddDir(path)
			}
			results = append(results, Entry{Path: path, IsDir: true})
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		if opts.Include != nil && !opts.Include.Matches(rel) {
			return nil
		}
		if opts.Exclude != nil && opts.Exclude.Matches(rel) {
			return nil
		}

		results = append(results, Entry{Path: path, IsDir: false})
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return results, nil
}
