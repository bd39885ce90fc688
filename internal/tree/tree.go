// Package tree generates a hierarchical directory listing: one record
// per non-empty directory, each holding its immediate entries.
package tree

import (
	"path/filepath"
	"sort"

	"github.com/glintsearch/glint/internal/pathutil"
	"github.com/glintsearch/glint/internal/telemetry"
	"github.com/glintsearch/glint/internal/walker"
)

// Options configures one tree call.
type Options struct {
	CaseSensitive    bool
	RespectGitignore bool

	// Depth bounds traversal in directory levels below the root; zero
	// means unbounded.
	Depth int

	// OmitPathPrefix is stripped from reported directory keys when set.
	OmitPathPrefix string
}

// DefaultOptions returns the standard tree configuration.
func DefaultOptions() Options {
	return Options{
		CaseSensitive:    false,
		RespectGitignore: true,
	}
}

// EntryKind distinguishes files from subdirectories within a directory
// record.
type EntryKind string

const (
	KindFile      EntryKind = "file"
	KindDirectory EntryKind = "directory"
)

// Entry is one immediate child of a directory.
type Entry struct {
	Kind EntryKind `json:"type"`
	Name string    `json:"name"`
}

// DirectoryTree is one directory and its immediate entries. Entries
// keep walk (insertion) order; the list of DirectoryTree records is
// sorted by directory key.
type DirectoryTree struct {
	Dir     string  `json:"dir"`
	Entries []Entry `json:"entries"`
}

// Run generates the tree for directory. Every non-empty directory
// encountered appears exactly once; an entirely empty walk yields the
// root with a "." placeholder entry.
func Run(directory string, opts Options, log *telemetry.Logger) ([]DirectoryTree, error) {
	entries, err := walker.WalkEntries(directory, walker.Options{
		RespectGitignore: opts.RespectGitignore,
		CaseSensitive:    opts.CaseSensitive,
		MaxDepth:         opts.Depth,
	}, log)
	if err != nil {
		return nil, err
	}

	root := filepath.Clean(directory)

	// Grouping is keyed by the cleaned parent path, not its display
	// form, so platform separator differences cannot split a directory
	// into two records.
	grouped := make(map[string][]Entry)
	for _, e := range entries {
		parent := filepath.Clean(filepath.Dir(e.Path))
		kind := KindFile
		if e.IsDir {
			kind = KindDirectory
		}
		grouped[parent] = append(grouped[parent], Entry{
			Kind: kind,
			Name: filepath.Base(e.Path),
		})
	}

	if len(grouped) == 0 {
		return []DirectoryTree{{
			Dir:     displayKey(root, opts.OmitPathPrefix),
			Entries: []Entry{{Kind: KindDirectory, Name: "."}},
		}}, nil
	}

	result := make([]DirectoryTree, 0, len(grouped))
	for dir, children := range grouped {
		result = append(result, DirectoryTree{
			Dir:     displayKey(dir, opts.OmitPathPrefix),
			Entries: children,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Dir < result[j].Dir
	})
	return result, nil
}

func displayKey(dir, prefix string) string {
	stripped := pathutil.RemovePrefix(dir, prefix)
	if stripped == "" {
		return "."
	}
	return stripped
}
