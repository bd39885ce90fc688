// Package traverse lists files under a directory with gitignore-aware
// filtering, optional text-only filtering, and pattern matching that
// accepts either glob syntax or a plain substring.
package traverse

import (
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/glintsearch/glint/internal/glob"
	"github.com/glintsearch/glint/internal/pathutil"
	"github.com/glintsearch/glint/internal/sniff"
	"github.com/glintsearch/glint/internal/telemetry"
	"github.com/glintsearch/glint/internal/walker"
)

// Options configures one traverse call.
type Options struct {
	CaseSensitive    bool
	RespectGitignore bool

	// OnlyTextFiles drops files the sniffer classifies as binary or
	// image content.
	OnlyTextFiles bool

	// Pattern filters files by path. Glob special characters (*, ?,
	// [, ]) select glob matching against the root-relative path;
	// anything else is a substring match over the full path. Empty
	// means no filtering.
	Pattern string

	// Depth bounds traversal in directory levels below the root; zero
	// means unbounded.
	Depth int

	// OmitPathPrefix is stripped from reported file paths when set.
	OmitPathPrefix string
}

// DefaultOptions returns the standard traverse configuration.
func DefaultOptions() Options {
	return Options{
		CaseSensitive:    false,
		RespectGitignore: true,
		OnlyTextFiles:    true,
	}
}

// Entry is one file found during traversal.
type Entry struct {
	FilePath string `json:"file_path"`

	// FileType is the lowercased file extension, or "unknown" when the
	// file has none.
	FileType string `json:"file_type"`
}

// IsHidden reports whether the file is dot-prefixed or sits inside a
// hidden directory.
func (e Entry) IsHidden() bool {
	for _, part := range strings.Split(filepath.ToSlash(e.FilePath), "/") {
		if strings.HasPrefix(part, ".") && part != "." && part != ".." {
			return true
		}
	}
	return false
}

// Run traverses directory and returns the matching files sorted by
// path. Pattern compilation failures are fatal; unreadable files are
// skipped.
func Run(directory string, opts Options, sniffer sniff.TypeSniffer, log *telemetry.Logger) ([]Entry, error) {
	match, err := compilePattern(directory, opts)
	if err != nil {
		return nil, err
	}

	files, err := walker.Walk(directory, walker.Options{
		RespectGitignore: opts.RespectGitignore,
		CaseSensitive:    opts.CaseSensitive,
		MaxDepth:         opts.Depth,
	}, log)
	if err != nil {
		return nil, err
	}

	if sniffer == nil {
		sniffer = sniff.New()
	}

	var results []Entry
	for _, path := range files {
		if !match(path) {
			continue
		}

		if opts.OnlyTextFiles && !isTextFile(path, sniffer, log) {
			continue
		}

		results = append(results, Entry{
			FilePath: pathutil.RemovePrefix(path, opts.OmitPathPrefix),
			FileType: fileType(path),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].FilePath < results[j].FilePath
	})
	return results, nil
}

// compilePattern builds the path predicate for opts.Pattern. Glob
// patterns match the root-relative path; substring patterns match
// anywhere in the full path.
func compilePattern(directory string, opts Options) (func(string) bool, error) {
	if opts.Pattern == "" {
		return func(string) bool { return true }, nil
	}

	if strings.ContainsAny(opts.Pattern, "*?[]") {
		filter, err := glob.Compile([]string{opts.Pattern}, opts.CaseSensitive)
		if err != nil {
			return nil, err
		}
		return func(path string) bool {
			rel, err := filepath.Rel(directory, path)
			if err != nil {
				rel = path
			}
			return filter.Matches(rel)
		}, nil
	}

	expr := ".*" + regexp.QuoteMeta(opts.Pattern) + ".*"
	if !opts.CaseSensitive {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	return re.MatchString, nil
}

func isTextFile(path string, sniffer sniff.TypeSniffer, log *telemetry.Logger) bool {
	f, err := os.Open(path)
	if err != nil {
		log.Warn("traverse", "failed to open file",
			telemetry.F("file_path", path), telemetry.F("error", err.Error()))
		return false
	}
	defer f.Close()

	prefix := make([]byte, 512)
	n, err := f.Read(prefix)
	if err != nil && err != io.EOF {
		log.Warn("traverse", "failed to read file",
			telemetry.F("file_path", path), telemetry.F("error", err.Error()))
		return false
	}

	return sniffer.Classify(prefix[:n]) == sniff.KindText
}

func fileType(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return "unknown"
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
