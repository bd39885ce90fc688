// Package matcher applies a compiled regex to a file's lines,
// producing per-line match records with byte-safe content. Binary
// files are detected via a NUL-byte heuristic while streaming and
// reported as having zero matches.
package matcher

import (
	"bufio"
	"bytes"
	"os"
	"regexp"

	gerrors "github.com/glintsearch/glint/internal/errors"
)

// Scanner line limit. Lines beyond this are treated as a per-file read
// error, not a fatal one.
const maxLineBytes = 10 * 1024 * 1024

// Span is one match occurrence within a line, in byte offsets.
type Span struct {
	Start int
	End   int
}

// Match is one matched line of a file.
type Match struct {
	LineNumber int // 1-based
	Line       string
	Spans      []Span
}

// FileScan is the result of scanning a single file.
type FileScan struct {
	Matches   []Match
	Lines     []string // populated only when the scan buffers lines
	LineCount int
}

// Matcher holds a compiled pattern. It is immutable after Compile and
// safe to share across worker goroutines.
type Matcher struct {
	re *regexp.Regexp
}

// Compile builds the matcher once per search call. Case-insensitive
// search inlines the (?i) flag into the pattern instead of re-deriving
// behavior per file.
func Compile(pattern string, caseSensitive bool) (*Matcher, error) {
	expr := pattern
	if !caseSensitive {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, gerrors.NewConfigError("search pattern", pattern, err)
	}
	return &Matcher{re: re}, nil
}

// ScanFile streams path line by line and records matching lines with
// their occurrence spans. When keepLines is set, every line of the
// file is buffered so context expansion can reference non-matching
// lines later. A NUL byte anywhere in the stream marks the file binary
// and discards any matches found so far.
func (m *Matcher) ScanFile(path string, keepLines bool) (*FileScan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, gerrors.NewFileError("open", path, err)
	}
	defer f.Close()

	scan := &FileScan{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		raw := scanner.Bytes()

		if bytes.IndexByte(raw, 0) >= 0 {
			// Binary file: zero matches, no buffered lines.
			return &FileScan{}, nil
		}

		line := string(raw)
		if keepLines {
			scan.Lines = append(scan.Lines, line)
		}

		if spans := m.re.FindAllStringIndex(line, -1); len(spans) > 0 {
			match := Match{LineNumber: lineNumber, Line: line}
			for _, s := range spans {
				match.Spans = append(match.Spans, Span{Start: s[0], End: s[1]})
			}
			scan.Matches = append(scan.Matches, match)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, gerrors.NewFileError("read", path, err)
	}

	scan.LineCount = lineNumber
	return scan, nil
}
