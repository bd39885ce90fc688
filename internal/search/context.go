package search

import (
	"sort"

	"github.com/glintsearch/glint/internal/matcher"
)

// lineRecord is the per-file intermediate form of a result line, before
// omission and path prefix stripping are applied.
type lineRecord struct {
	lineNumber int
	text       string
	isContext  bool
	spans      []matcher.Span
}

// expandContext produces the full set of lines to report for one file:
// every matched line plus up to before/after adjacent lines per match,
// clipped at line 1 and EOF. Overlapping or adjacent context windows
// are reported once, and a line that is itself a match is always
// reported as a match even when it falls inside another match's
// window. Output is in ascending line-number order.
//
// When either context count is nonzero the scan must have buffered the
// file's lines, since the matcher does not retain text outside the
// match set.
func expandContext(scan *matcher.FileScan, before, after int) []lineRecord {
	if len(scan.Matches) == 0 {
		return nil
	}

	// Negative counts would shrink the window below the match line
	// itself; treat them as no context.
	if before < 0 {
		before = 0
	}
	if after < 0 {
		after = 0
	}

	if before == 0 && after == 0 {
		records := make([]lineRecord, 0, len(scan.Matches))
		for _, m := range scan.Matches {
			records = append(records, lineRecord{
				lineNumber: m.LineNumber,
				text:       m.Line,
				spans:      m.Spans,
			})
		}
		return records
	}

	matchByLine := make(map[int]matcher.Match, len(scan.Matches))
	for _, m := range scan.Matches {
		matchByLine[m.LineNumber] = m
	}

	// Union of context ranges, intersected with the valid line range.
	contextSet := make(map[int]struct{})
	for _, m := range scan.Matches {
		from := m.LineNumber - before
		if from < 1 {
			from = 1
		}
		to := m.LineNumber + after
		if to > scan.LineCount {
			to = scan.LineCount
		}
		for n := from; n <= to; n++ {
			contextSet[n] = struct{}{}
		}
	}

	numbers := make([]int, 0, len(contextSet))
	for n := range contextSet {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	records := make([]lineRecord, 0, len(numbers))
	for _, n := range numbers {
		if m, ok := matchByLine[n]; ok {
			records = append(records, lineRecord{
				lineNumber: n,
				text:       m.Line,
				spans:      m.Spans,
			})
			continue
		}
		records = append(records, lineRecord{
			lineNumber: n,
			text:       scan.Lines[n-1],
			isContext:  true,
		})
	}
	return records
}
