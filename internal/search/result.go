package search

import "sort"

// ResultLine is one reported line: either an actual pattern match or a
// context line pulled in by before/after expansion.
type ResultLine struct {
	FilePath    string `json:"file_path"`
	LineNumber  int    `json:"line_number"` // 1-based
	LineContent string `json:"line_content"`

	// IsContext is true when the line is included only because it sits
	// inside another match's context window.
	IsContext bool `json:"is_context"`

	// ContentOmitted is true when LineContent was truncated around the
	// match occurrences. Never set on context lines.
	ContentOmitted bool `json:"content_omitted"`
}

// Result is the materialized outcome of one search call.
type Result struct {
	// TotalNumber counts all result lines before pagination.
	TotalNumber int `json:"total_number"`

	// Lines is sorted by (file path, line number) ascending, regardless
	// of the order files were discovered or processed.
	Lines []ResultLine `json:"lines"`
}

// assemble concatenates per-file line records in any discovery order,
// sorts them into the canonical (file path, line number) order, and
// applies skip/take pagination. TotalNumber reflects the pre-pagination
// length. Negative skip and take values clamp to zero.
func assemble(lines []ResultLine, skip int, take *int) *Result {
	sortLines(lines)

	total := len(lines)

	if skip >= len(lines) {
		lines = nil
	} else if skip > 0 {
		lines = lines[skip:]
	}

	if take != nil {
		limit := *take
		if limit < 0 {
			limit = 0
		}
		if limit < len(lines) {
			lines = lines[:limit]
		}
	}

	return &Result{TotalNumber: total, Lines: lines}
}

func sortLines(lines []ResultLine) {
	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].FilePath != lines[j].FilePath {
			return lines[i].FilePath < lines[j].FilePath
		}
		return lines[i].LineNumber < lines[j].LineNumber
	})
}

// Split extracts the 1-based inclusive sub-range [from, to] of the
// sorted, unpaginated lines. Bounds are clamped to the available
// range; an inverted or out-of-range request yields an empty result.
// TotalNumber is preserved so pages remain comparable to the full
// result.
func (r *Result) Split(from, to int) *Result {
	if from < 1 {
		from = 1
	}
	if to > len(r.Lines) {
		to = len(r.Lines)
	}
	if from > to {
		return &Result{TotalNumber: r.TotalNumber}
	}
	return &Result{TotalNumber: r.TotalNumber, Lines: r.Lines[from-1 : to]}
}
