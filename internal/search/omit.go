package search

import (
	"strings"
	"unicode/utf8"

	"github.com/glintsearch/glint/internal/matcher"
)

// OmissionMarker replaces every elided stretch of a truncated line,
// including the start and end of the string when content was cut
// there.
const OmissionMarker = "<omit>"

type window struct {
	start int // rune offsets, inclusive
	end   int // exclusive
}

// omitContent truncates a matching line to windows of omitNum
// characters before and after each occurrence. Windows are counted in
// Unicode scalar units so multi-byte sequences are never split, and
// the matched substring itself is always kept whole even when longer
// than the window. Overlapping and adjacent windows merge into one
// kept segment. Returns the possibly-truncated text and whether any
// character of the original line was replaced by the marker.
func omitContent(line string, spans []matcher.Span, omitNum int) (string, bool) {
	if len(spans) == 0 {
		return line, false
	}

	runes := []rune(line)

	windows := make([]window, 0, len(spans))
	for _, span := range spans {
		start := utf8.RuneCountInString(line[:span.Start]) - omitNum
		if start < 0 {
			start = 0
		}
		end := utf8.RuneCountInString(line[:span.End]) + omitNum
		if end > len(runes) {
			end = len(runes)
		}
		windows = append(windows, window{start: start, end: end})
	}

	merged := windows[:1]
	for _, w := range windows[1:] {
		last := &merged[len(merged)-1]
		if w.start <= last.end {
			if w.end > last.end {
				last.end = w.end
			}
			continue
		}
		merged = append(merged, w)
	}

	// Merged windows spanning the entire line mean nothing was elided.
	if len(merged) == 1 && merged[0].start == 0 && merged[0].end == len(runes) {
		return line, false
	}

	var b strings.Builder
	if merged[0].start > 0 {
		b.WriteString(OmissionMarker)
	}
	for i, w := range merged {
		if i > 0 {
			b.WriteString(OmissionMarker)
		}
		b.WriteString(string(runes[w.start:w.end]))
	}
	if merged[len(merged)-1].end < len(runes) {
		b.WriteString(OmissionMarker)
	}

	return b.String(), true
}
