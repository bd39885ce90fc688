package search

// Options configures one search call. The zero value is not the
// default; use DefaultOptions.
type Options struct {
	// CaseSensitive applies to both the content pattern and glob
	// matching.
	CaseSensitive bool

	// RespectGitignore applies .gitignore, the repository's
	// info/exclude file, and skips hidden entries. Disabling it turns
	// off every ignore source and surfaces hidden entries.
	RespectGitignore bool

	// IncludeGlob keeps only files matching at least one pattern,
	// relative to the search root. Nil means no include filter; an
	// empty non-nil slice deliberately matches nothing.
	IncludeGlob []string

	// ExcludeGlob drops matching files, applied after IncludeGlob.
	ExcludeGlob []string

	// OmitPathPrefix is stripped from reported file paths when set.
	OmitPathPrefix string

	// MatchContentOmitNum truncates long matching lines to a window of
	// this many characters around each occurrence. Nil disables
	// truncation. Counted in Unicode scalar units, never splitting the
	// matched substring.
	MatchContentOmitNum *int

	// Depth bounds traversal in directory levels below the root; zero
	// means unbounded.
	Depth int

	// BeforeContext and AfterContext add that many adjacent lines
	// around each match, clipped at file boundaries.
	BeforeContext int
	AfterContext  int

	// Skip drops that many leading result lines after sorting.
	Skip int

	// Take caps the number of result lines returned after Skip. Nil
	// returns everything remaining.
	Take *int
}

// DefaultOptions returns the standard search configuration:
// case-insensitive, gitignore respected, no filtering, no pagination.
func DefaultOptions() Options {
	return Options{
		CaseSensitive:    false,
		RespectGitignore: true,
	}
}
