// Package search implements regex content search across files:
// gitignore-aware file collection, per-file matching with context
// expansion and content omission, and a sorted, paginated result set.
// Every call rescans the filesystem; there is no index.
package search

import (
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/glintsearch/glint/internal/glob"
	"github.com/glintsearch/glint/internal/matcher"
	"github.com/glintsearch/glint/internal/pathutil"
	"github.com/glintsearch/glint/internal/telemetry"
	"github.com/glintsearch/glint/internal/walker"
)

// Run searches for pattern in files under directory. Pattern and glob
// compilation failures abort before any file I/O; unreadable files are
// logged and skipped. Result lines are sorted by (file path, line
// number) no matter what order files were discovered or which worker
// finished first.
func Run(pattern, directory string, opts Options, log *telemetry.Logger) (*Result, error) {
	m, err := matcher.Compile(pattern, opts.CaseSensitive)
	if err != nil {
		return nil, err
	}

	// nil means no include filter; an empty non-nil list compiles to a
	// filter that matches nothing, excluding every file.
	var include *glob.Filter
	if opts.IncludeGlob != nil {
		include, err = glob.Compile(opts.IncludeGlob, opts.CaseSensitive)
		if err != nil {
			return nil, err
		}
	}

	var exclude *glob.Filter
	if len(opts.ExcludeGlob) > 0 {
		exclude, err = glob.Compile(opts.ExcludeGlob, opts.CaseSensitive)
		if err != nil {
			return nil, err
		}
	}

	files, err := walker.Walk(directory, walker.Options{
		RespectGitignore: opts.RespectGitignore,
		CaseSensitive:    opts.CaseSensitive,
		MaxDepth:         opts.Depth,
		Include:          include,
		Exclude:          exclude,
	}, log)
	if err != nil {
		return nil, err
	}

	log.Debug("search", "collected files", telemetry.F("count", strconv.Itoa(len(files))))

	keepLines := opts.BeforeContext > 0 || opts.AfterContext > 0

	// Files are independent, so matching is fanned out across workers.
	// Each slot is owned by exactly one goroutine; the final sort in
	// assemble makes completion order irrelevant.
	perFile := make([][]ResultLine, len(files))
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			scan, scanErr := m.ScanFile(path, keepLines)
			if scanErr != nil {
				log.Warn("search", "failed to scan file",
					telemetry.F("file_path", path), telemetry.F("error", scanErr.Error()))
				return nil
			}

			records := expandContext(scan, opts.BeforeContext, opts.AfterContext)
			if len(records) == 0 {
				return nil
			}

			reported := pathutil.RemovePrefix(path, opts.OmitPathPrefix)

			lines := make([]ResultLine, 0, len(records))
			for _, rec := range records {
				text := rec.text
				omitted := false
				// Omission never applies to context lines.
				if opts.MatchContentOmitNum != nil && !rec.isContext {
					text, omitted = omitContent(rec.text, rec.spans, *opts.MatchContentOmitNum)
				}
				lines = append(lines, ResultLine{
					FilePath:       reported,
					LineNumber:     rec.lineNumber,
					LineContent:    text,
					IsContext:      rec.isContext,
					ContentOmitted: omitted,
				})
			}
			perFile[i] = lines
			return nil
		})
	}
	// Workers never return errors; per-file failures are logged above.
	_ = g.Wait()

	var all []ResultLine
	for _, lines := range perFile {
		all = append(all, lines...)
	}

	return assemble(all, opts.Skip, opts.Take), nil
}
