package search

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	gerrors "github.com/glintsearch/glint/internal/errors"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestRun_BasicMatchesSortedAcrossFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.txt": "hello world\n",
		"b.txt": "\n\nhello world\n",
	})

	result, err := Run("world", root, DefaultOptions(), nil)
	require.NoError(t, err)

	require.Len(t, result.Lines, 2)
	assert.Equal(t, 2, result.TotalNumber)

	assert.Equal(t, ResultLine{
		FilePath:    filepath.Join(root, "a.txt"),
		LineNumber:  1,
		LineContent: "hello world",
	}, result.Lines[0])
	assert.Equal(t, ResultLine{
		FilePath:    filepath.Join(root, "b.txt"),
		LineNumber:  3,
		LineContent: "hello world",
	}, result.Lines[1])
}

func TestRun_BeforeContextIncludesBlankLines(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.txt": "hello world\n",
		"b.txt": "\n\nhello world\n",
	})

	opts := DefaultOptions()
	opts.BeforeContext = 1

	result, err := Run("world", root, opts, nil)
	require.NoError(t, err)

	// a.txt matches on line 1, so there is nothing before it; b.txt
	// pulls in its blank line 2.
	require.Len(t, result.Lines, 3)
	assert.Equal(t, 3, result.TotalNumber)

	assert.Equal(t, ResultLine{
		FilePath:    filepath.Join(root, "b.txt"),
		LineNumber:  2,
		LineContent: "",
		IsContext:   true,
	}, result.Lines[1])
	assert.False(t, result.Lines[0].IsContext)
	assert.False(t, result.Lines[2].IsContext)
}

func TestRun_ExcludeGlob(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"notes.md":    "needle\n",
		"code.go":     "needle\n",
		"docs/sub.md": "needle\n",
	})

	opts := DefaultOptions()
	opts.ExcludeGlob = []string{"**/*.md"}

	result, err := Run("needle", root, opts, nil)
	require.NoError(t, err)

	require.Len(t, result.Lines, 1)
	assert.Equal(t, filepath.Join(root, "code.go"), result.Lines[0].FilePath)
}

func TestRun_IncludeGlobSemantics(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.go":  "needle\n",
		"b.txt": "needle\n",
	})

	t.Run("nil disables filtering", func(t *testing.T) {
		result, err := Run("needle", root, DefaultOptions(), nil)
		require.NoError(t, err)
		assert.Len(t, result.Lines, 2)
	})

	t.Run("patterns restrict candidates", func(t *testing.T) {
		opts := DefaultOptions()
		opts.IncludeGlob = []string{"**/*.go"}
		result, err := Run("needle", root, opts, nil)
		require.NoError(t, err)
		require.Len(t, result.Lines, 1)
		assert.Equal(t, filepath.Join(root, "a.go"), result.Lines[0].FilePath)
	})

	t.Run("empty non-nil list matches nothing", func(t *testing.T) {
		opts := DefaultOptions()
		opts.IncludeGlob = []string{}
		result, err := Run("needle", root, opts, nil)
		require.NoError(t, err)
		assert.Empty(t, result.Lines)
		assert.Zero(t, result.TotalNumber)
	})
}

func TestRun_CaseSensitivity(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.txt": "Needle\nneedle\n"})

	opts := DefaultOptions()
	opts.CaseSensitive = true
	result, err := Run("needle", root, opts, nil)
	require.NoError(t, err)
	require.Len(t, result.Lines, 1)
	assert.Equal(t, 2, result.Lines[0].LineNumber)

	result, err = Run("needle", root, DefaultOptions(), nil)
	require.NoError(t, err)
	assert.Len(t, result.Lines, 2)
}

func TestRun_GitignoreToggle(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"kept.txt":    "needle\n",
		"skipped.log": "needle\n",
		".gitignore":  "*.log\n",
	})

	result, err := Run("needle", root, DefaultOptions(), nil)
	require.NoError(t, err)
	require.Len(t, result.Lines, 1)
	assert.Equal(t, filepath.Join(root, "kept.txt"), result.Lines[0].FilePath)

	opts := DefaultOptions()
	opts.RespectGitignore = false
	result, err = Run("needle", root, opts, nil)
	require.NoError(t, err)
	assert.Len(t, result.Lines, 2)
}

func TestRun_ContentOmission(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.txt": "the quick brown fox jumps over the lazy dog\nfox\n",
	})

	opts := DefaultOptions()
	opts.MatchContentOmitNum = intPtr(2)

	result, err := Run("fox", root, opts, nil)
	require.NoError(t, err)

	require.Len(t, result.Lines, 2)
	assert.Equal(t, "<omit>n fox j<omit>", result.Lines[0].LineContent)
	assert.True(t, result.Lines[0].ContentOmitted)

	// Short line: window covers everything, nothing replaced.
	assert.Equal(t, "fox", result.Lines[1].LineContent)
	assert.False(t, result.Lines[1].ContentOmitted)
}

func TestRun_OmissionSkipsContextLines(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.txt": "a very long leading line that would surely be truncated\nneedle here in a long line with much more text after it\n",
	})

	opts := DefaultOptions()
	opts.BeforeContext = 1
	opts.MatchContentOmitNum = intPtr(3)

	result, err := Run("needle", root, opts, nil)
	require.NoError(t, err)

	require.Len(t, result.Lines, 2)
	assert.True(t, result.Lines[0].IsContext)
	assert.Equal(t, "a very long leading line that would surely be truncated", result.Lines[0].LineContent)
	assert.False(t, result.Lines[0].ContentOmitted)

	assert.True(t, result.Lines[1].ContentOmitted)
	assert.Equal(t, "needle he<omit>", result.Lines[1].LineContent)
}

func TestRun_Pagination(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.txt": "hit one\nmiss\nhit two\n",
		"b.txt": "hit three\nhit four\n",
	})

	full, err := Run("hit", root, DefaultOptions(), nil)
	require.NoError(t, err)
	require.Len(t, full.Lines, 4)

	opts := DefaultOptions()
	opts.Skip = 1
	opts.Take = intPtr(2)

	page, err := Run("hit", root, opts, nil)
	require.NoError(t, err)

	assert.Equal(t, 4, page.TotalNumber)
	assert.Equal(t, full.Split(2, 3), page)
}

func TestRun_NegativePaginationValues(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.txt": "needle\n"})

	opts := DefaultOptions()
	opts.Skip = -2
	opts.Take = intPtr(-1)

	result, err := Run("needle", root, opts, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalNumber)
	assert.Empty(t, result.Lines)
}

func TestRun_NegativeContextCounts(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.txt": "before\nneedle\nafter\n"})

	opts := DefaultOptions()
	opts.BeforeContext = -1
	opts.AfterContext = -1

	result, err := Run("needle", root, opts, nil)
	require.NoError(t, err)

	// Matches must survive; only the context window shrinks to nothing.
	require.Len(t, result.Lines, 1)
	assert.Equal(t, 2, result.Lines[0].LineNumber)
	assert.False(t, result.Lines[0].IsContext)
}

func TestRun_StripPathPrefix(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"sub/a.txt": "needle\n"})

	opts := DefaultOptions()
	opts.OmitPathPrefix = root

	result, err := Run("needle", root, opts, nil)
	require.NoError(t, err)

	require.Len(t, result.Lines, 1)
	assert.Equal(t, filepath.Join("sub", "a.txt"), result.Lines[0].FilePath)
}

func TestRun_BinaryFilesExcluded(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"text.txt": "needle\n"})
	require.NoError(t, os.WriteFile(filepath.Join(root, "bin.dat"), []byte("needle\x00needle\n"), 0o644))

	result, err := Run("needle", root, DefaultOptions(), nil)
	require.NoError(t, err)

	require.Len(t, result.Lines, 1)
	assert.Equal(t, filepath.Join(root, "text.txt"), result.Lines[0].FilePath)
}

func TestRun_Deterministic(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.txt":       "alpha needle\nbeta\ngamma needle\n",
		"b/one.txt":   "needle\n",
		"b/two.txt":   "needle at start\nand a needle here\n",
		"c/three.txt": "no match here\n",
	})

	first, err := Run("needle", root, DefaultOptions(), nil)
	require.NoError(t, err)

	// The parallel scan must not leak goroutine scheduling into the
	// result order.
	for i := 0; i < 10; i++ {
		again, err := Run("needle", root, DefaultOptions(), nil)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestRun_Errors(t *testing.T) {
	t.Run("invalid pattern", func(t *testing.T) {
		_, err := Run("(unclosed", t.TempDir(), DefaultOptions(), nil)
		require.Error(t, err)
		assert.True(t, gerrors.IsConfig(err))
	})

	t.Run("invalid include glob", func(t *testing.T) {
		opts := DefaultOptions()
		opts.IncludeGlob = []string{"[bad"}
		_, err := Run("x", t.TempDir(), opts, nil)
		require.Error(t, err)
		assert.True(t, gerrors.IsConfig(err))
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := Run("x", filepath.Join(t.TempDir(), "missing"), DefaultOptions(), nil)
		require.Error(t, err)

		var fe *gerrors.FileError
		assert.ErrorAs(t, err, &fe)
	})
}
