package view

import (
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/glintsearch/glint/internal/errors"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestRun_TextFile(t *testing.T) {
	content := "line one\nline two\nline three\n"
	path := writeFile(t, "sample.txt", []byte(content))

	result, err := Run(path, DefaultOptions(), nil)
	require.NoError(t, err)

	assert.Equal(t, path, result.FilePath)
	assert.Equal(t, "text/plain", result.FileType)
	assert.Equal(t, "text", result.Contents.Type)
	assert.Equal(t, 3, result.TotalLineNum)

	require.NotNil(t, result.Contents.Content)
	require.Len(t, result.Contents.Content.LineContents, 3)
	assert.Equal(t, LineContent{LineNumber: 1, Line: "line one"}, result.Contents.Content.LineContents[0])
	assert.Equal(t, LineContent{LineNumber: 3, Line: "line three"}, result.Contents.Content.LineContents[2])

	assert.Equal(t, 3, result.Contents.Metadata.LineCount)
	assert.Equal(t, utf8.RuneCountInString(content), result.Contents.Metadata.CharCount)
	assert.False(t, result.Contents.Metadata.Binary)
}

func TestRun_LineRange(t *testing.T) {
	path := writeFile(t, "sample.txt", []byte("one\ntwo\nthree\nfour\nfive\n"))

	tests := []struct {
		name      string
		from, to  int
		wantLines []string
		wantNums  []int
	}{
		{"middle range", 2, 4, []string{"two", "three", "four"}, []int{2, 3, 4}},
		{"single line", 3, 3, []string{"three"}, []int{3}},
		{"from only", 4, 0, []string{"four", "five"}, []int{4, 5}},
		{"to only", 0, 2, []string{"one", "two"}, []int{1, 2}},
		{"to clamped", 4, 99, []string{"four", "five"}, []int{4, 5}},
		{"inverted range", 4, 2, nil, nil},
		{"from past end", 9, 12, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.LineFrom = tt.from
			opts.LineTo = tt.to

			result, err := Run(path, opts, nil)
			require.NoError(t, err)

			// Metadata keeps describing the whole file.
			assert.Equal(t, 5, result.TotalLineNum)
			assert.Equal(t, 5, result.Contents.Metadata.LineCount)

			var lines []string
			var nums []int
			for _, lc := range result.Contents.Content.LineContents {
				lines = append(lines, lc.Line)
				nums = append(nums, lc.LineNumber)
			}
			assert.Equal(t, tt.wantLines, lines)
			assert.Equal(t, tt.wantNums, nums)
		})
	}
}

func TestRun_CRLFLineEndings(t *testing.T) {
	path := writeFile(t, "dos.txt", []byte("first\r\nsecond\r\n"))

	result, err := Run(path, DefaultOptions(), nil)
	require.NoError(t, err)

	require.Len(t, result.Contents.Content.LineContents, 2)
	assert.Equal(t, "first", result.Contents.Content.LineContents[0].Line)
	assert.Equal(t, "second", result.Contents.Content.LineContents[1].Line)
}

func TestRun_EmptyFile(t *testing.T) {
	path := writeFile(t, "empty.txt", nil)

	result, err := Run(path, DefaultOptions(), nil)
	require.NoError(t, err)

	assert.Equal(t, "text", result.Contents.Type)
	assert.Zero(t, result.TotalLineNum)
	assert.Empty(t, result.Contents.Content.LineContents)
}

func TestRun_BinaryFile(t *testing.T) {
	path := writeFile(t, "prog.bin", []byte{0x7F, 0x45, 0x4C, 0x46, 0x02, 0x01, 0x00, 0x00})

	result, err := Run(path, DefaultOptions(), nil)
	require.NoError(t, err)

	assert.Equal(t, "binary", result.Contents.Type)
	assert.Equal(t, "application/octet-stream", result.FileType)
	assert.Contains(t, result.Contents.Message, "Binary file detected")
	assert.Nil(t, result.Contents.Content)
	assert.True(t, result.Contents.Metadata.Binary)
	assert.Equal(t, int64(8), result.Contents.Metadata.SizeBytes)
	assert.Zero(t, result.TotalLineNum)
}

func TestRun_ImageFile(t *testing.T) {
	path := writeFile(t, "pic.png", []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A})

	result, err := Run(path, DefaultOptions(), nil)
	require.NoError(t, err)

	assert.Equal(t, "image", result.Contents.Type)
	assert.Equal(t, "image/png", result.FileType)
	assert.Contains(t, result.Contents.Message, "Image file detected")
	assert.Equal(t, "image", result.Contents.Metadata.MediaType)
	assert.True(t, result.Contents.Metadata.Binary)
}

func TestRun_SizeLimit(t *testing.T) {
	path := writeFile(t, "big.txt", []byte("0123456789\n0123456789\n"))

	opts := DefaultOptions()
	opts.MaxSize = 10

	_, err := Run(path, opts, nil)
	require.Error(t, err)
	assert.True(t, gerrors.IsSizeLimit(err))
}

func TestRun_SizeLimitDeferredForLineRange(t *testing.T) {
	// A file over the limit is still viewable when the requested line
	// range fits.
	path := writeFile(t, "big.txt", []byte("0123456789\n0123456789\nshort\n"))

	opts := DefaultOptions()
	opts.MaxSize = 10
	opts.LineFrom = 3
	opts.LineTo = 3

	result, err := Run(path, opts, nil)
	require.NoError(t, err)
	require.Len(t, result.Contents.Content.LineContents, 1)
	assert.Equal(t, "short", result.Contents.Content.LineContents[0].Line)
}

func TestRun_ZeroMaxSizeMeansUnlimited(t *testing.T) {
	path := writeFile(t, "any.txt", []byte("content\n"))

	result, err := Run(path, Options{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "text", result.Contents.Type)
}

func TestRun_NotFound(t *testing.T) {
	_, err := Run(filepath.Join(t.TempDir(), "missing.txt"), DefaultOptions(), nil)
	require.Error(t, err)
	assert.True(t, gerrors.IsNotFound(err))
}

func TestRun_DirectoryRejected(t *testing.T) {
	_, err := Run(t.TempDir(), DefaultOptions(), nil)
	require.Error(t, err)
	assert.False(t, gerrors.IsNotFound(err))
}
