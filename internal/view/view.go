// Package view reads a single file and returns a type-classified
// representation: text content line by line, or a descriptive message
// for binary and image files, each with metadata.
package view

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	gerrors "github.com/glintsearch/glint/internal/errors"
	"github.com/glintsearch/glint/internal/sniff"
)

// DefaultMaxSize is the view size limit applied by DefaultOptions.
const DefaultMaxSize = 10 * 1024 * 1024

// Options configures one view call.
type Options struct {
	// MaxSize rejects files larger than this many bytes. Zero means no
	// limit. When line filtering is active only the filtered content is
	// checked against the limit.
	MaxSize int64

	// LineFrom and LineTo select an inclusive 1-based line range for
	// text files. Zero means unset. Out-of-range values are clamped
	// silently; an inverted range yields empty content. Metadata always
	// describes the whole file.
	LineFrom int
	LineTo   int
}

// DefaultOptions returns the standard view configuration with a 10MB
// size limit and no line filtering.
func DefaultOptions() Options {
	return Options{MaxSize: DefaultMaxSize}
}

// LineContent is a single line of a text file.
type LineContent struct {
	LineNumber int    `json:"line_number"` // 1-based
	Line       string `json:"line"`        // no trailing newline
}

// TextContent is the line-structured body of a text file.
type TextContent struct {
	LineContents []LineContent `json:"line_contents"`
}

// Metadata describes the viewed file. Only the fields relevant to the
// content variant are populated.
type Metadata struct {
	LineCount int    `json:"line_count,omitempty"`
	CharCount int    `json:"char_count,omitempty"`
	Binary    bool   `json:"binary,omitempty"`
	SizeBytes int64  `json:"size_bytes,omitempty"`
	MimeType  string `json:"mime_type,omitempty"`
	MediaType string `json:"media_type,omitempty"`
}

// Contents is the type-tagged body of a FileView: exactly one of
// Content (text) or Message (binary, image) is populated.
type Contents struct {
	Type     string       `json:"type"` // "text", "binary" or "image"
	Content  *TextContent `json:"content,omitempty"`
	Message  string       `json:"message,omitempty"`
	Metadata Metadata     `json:"metadata"`
}

// FileView is the result of viewing one file.
type FileView struct {
	FilePath     string   `json:"file_path"`
	FileType     string   `json:"file_type"` // MIME type or descriptor
	Contents     Contents `json:"contents"`
	TotalLineNum int      `json:"total_line_num,omitempty"` // text files only
}

// extension hints consulted before content sniffing
var extensionMime = map[string]string{
	"txt":  "text/plain",
	"md":   "text/plain",
	"go":   "text/plain",
	"rs":   "text/plain",
	"toml": "text/plain",
	"yml":  "text/plain",
	"yaml": "text/plain",
	"json": "text/plain",
	"py":   "text/x-python",
	"js":   "text/javascript",
	"html": "text/html",
	"css":  "text/css",
}

// Run reads path and returns its classified representation. The
// sniffer decides between text, image and binary when the extension
// gives no hint; pass nil to use the default heuristic sniffer.
func Run(path string, opts Options, sniffer sniff.TypeSniffer) (*FileView, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, gerrors.NewNotFoundError(path)
		}
		return nil, gerrors.NewFileError("stat", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, gerrors.NewFileError("view", path, os.ErrInvalid)
	}

	usingLineFilters := opts.LineFrom > 0 || opts.LineTo > 0

	// With line filters only a subset of the file is returned, so the
	// whole-file size check is deferred to the filtered content.
	if opts.MaxSize > 0 && !usingLineFilters && info.Size() > opts.MaxSize {
		return nil, gerrors.NewSizeLimitError(path, info.Size(), opts.MaxSize)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, gerrors.NewFileError("read", path, err)
	}

	if sniffer == nil {
		sniffer = sniff.New()
	}
	fileType, kind := classify(path, content, sniffer)

	var contents Contents
	totalLineNum := 0

	switch {
	case kind == sniff.KindText && utf8.Valid(content):
		text, meta := buildText(content, opts)
		if usingLineFilters && opts.MaxSize > 0 {
			var filteredSize int64
			for _, lc := range text.LineContents {
				filteredSize += int64(len(lc.Line)) + 1
			}
			if filteredSize > opts.MaxSize {
				return nil, gerrors.NewSizeLimitError(path, filteredSize, opts.MaxSize)
			}
		}
		contents = Contents{Type: "text", Content: text, Metadata: meta}
		totalLineNum = meta.LineCount

	case kind == sniff.KindImage:
		if usingLineFilters && opts.MaxSize > 0 && info.Size() > opts.MaxSize {
			return nil, gerrors.NewSizeLimitError(path, info.Size(), opts.MaxSize)
		}
		contents = Contents{
			Type:    "image",
			Message: "Image file detected: " + fileType,
			Metadata: Metadata{
				Binary:    true,
				SizeBytes: info.Size(),
				MediaType: "image",
			},
		}

	default:
		if usingLineFilters && opts.MaxSize > 0 && info.Size() > opts.MaxSize {
			return nil, gerrors.NewSizeLimitError(path, info.Size(), opts.MaxSize)
		}
		contents = Contents{
			Type:    "binary",
			Message: "Binary file detected, type: " + fileType,
			Metadata: Metadata{
				Binary:    true,
				SizeBytes: info.Size(),
				MimeType:  fileType,
			},
		}
	}

	return &FileView{
		FilePath:     path,
		FileType:     fileType,
		Contents:     contents,
		TotalLineNum: totalLineNum,
	}, nil
}

// classify resolves the reported MIME string and coarse kind from the
// extension hint first, falling back to content sniffing.
func classify(path string, content []byte, sniffer sniff.TypeSniffer) (string, sniff.Kind) {
	prefix := content
	if len(prefix) > 512 {
		prefix = prefix[:512]
	}
	kind := sniffer.Classify(prefix)

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if mime, ok := extensionMime[ext]; ok && kind == sniff.KindText {
		return mime, sniff.KindText
	}

	switch kind {
	case sniff.KindText:
		return "text/plain", kind
	case sniff.KindImage:
		return "image/" + imageSubtype(ext), kind
	default:
		return "application/octet-stream", kind
	}
}

func imageSubtype(ext string) string {
	switch ext {
	case "jpg", "jpeg":
		return "jpeg"
	case "png", "gif", "bmp", "webp":
		return ext
	default:
		return "unknown"
	}
}

// buildText splits content into lines, applies line-range filtering
// with silent clamping, and computes whole-file metadata.
func buildText(content []byte, opts Options) (*TextContent, Metadata) {
	var allLines []string
	if len(content) > 0 {
		allLines = strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	}

	lineCount := len(allLines)
	charCount := utf8.RuneCountInString(string(content))

	from := opts.LineFrom
	if from < 1 {
		from = 1
	}
	to := opts.LineTo
	if to < 1 || to > lineCount {
		to = lineCount
	}

	lines := []LineContent{}
	if from <= lineCount && from <= to {
		for n := from; n <= to; n++ {
			lines = append(lines, LineContent{
				LineNumber: n,
				Line:       strings.TrimRight(allLines[n-1], "\r"),
			})
		}
	}

	return &TextContent{LineContents: lines},
		Metadata{LineCount: lineCount, CharCount: charCount}
}
