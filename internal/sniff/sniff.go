// Package sniff classifies file content from a byte prefix. The
// traverse and view operations depend only on the TypeSniffer
// interface, so tests can substitute a fixed classifier.
package sniff

import "bytes"

// Kind is the coarse content classification used by traverse and view.
type Kind string

const (
	KindText   Kind = "text"
	KindImage  Kind = "image"
	KindBinary Kind = "binary"
)

// TypeSniffer classifies content from the first bytes of a file.
type TypeSniffer interface {
	Classify(prefix []byte) Kind
}

// HeuristicSniffer classifies content with magic-number checks followed
// by a printability heuristic over the sampled prefix.
type HeuristicSniffer struct{}

// New creates the default sniffer.
func New() *HeuristicSniffer {
	return &HeuristicSniffer{}
}

var imageMagic = [][]byte{
	{0x89, 0x50, 0x4E, 0x47},       // PNG
	{0xFF, 0xD8, 0xFF},             // JPEG
	{0x47, 0x49, 0x46, 0x38},       // GIF
	{0x42, 0x4D},                   // BMP
	{0x00, 0x00, 0x01, 0x00},       // ICO
	{0x52, 0x49, 0x46, 0x46},       // RIFF (WebP container)
}

var binaryMagic = [][]byte{
	{0x1F, 0x8B},                   // gzip
	{0x50, 0x4B, 0x03, 0x04},       // ZIP
	{0x50, 0x4B, 0x05, 0x06},       // empty ZIP
	{0x25, 0x50, 0x44, 0x46},       // PDF
	{0x7F, 0x45, 0x4C, 0x46},       // ELF
	{0x4D, 0x5A},                   // DOS/Windows executable
	{0xCA, 0xFE, 0xBA, 0xBE},       // Mach-O fat binary
	{0x77, 0x4F, 0x46, 0x46},       // WOFF
	{0x77, 0x4F, 0x46, 0x32},       // WOFF2
}

// Classify inspects at most the first 512 bytes of the prefix. Empty
// input classifies as text.
func (s *HeuristicSniffer) Classify(prefix []byte) Kind {
	if len(prefix) == 0 {
		return KindText
	}

	sample := prefix
	if len(sample) > 512 {
		sample = sample[:512]
	}

	for _, magic := range imageMagic {
		if bytes.HasPrefix(sample, magic) {
			return KindImage
		}
	}
	for _, magic := range binaryMagic {
		if bytes.HasPrefix(sample, magic) {
			return KindBinary
		}
	}

	nulBytes := 0
	nonPrintable := 0
	for _, b := range sample {
		if b == 0 {
			nulBytes++
		}
		// High bytes are not counted: they are likely UTF-8 sequences,
		// not binary garbage.
		if b < 0x20 && b != '\t' && b != '\n' && b != '\r' {
			nonPrintable++
		}
	}

	if nulBytes > 0 {
		return KindBinary
	}
	if nonPrintable > len(sample)*30/100 {
		return KindBinary
	}
	return KindText
}
