// Package extract produces short text previews from files of known
// types. Every extraction failure is carried in the Result so one
// corrupt file never aborts a directory walk.
package extract

import (
	"strings"
	"unicode/utf8"
)

// Kind is the closed set of content types the extractor understands.
// Dispatch is an exhaustive switch so adding a type is a compile-time
// checked change.
type Kind int

const (
	KindUnknown Kind = iota
	KindPDF
	KindDOCX
	KindText
	KindImage
	KindCode
)

func (k Kind) String() string {
	switch k {
	case KindPDF:
		return "pdf"
	case KindDOCX:
		return "docx"
	case KindText:
		return "text"
	case KindImage:
		return "image"
	case KindCode:
		return "code"
	default:
		return "unknown"
	}
}

// KindForExt maps a lowercased extension (with dot) to a Kind.
func KindForExt(ext string) Kind {
	switch strings.ToLower(ext) {
	case ".pdf":
		return KindPDF
	case ".docx":
		return KindDOCX
	case ".txt", ".md", ".log", ".csv", ".json", ".xml", ".yaml", ".yml":
		return KindText
	case ".png", ".jpg", ".jpeg":
		return KindImage
	case ".go", ".py":
		return KindCode
	default:
		return KindUnknown
	}
}

// RecognizedExtensions returns the extensions the planning pipeline
// feeds to the model. The index pipeline does not filter.
func RecognizedExtensions() []string {
	return []string{
		".pdf", ".docx",
		".txt", ".md", ".log", ".csv", ".json", ".xml", ".yaml", ".yml",
		".png", ".jpg", ".jpeg",
		".go", ".py",
	}
}

// Limits bounds how much content each adapter reads. The exact values
// bound prompt and index size; they are not correctness-relevant.
type Limits struct {
	PDFPages   int // pages of text to extract
	DocxParas  int // paragraphs of text to extract
	TextBytes  int // bytes to read from plain-text files
	PreviewLen int // preview truncation length
}

// IndexLimits are the tight limits used when building the content index.
func IndexLimits() Limits {
	return Limits{PDFPages: 1, DocxParas: 1, TextBytes: 500, PreviewLen: 100}
}

// PlanLimits are the wider limits used when building model prompts.
func PlanLimits() Limits {
	return Limits{PDFPages: 3, DocxParas: 30, TextBytes: 10000, PreviewLen: 200}
}

// Result carries either extracted text or a per-file error, never both
// meaningfully. A non-nil Err marks the file in the index instead of
// failing the batch.
type Result struct {
	FirstText string
	Preview   string
	Err       error
}

// Extractor dispatches files to per-kind adapters under one Limits
// preset.
type Extractor struct {
	limits Limits
}

// New returns an Extractor using the given limits.
func New(limits Limits) *Extractor {
	return &Extractor{limits: limits}
}

// Extract reads a preview from the file at path based on its extension.
// Unknown kinds yield an empty Result so such files still get indexed
// by name and size.
func (e *Extractor) Extract(path string, ext string) Result {
	switch KindForExt(ext) {
	case KindPDF:
		return extractPDF(path, e.limits)
	case KindDOCX:
		return extractDOCX(path, e.limits)
	case KindText:
		return extractText(path, e.limits)
	case KindImage:
		return extractImage(path)
	case KindCode:
		return extractCode(path, ext, e.limits)
	case KindUnknown:
		return Result{}
	default:
		return Result{}
	}
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	cut := s[:n]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}

// textResult builds a Result from extracted text, applying the preview
// truncation.
func textResult(text string, limits Limits) Result {
	text = strings.TrimSpace(text)
	return Result{
		FirstText: truncate(text, limits.TextBytes),
		Preview:   truncate(text, limits.PreviewLen),
	}
}
