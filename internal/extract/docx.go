package extract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
)

// extractDOCX collects text from the first paragraphs of a Word
// document.
func extractDOCX(path string, limits Limits) Result {
	f, err := os.Open(path)
	if err != nil {
		return Result{Err: fmt.Errorf("failed to open docx: %w", err)}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Result{Err: fmt.Errorf("failed to stat docx: %w", err)}
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return Result{Err: fmt.Errorf("failed to parse docx: %w", err)}
	}

	var b strings.Builder
	paras := 0
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := strings.TrimSpace(para.String())
		if text == "" {
			continue
		}
		if paras > 0 {
			b.WriteString("\n")
		}
		b.WriteString(text)
		paras++
		if paras >= limits.DocxParas {
			break
		}
	}

	return textResult(b.String(), limits)
}
