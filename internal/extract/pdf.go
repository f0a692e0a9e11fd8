package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF pulls plain text from the first pages of a PDF. The pdf
// library panics on some malformed inputs, so the recover below is part
// of the per-file failure isolation contract.
func extractPDF(path string, limits Limits) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Result{Err: fmt.Errorf("pdf extraction panicked: %v", r)}
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return Result{Err: fmt.Errorf("failed to open pdf: %w", err)}
	}
	defer f.Close()

	var b strings.Builder
	total := reader.NumPage()
	for i := 1; i <= total && i <= limits.PDFPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return Result{Err: fmt.Errorf("failed to read pdf page %d: %w", i, err)}
		}
		b.WriteString(text)
	}

	return textResult(b.String(), limits)
}
