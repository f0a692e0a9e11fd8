package extract

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// extractText reads the head of a plain-text file.
func extractText(path string, limits Limits) Result {
	f, err := os.Open(path)
	if err != nil {
		return Result{Err: fmt.Errorf("failed to open file: %w", err)}
	}
	defer f.Close()

	head, err := io.ReadAll(io.LimitReader(f, int64(limits.TextBytes)))
	if err != nil {
		return Result{Err: fmt.Errorf("failed to read file: %w", err)}
	}

	text := strings.ToValidUTF8(string(head), "")
	return textResult(text, limits)
}
