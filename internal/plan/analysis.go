package plan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/IslamTayeb/LLM-file-organizer/internal/fileutil"
)

// WriteAnalysisLog records what the planning walk saw: one section per
// file with its preview. One log file per run, timestamped, written in
// the source directory. Returns the log path.
func WriteAnalysisLog(sourceDir string, query string, files []FileSummary) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "analysis run %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "source: %s\n", sourceDir)
	fmt.Fprintf(&b, "query: %s\n", strings.TrimSpace(query))
	fmt.Fprintf(&b, "files: %d\n", len(files))

	for _, file := range files {
		fmt.Fprintf(&b, "\n== %s ==\n", file.RelPath)
		if file.Preview == "" {
			b.WriteString("(no preview)\n")
			continue
		}
		b.WriteString(fileutil.EnsureTrailingNewline(file.Preview))
	}

	name := fmt.Sprintf("organizer-analysis-%s.log", time.Now().Format("2006-01-02-15-04-05"))
	path := filepath.Join(sourceDir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write analysis log: %w", err)
	}
	return path, nil
}
