// Package plan asks a language model to propose restricted shell
// commands that sort files into folders, and parses its response.
package plan

import (
	"github.com/IslamTayeb/LLM-file-organizer/internal/extract"
	"github.com/IslamTayeb/LLM-file-organizer/internal/walker"
)

// Plan is what the model proposes: a human-readable explanation plus an
// ordered list of commands for the executor. It is transient and
// consumed immediately.
type Plan struct {
	Explanation string   `json:"explanation"`
	Commands    []string `json:"commands"`
}

// FileSummary is one prompt line: a relative path and its content
// preview.
type FileSummary struct {
	RelPath string
	Preview string
}

// Summarize extracts a preview for each walked file using the wider
// plan limits. Files that fail extraction still appear in the prompt,
// identified by path alone, so the model can place them by name.
func Summarize(records []walker.FileRecord) []FileSummary {
	extractor := extract.New(extract.PlanLimits())

	summaries := make([]FileSummary, 0, len(records))
	for _, record := range records {
		summary := FileSummary{RelPath: record.RelPath}
		result := extractor.Extract(record.Path, record.Ext)
		if result.Err == nil {
			summary.Preview = result.Preview
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
