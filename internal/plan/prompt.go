package plan

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a file organization assistant. Given a list of files with
content previews and a user request, propose shell commands that sort the files
into folders.

Rules:
- Respond with a single JSON object: {"explanation": "...", "commands": ["...", ...]}
- Only two command forms are allowed:
  mkdir -p "<dir>"
  cp "<src>" "<dst>"
- Every path argument must be individually double-quoted.
- All paths must be relative to the source directory. Never use absolute paths,
  "..", globs, or shell metacharacters.
- Create a directory before copying into it.
- No prose outside the JSON object.`

// BuildUserPrompt renders the file inventory and the user's request
// into the prompt body.
func BuildUserPrompt(query string, files []FileSummary) string {
	var b strings.Builder
	b.WriteString("Files in the source directory:\n\n")
	for _, file := range files {
		fmt.Fprintf(&b, "- %s\n", file.RelPath)
		if file.Preview != "" {
			fmt.Fprintf(&b, "  preview: %s\n", strings.ReplaceAll(file.Preview, "\n", " "))
		}
	}
	b.WriteString("\nRequest: ")
	b.WriteString(strings.TrimSpace(query))
	b.WriteString("\n")
	return b.String()
}
