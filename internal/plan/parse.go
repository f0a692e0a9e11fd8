package plan

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseResponse turns raw model output into a Plan. Models wrap JSON in
// code fences and pad it with commentary, so the payload is isolated
// before unmarshalling: fences stripped, then everything from the first
// '{' to the last '}'.
func ParseResponse(raw string) (Plan, error) {
	payload := isolateJSON(stripFences(raw))
	if payload == "" {
		return Plan{}, fmt.Errorf("no JSON object in model response")
	}

	var p Plan
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return Plan{}, fmt.Errorf("failed to parse model response: %w", err)
	}
	return p, nil
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	for _, prefix := range []string{"```json", "```JSON", "```"} {
		s = strings.TrimPrefix(s, prefix)
	}
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func isolateJSON(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return s[start : end+1]
}
