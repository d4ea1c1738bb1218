package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseSummary decodes a model response into a Summary. It does not apply the
// validity gate; callers decide what a parse failure means.
func parseSummary(content string) (Summary, error) {
	content = cleanJSONResponse(content)

	var parsed struct {
		What   string `json:"what"`
		SoWhat string `json:"so_what"`
		Who    string `json:"who"`
		Watch  string `json:"watch"`
	}

	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return Summary{}, fmt.Errorf("failed to parse response: %w, content: %s", err, content)
	}

	return Summary{
		What:   parsed.What,
		SoWhat: parsed.SoWhat,
		Who:    parsed.Who,
		Watch:  parsed.Watch,
	}, nil
}

func emptyFieldCount(s Summary) int {
	count := 0
	for _, f := range []string{s.What, s.SoWhat, s.Who, s.Watch} {
		if strings.TrimSpace(f) == "" {
			count++
		}
	}
	return count
}

// belowEvidenceThreshold reports whether a parsed summary is too hollow to
// publish: three or more of the four fields empty.
func belowEvidenceThreshold(s Summary) bool {
	return emptyFieldCount(s) >= 3
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
