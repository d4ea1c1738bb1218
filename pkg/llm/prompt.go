package llm

import (
	"fmt"
	"strings"
)

const extractionPrompt = `You are a macroeconomic fact extractor. You will receive one or two news articles about a single topic, each with a title, text, date and source.

Rules:
1. Use ONLY the supplied title, text, date and source fields
2. Never invent entities, numbers, dates or quotes that do not appear in the articles
3. For any quantitative fact the articles do not state, write the literal string "not stated"
4. Attribute claims to the source when the articles disagree
5. Keep each field to one or two sentences

Output as JSON only, no other text, with exactly these four keys:
{
  "what": "what happened, facts only",
  "so_what": "why it matters for macro markets, grounded in the articles",
  "who": "people and institutions named in the articles",
  "watch": "what the articles say to watch next, or \"not stated\""
}`

const maxTextChars = 2000

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func formatEvidence(topic string, evidence []Evidence) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Topic: %s\n\n", topic))
	for i, e := range evidence {
		sb.WriteString(fmt.Sprintf("[%d] Title: %s\n", i+1, e.Title))
		sb.WriteString(fmt.Sprintf("    Date: %s\n", e.Date))
		sb.WriteString(fmt.Sprintf("    Source: %s\n", e.Source))
		sb.WriteString(fmt.Sprintf("    Text: %s\n", truncate(e.Text, maxTextChars)))
		sb.WriteString("\n")
	}
	return sb.String()
}
