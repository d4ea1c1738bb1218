package report

import (
	"fmt"
	"strings"

	"macrobrief/internal/model"
	"macrobrief/pkg/market"
)

// Render turns a run's market snapshot, sections and appendix into the final
// markdown document. Sections appear in selection rank order.
func Render(date string, snapshot *market.Snapshot, result model.Result) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Macro Morning Brief - %s\n\n", date))

	renderMarket(&sb, snapshot)

	for _, s := range result.Sections {
		renderSection(&sb, s)
	}

	renderAppendix(&sb, result.Appendix)

	return sb.String()
}

func renderMarket(sb *strings.Builder, snapshot *market.Snapshot) {
	sb.WriteString("## Market Snapshot\n\n")
	sb.WriteString("| Index | Last | Change | Change % |\n")
	sb.WriteString("|---|---|---|---|\n")
	for _, q := range snapshot.Quotes {
		label := q.Label
		if label == "" {
			label = q.Symbol
		}
		sb.WriteString(fmt.Sprintf("| %s | %.2f | %+.2f | %+.2f%% |\n",
			label, q.Current, q.Change, q.PercentChange))
	}
	sb.WriteString("\n")
}

func renderSection(sb *strings.Builder, s model.Section) {
	sb.WriteString(fmt.Sprintf("## %s (%s)\n\n", s.Topic, s.Kind))
	sb.WriteString(fmt.Sprintf("**What:** %s\n\n", s.Summary.What))
	sb.WriteString(fmt.Sprintf("**So what:** %s\n\n", s.Summary.SoWhat))
	sb.WriteString(fmt.Sprintf("**Who:** %s\n\n", s.Summary.Who))
	sb.WriteString(fmt.Sprintf("**Watch:** %s\n\n", s.Summary.Watch))
	sb.WriteString(fmt.Sprintf("*Sources: %s*\n\n", strings.Join(s.Titles, "; ")))
}

func renderAppendix(sb *strings.Builder, items []model.AppendixItem) {
	if len(items) == 0 {
		return
	}
	sb.WriteString("## Briefs\n\n")
	for _, item := range items {
		line := fmt.Sprintf("- %s: [%s](%s)", item.Label, item.Title, item.URL)
		if item.Date != "" {
			line += fmt.Sprintf(" (%s)", item.Date)
		}
		sb.WriteString(line + "\n")
	}
	sb.WriteString("\n")
}
