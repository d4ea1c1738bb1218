package brief

import (
	"net/url"
	"regexp"

	"macrobrief/internal/model"
	"macrobrief/pkg/llm"
	"macrobrief/pkg/news"
)

const (
	maxStaleFallback   = 3
	maxOverflowRecent  = 2
	maxOverflowStale   = 2
	maxSectionEvidence = 2
)

// composer walks selected bundles in rank order and decides, per bundle,
// between a Deep section (two evidence articles), a Short section (one) and
// the appendix fallback. Every article lands in exactly one place.
type composer struct {
	extractor     llm.Extractor
	staleFallback bool

	sections []model.Section
	appendix []model.AppendixItem
	stats    model.Stats
}

func newComposer(extractor llm.Extractor, staleFallback bool) *composer {
	return &composer{
		extractor:     extractor,
		staleFallback: staleFallback,
	}
}

func (c *composer) compose(b model.TopicBundle) {
	switch {
	case len(b.Recent) >= maxSectionEvidence:
		top := b.Recent[:maxSectionEvidence]
		summary := c.extractor.Extract(b.Topic, toEvidence(top))
		if summary.IsInsufficient() {
			c.appendArticles(b.Topic, top)
			return
		}
		c.emit(b.Topic, model.SectionDeep, top, summary)

	case len(b.Recent) == 1:
		summary := c.extractor.Extract(b.Topic, toEvidence(b.Recent))
		if summary.IsInsufficient() {
			c.appendArticles(b.Topic, b.Recent)
			return
		}
		c.emit(b.Topic, model.SectionShort, b.Recent, summary)

	default:
		if c.staleFallback {
			c.appendStale(b.Topic, b.Stale, maxStaleFallback)
		}
	}
}

// collectOverflow gives a below-cutoff topic its link-only surface: up to two
// recent and, with stale fallback on, up to two stale articles. Overflow
// topics never reach the extractor.
func (c *composer) collectOverflow(b model.TopicBundle) {
	recent := b.Recent
	if len(recent) > maxOverflowRecent {
		recent = recent[:maxOverflowRecent]
	}
	c.appendArticles(b.Topic, recent)

	if c.staleFallback {
		c.appendStale(b.Topic, b.Stale, maxOverflowStale)
	}
}

func (c *composer) emit(topic, kind string, evidence []news.Article, summary llm.Summary) {
	titles := make([]string, len(evidence))
	for i, a := range evidence {
		titles[i] = a.Title
	}
	c.sections = append(c.sections, model.Section{
		Topic:   topic,
		Kind:    kind,
		Titles:  titles,
		Summary: summary,
	})
	c.stats.RecentUsed += len(evidence)
	c.stats.ModelUsed = true
}

func (c *composer) appendArticles(topic string, articles []news.Article) {
	for _, a := range articles {
		c.appendix = append(c.appendix, model.AppendixItem{
			Title: a.Title,
			URL:   a.URL,
			Date:  DeriveDate(a),
			Label: topic,
		})
	}
	c.stats.RecentUsed += len(articles)
}

func (c *composer) appendStale(topic string, stale []news.Article, limit int) {
	if len(stale) > limit {
		stale = stale[:limit]
	}
	for _, a := range stale {
		c.appendix = append(c.appendix, model.AppendixItem{
			Title: a.Title,
			URL:   a.URL,
			Date:  DeriveDate(a),
			Label: topic,
		})
	}
	c.stats.StaleUsed += len(stale)
}

func toEvidence(articles []news.Article) []llm.Evidence {
	evidence := make([]llm.Evidence, len(articles))
	for i, a := range articles {
		evidence[i] = llm.Evidence{
			Title:  a.Title,
			Text:   a.Text,
			Date:   DeriveDate(a),
			Source: a.Source,
		}
	}
	return evidence
}

var urlDatePattern = regexp.MustCompile(`/(\d{4})[-/](\d{2})[-/](\d{2})(?:/|$)`)

// DeriveDate returns the article's date as YYYY-MM-DD: the published
// timestamp when known, otherwise a date segment parsed from the URL path,
// otherwise "".
func DeriveDate(a news.Article) string {
	if !a.PublishedAt.IsZero() {
		return a.PublishedAt.UTC().Format("2006-01-02")
	}
	u, err := url.Parse(a.URL)
	if err != nil {
		return ""
	}
	if m := urlDatePattern.FindStringSubmatch(u.Path); m != nil {
		return m[1] + "-" + m[2] + "-" + m[3]
	}
	return ""
}
