package brief

import (
	"log/slog"

	"macrobrief/internal/model"
	"macrobrief/pkg/llm"
	"macrobrief/pkg/news"
)

type Pipeline struct {
	Client        news.TopicClient
	Extractor     llm.Extractor
	MaxTopics     int
	StaleFallback bool
}

// Run performs one sequential pass over the configured topics: fetch, bundle,
// rank, then compose in rank order. A failed topic fetch degrades that topic
// to empty buckets; it never aborts the run.
func (p *Pipeline) Run(topics []string) model.Result {
	maxTopics := p.MaxTopics
	if maxTopics <= 0 {
		maxTopics = DefaultMaxTopics
	}

	bundles := make([]model.TopicBundle, 0, len(topics))
	for _, topic := range topics {
		tn, err := p.Client.FetchTopic(topic)
		if err != nil {
			slog.Error("error fetching topic, degrading to appendix", "topic", topic, "error", err)
			tn = news.TopicNews{}
		}
		bundles = append(bundles, Bundle(topic, tn))
	}

	selected, overflow := Select(bundles, maxTopics)

	c := newComposer(p.Extractor, p.StaleFallback)
	for _, b := range selected {
		c.compose(b)
	}
	for _, b := range overflow {
		c.collectOverflow(b)
	}

	c.stats.TopicsProcessed = len(topics)

	return model.Result{
		Sections: c.sections,
		Appendix: c.appendix,
		Stats:    c.stats,
	}
}
