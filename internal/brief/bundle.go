package brief

import (
	"sort"

	"macrobrief/internal/model"
	"macrobrief/pkg/news"
)

// DefaultMaxTopics is the number of top-ranked topics promoted to narrative
// sections when no limit is configured.
const DefaultMaxTopics = 10

// Bundle sorts a topic's recent articles descending by score (stable, so the
// fetch order breaks ties) and derives the topic score from the best one.
// A topic with no recent articles scores 0.
func Bundle(topic string, tn news.TopicNews) model.TopicBundle {
	recent := make([]news.Article, len(tn.Recent))
	copy(recent, tn.Recent)

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Score > recent[j].Score
	})

	b := model.TopicBundle{
		Topic:  topic,
		Recent: recent,
		Stale:  tn.Stale,
	}
	if len(recent) > 0 {
		b.TopicScore = recent[0].Score
	}
	return b
}

// Select ranks bundles descending by topic score (stable, so configuration
// order breaks ties) and splits them at k. The two halves always partition
// the input exactly.
func Select(bundles []model.TopicBundle, k int) (selected, overflow []model.TopicBundle) {
	ranked := make([]model.TopicBundle, len(bundles))
	copy(ranked, bundles)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TopicScore > ranked[j].TopicScore
	})

	if k < 0 {
		k = 0
	}
	if k > len(ranked) {
		k = len(ranked)
	}
	return ranked[:k], ranked[k:]
}
