package news

import "time"

type Article struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
	Text        string    `json:"text"`
	Score       float64   `json:"score"`
}

// TopicNews holds the per-topic retrieval result. The recent/stale split is
// owned by the source: articles published inside the recency window land in
// Recent, everything older in Stale.
type TopicNews struct {
	Recent []Article `json:"recent"`
	Stale  []Article `json:"stale"`
}

type TopicClient interface {
	FetchTopic(topic string) (TopicNews, error)
	Name() string
}
