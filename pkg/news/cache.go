package news

import (
	"encoding/json"
	"log/slog"
	"time"
)

// FetchCache is a same-day cache for topic fetch results. AlphaVantage free
// keys are limited to a handful of requests per day, so re-runs of the brief
// should not burn quota on topics already fetched today.
type FetchCache interface {
	Get(key string) (string, bool)
	Set(key string, value string)
}

type CachedTopicClient struct {
	inner TopicClient
	cache FetchCache
}

func NewCachedTopicClient(inner TopicClient, cache FetchCache) *CachedTopicClient {
	return &CachedTopicClient{inner: inner, cache: cache}
}

func (c *CachedTopicClient) Name() string {
	return c.inner.Name()
}

func (c *CachedTopicClient) FetchTopic(topic string) (TopicNews, error) {
	key := time.Now().UTC().Format("2006-01-02") + ":" + topic

	if raw, ok := c.cache.Get(key); ok {
		var tn TopicNews
		if err := json.Unmarshal([]byte(raw), &tn); err == nil {
			return tn, nil
		}
		slog.Warn("discarding unreadable cache entry", "topic", topic)
	}

	tn, err := c.inner.FetchTopic(topic)
	if err != nil {
		return TopicNews{}, err
	}

	if raw, err := json.Marshal(tn); err == nil {
		c.cache.Set(key, string(raw))
	}

	return tn, nil
}
