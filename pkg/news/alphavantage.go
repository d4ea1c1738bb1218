package news

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const fetchLimit = 50

type AlphaVantageClient struct {
	apiKey        string
	httpClient    *http.Client
	recencyWindow time.Duration
}

func NewAlphaVantageClient(apiKey string, recencyWindow time.Duration) *AlphaVantageClient {
	return &AlphaVantageClient{
		apiKey:        apiKey,
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		recencyWindow: recencyWindow,
	}
}

func (c *AlphaVantageClient) Name() string {
	return "AlphaVantage"
}

func (c *AlphaVantageClient) FetchTopic(topic string) (TopicNews, error) {
	endpoint := fmt.Sprintf(
		"https://www.alphavantage.co/query?function=NEWS_SENTIMENT&topics=%s&sort=RELEVANCE&limit=%d&apikey=%s",
		url.QueryEscape(topic), fetchLimit, c.apiKey,
	)

	resp, err := c.httpClient.Get(endpoint)
	if err != nil {
		return TopicNews{}, fmt.Errorf("alphavantage fetch: %w", err)
	}
	defer resp.Body.Close()

	var raw avResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return TopicNews{}, fmt.Errorf("alphavantage decode: %w", err)
	}

	articles := make([]Article, 0, len(raw.Feed))
	for _, item := range raw.Feed {
		publishedAt, err := time.Parse("20060102T150405", item.TimePublished)
		if err != nil {
			publishedAt = time.Time{}
		}

		articles = append(articles, Article{
			Title:       item.Title,
			URL:         item.URL,
			Source:      item.Source,
			PublishedAt: publishedAt,
			Text:        item.Summary,
			Score:       topicRelevance(item.Topics, topic),
		})
	}

	cutoff := time.Now().UTC().Add(-c.recencyWindow)
	return splitByRecency(articles, cutoff), nil
}

// splitByRecency partitions articles at the cutoff. Articles with an unknown
// publication time count as stale: they cannot be shown to be fresh.
func splitByRecency(articles []Article, cutoff time.Time) TopicNews {
	var tn TopicNews
	for _, a := range articles {
		if !a.PublishedAt.IsZero() && !a.PublishedAt.Before(cutoff) {
			tn.Recent = append(tn.Recent, a)
		} else {
			tn.Stale = append(tn.Stale, a)
		}
	}
	return tn
}

func topicRelevance(topics []avTopicRelevance, topic string) float64 {
	for _, t := range topics {
		if strings.EqualFold(t.Topic, topic) {
			score, err := strconv.ParseFloat(t.RelevanceScore, 64)
			if err != nil {
				return 0
			}
			return score
		}
	}
	return 0
}

type avResponse struct {
	Feed []avFeedItem `json:"feed"`
}

type avFeedItem struct {
	Title         string             `json:"title"`
	Summary       string             `json:"summary"`
	URL           string             `json:"url"`
	Source        string             `json:"source"`
	TimePublished string             `json:"time_published"`
	Topics        []avTopicRelevance `json:"topics"`
}

type avTopicRelevance struct {
	Topic          string `json:"topic"`
	RelevanceScore string `json:"relevance_score"`
}
