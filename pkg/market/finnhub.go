package market

import (
	"context"
	"fmt"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

// Index names a quotable symbol and the label it carries in the report.
type Index struct {
	Symbol string
	Label  string
}

type Quote struct {
	Symbol        string
	Label         string
	Current       float64
	Change        float64
	PercentChange float64
}

type Snapshot struct {
	Date   string
	Quotes []Quote
}

type SnapshotClient interface {
	Snapshot(indexes []Index) (*Snapshot, error)
}

type FinnhubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnhubClient(apiKey string) *FinnhubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnhubClient{client: client}
}

// Snapshot fetches a quote per configured index. Any failure is returned to
// the caller: a brief without a market section is not worth publishing.
func (c *FinnhubClient) Snapshot(indexes []Index) (*Snapshot, error) {
	quotes := make([]Quote, 0, len(indexes))

	for _, idx := range indexes {
		res, _, err := c.client.Quote(context.Background()).Symbol(idx.Symbol).Execute()
		if err != nil {
			return nil, fmt.Errorf("finnhub quote %s: %w", idx.Symbol, err)
		}

		q := Quote{Symbol: idx.Symbol, Label: idx.Label}

		if res.C != nil {
			q.Current = float64(*res.C)
		}
		if res.D != nil {
			q.Change = float64(*res.D)
		}
		if res.Dp != nil {
			q.PercentChange = float64(*res.Dp)
		}

		quotes = append(quotes, q)
	}

	return &Snapshot{
		Date:   time.Now().UTC().Format("2006-01-02"),
		Quotes: quotes,
	}, nil
}
