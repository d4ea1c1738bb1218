package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"macrobrief/db"
	"macrobrief/internal/brief"
	"macrobrief/internal/config"
	"macrobrief/internal/report"
	"macrobrief/pkg/llm"
	"macrobrief/pkg/market"
	"macrobrief/pkg/news"

	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	finnhubKey := os.Getenv("FINNHUB_API_KEY")
	if finnhubKey == "" {
		log.Fatalf("FINNHUB_API_KEY is not set")
	}

	avKey := os.Getenv("ALPHA_VANTAGE_API_KEY")
	if avKey == "" {
		log.Fatalf("ALPHA_VANTAGE_API_KEY is not set")
	}

	indexes := make([]market.Index, len(cfg.Market))
	for i, m := range cfg.Market {
		indexes[i] = market.Index{Symbol: m.Symbol, Label: m.Label}
	}

	// Market snapshot failure is fatal: the run aborts before any
	// extraction call is made and before any file is written.
	snapshot, err := market.NewFinnhubClient(finnhubKey).Snapshot(indexes)
	if err != nil {
		log.Fatalf("error fetching market snapshot: %v", err)
	}

	var topicClient news.TopicClient = news.NewAlphaVantageClient(avKey, cfg.RecencyWindow())

	if os.Getenv("REDIS_URL") != "" {
		if err := db.ConnectRedis(); err != nil {
			slog.Warn("redis unavailable, fetch cache disabled", "error", err)
		} else {
			defer db.CloseRedis()
			topicClient = news.NewCachedTopicClient(topicClient, db.NewFetchCache())
		}
	}

	extractor := newExtractor(cfg)

	pipeline := &brief.Pipeline{
		Client:        topicClient,
		Extractor:     extractor,
		MaxTopics:     cfg.GetMaxTopics(),
		StaleFallback: cfg.StaleFallbackEnabled(),
	}

	result := pipeline.Run(cfg.Topics)

	date := time.Now().UTC().Format("2006-01-02")
	content := report.Render(date, snapshot, result)

	path, err := report.Write(cfg.GetOutputDir(), date, content)
	if err != nil {
		log.Fatalf("error writing report: %v", err)
	}

	slog.Info("brief complete",
		"path", path,
		"topics_processed", result.Stats.TopicsProcessed,
		"sections", len(result.Sections),
		"appendix_items", len(result.Appendix),
		"recent_used", result.Stats.RecentUsed,
		"stale_used", result.Stats.StaleUsed,
		"model", extractor.ModelName(),
		"model_used", result.Stats.ModelUsed,
	)
}

func newExtractor(cfg *config.Config) llm.Extractor {
	switch cfg.Provider() {
	case "anthropic":
		return llm.NewAnthropicExtractor(os.Getenv("ANTHROPIC_API_KEY"), cfg.Model())
	default:
		return llm.NewOpenAIExtractor(os.Getenv("OPENAI_API_KEY"), cfg.Model())
	}
}
