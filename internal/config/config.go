package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type MarketIndex struct {
	Symbol string `yaml:"symbol"`
	Label  string `yaml:"label"`
}

type LLMConfig struct {
	Provider string `yaml:"provider"` // "openai" or "anthropic"
	Model    string `yaml:"model"`
}

type Config struct {
	Topics        []string      `yaml:"topics"`
	MaxTopics     int           `yaml:"max_topics,omitempty"`
	StaleFallback *bool         `yaml:"stale_fallback,omitempty"`
	RecencyDays   int           `yaml:"recency_days,omitempty"`
	Market        []MarketIndex `yaml:"market"`
	OutputDir     string        `yaml:"output_dir,omitempty"`
	LLM           *LLMConfig    `yaml:"llm,omitempty"`
}

// Load reads the run configuration. An unreadable file or an empty topic list
// is an acquisition failure: there is nothing to build a brief from.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.Topics) == 0 {
		return nil, fmt.Errorf("no topics configured in %s", path)
	}

	return &cfg, nil
}

// GetMaxTopics returns the section cutoff K, defaulting to 10.
func (c *Config) GetMaxTopics() int {
	if c.MaxTopics <= 0 {
		return 10
	}
	return c.MaxTopics
}

// StaleFallbackEnabled defaults to true: topics without fresh coverage still
// surface their stale links in the appendix.
func (c *Config) StaleFallbackEnabled() bool {
	if c.StaleFallback == nil {
		return true
	}
	return *c.StaleFallback
}

// RecencyWindow returns the recent/stale cutoff, defaulting to 2 days.
func (c *Config) RecencyWindow() time.Duration {
	days := c.RecencyDays
	if days <= 0 {
		days = 2
	}
	return time.Duration(days) * 24 * time.Hour
}

func (c *Config) GetOutputDir() string {
	if c.OutputDir == "" {
		return "reports"
	}
	return c.OutputDir
}

func (c *Config) Provider() string {
	if c.LLM == nil || c.LLM.Provider == "" {
		return "openai"
	}
	return c.LLM.Provider
}

func (c *Config) Model() string {
	if c.LLM == nil {
		return ""
	}
	return c.LLM.Model
}
