package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type AnthropicExtractor struct {
	client    *anthropic.Client
	model     anthropic.Model
	modelName string
}

func NewAnthropicExtractor(apiKey, model string) *AnthropicExtractor {
	if model == "" {
		model = string(anthropic.ModelClaudeHaiku4_5)
	}
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicExtractor{
		client:    &client,
		model:     anthropic.Model(model),
		modelName: model,
	}
}

func (c *AnthropicExtractor) ModelName() string {
	return c.modelName
}

func (c *AnthropicExtractor) Extract(topic string, evidence []Evidence) Summary {
	content, err := c.complete(topic, evidence)
	if err != nil {
		slog.Warn("extraction call failed, using fallback", "topic", topic, "error", err)
		return InsufficientSummary()
	}

	summary, err := parseSummary(content)
	if err != nil {
		slog.Warn("extraction response unparseable, using fallback", "topic", topic, "error", err)
		return InsufficientSummary()
	}

	if belowEvidenceThreshold(summary) {
		slog.Warn("extraction returned too few facts, using fallback", "topic", topic)
		return InsufficientSummary()
	}

	return summary
}

func (c *AnthropicExtractor) complete(topic string, evidence []Evidence) (string, error) {
	resp, err := c.client.Messages.New(context.Background(), anthropic.MessageNewParams{
		Model:       c.model,
		MaxTokens:   1024,
		Temperature: anthropic.Float(0),
		System: []anthropic.TextBlockParam{
			{Text: extractionPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(formatEvidence(topic, evidence))),
		},
	})

	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 {
		return "", fmt.Errorf("no response from anthropic")
	}

	return resp.Content[0].Text, nil
}
