package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type OpenAIExtractor struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

func NewOpenAIExtractor(apiKey, model string) *OpenAIExtractor {
	if model == "" {
		model = "gpt-4o"
	}
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIExtractor{
		client:    &client,
		model:     openai.ChatModel(model),
		modelName: model,
	}
}

func (c *OpenAIExtractor) ModelName() string {
	return c.modelName
}

func (c *OpenAIExtractor) Extract(topic string, evidence []Evidence) Summary {
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

func (c *OpenAIExtractor) complete(topic string, evidence []Evidence) (string, error) {
	resp, err := c.client.Chat.Completions.New(context.Background(), openai.ChatCompletionNewParams{
		Model:       c.model,
		Temperature: openai.Float(0),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(extractionPrompt),
			openai.UserMessage(formatEvidence(topic, evidence)),
		},
	})

	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}

	return resp.Choices[0].Message.Content, nil
}
