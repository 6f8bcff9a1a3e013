package inference

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	openai "github.com/sashabaranov/go-openai"

	"guard_server/core/domain"
)

const llmSystemPrompt = `You detect online gambling promotion in user comments
(slot sites, "gacor", deposit bonuses, max-win bait and similar spam, in any
language). Respond with strict JSON only, no prose:
{"is_gambling": bool, "confidence": "NN.N%", "raw_score": number in [0,1]}`

// LLMAdapter satisfies the classifier port with an OpenAI chat completion.
// Used when no model service URL is configured; it mimics the model
// service's response shape so callers cannot tell the two apart.
type LLMAdapter struct {
	client *openai.Client
	model  string
}

// NewLLMAdapter creates an OpenAI-backed classifier.
func NewLLMAdapter(apiKey, model string) *LLMAdapter {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &LLMAdapter{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Classify asks the model for a verdict on one text.
func (a *LLMAdapter) Classify(ctx context.Context, text string) (*domain.Classification, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: llmSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("llm classification failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("llm returned no choices")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var pr predictResponse
	if err := json.Unmarshal([]byte(content), &pr); err != nil {
		return nil, fmt.Errorf("failed to parse llm verdict: %w", err)
	}

	return &domain.Classification{
		Flagged:    pr.IsGambling,
		Confidence: pr.Confidence,
		Score:      pr.RawScore,
	}, nil
}
