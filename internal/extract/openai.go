// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIBackend calls the OpenAI chat completions API with a JSON-object
// response format. One request per document; no retry, so a rate-limited
// provider is never hammered.
type OpenAIBackend struct {
	client *openai.Client
	model  string
}

// NewOpenAIBackend creates the live model backend.
func NewOpenAIBackend(apiKey, model string) *OpenAIBackend {
	return &OpenAIBackend{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Complete implements ModelBackend. A transport failure, non-success
// response, or empty message body is a hard failure.
func (b *OpenAIBackend) Complete(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.2,
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("chat completion returned empty content")
	}

	return []byte(resp.Choices[0].Message.Content), nil
}
