package services

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// Summarizer produces a simplified explanation of answer text. The OpenAI
// implementation below is the production one; tests substitute a stub.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

const eli5Prompt = "Rewrite the following answer so a complete beginner can understand it. Keep it short and avoid jargon."

type OpenAISummarizer struct {
	Client *openai.Client
	Model  string
}

func NewOpenAISummarizer(client *openai.Client, model string) *OpenAISummarizer {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAISummarizer{Client: client, Model: model}
}

func (os *OpenAISummarizer) Summarize(ctx context.Context, text string) (string, error) {
	resp, err := os.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: os.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: eli5Prompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
