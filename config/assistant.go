package config

import (
	"log"
	"os"

	"github.com/sashabaranov/go-openai"
)

type AssistantConfig struct {
	Client *openai.Client
	Model  string
}

// NewAssistantConfig builds the OpenAI client used for ELI5 answer
// explanations. A missing key is tolerated so the API can run without the
// assistant; the ELI5 endpoint then reports a dependency failure.
func NewAssistantConfig() *AssistantConfig {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Println("OPENAI_API_KEY not set, ELI5 explanations disabled")
		return &AssistantConfig{}
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = openai.GPT4oMini
	}

	return &AssistantConfig{
		Client: openai.NewClient(apiKey),
		Model:  model,
	}
}
