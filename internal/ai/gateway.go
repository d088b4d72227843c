package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homelandmeals/backend/internal/config"

	openai "github.com/sashabaranov/go-openai"
)

// Error definitions for the gateway boundary. ErrAPIKeyMissing is a fatal
// configuration problem for the request that hit it; everything else is
// wrapped in ErrGenerationFailed for callers to absorb.
var (
	ErrAPIKeyMissing    = errors.New("llm api key not configured")
	ErrGenerationFailed = errors.New("llm generation failed")
)

// ChatClient sends one chat completion round-trip to the model provider.
// Images are base64-encoded JPEG payloads; attaching any switches the call
// to the vision-capable model.
type ChatClient interface {
	Send(ctx context.Context, systemPrompt, userText string, images ...string) (string, error)
}

// openAIGateway implements ChatClient over an OpenAI-compatible endpoint
// (Groq by default).
type openAIGateway struct {
	client      *openai.Client
	apiKey      string
	textModel   string
	visionModel string
	timeout     time.Duration
}

// NewGateway builds the provider client. A missing API key is not an error
// here: the failure is deferred to the first Send so the server can start
// without AI features configured.
func NewGateway(cfg config.LLMConfig) ChatClient {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &openAIGateway{
		client:      openai.NewClientWithConfig(clientConfig),
		apiKey:      cfg.APIKey,
		textModel:   cfg.TextModel,
		visionModel: cfg.VisionModel,
		timeout:     timeout,
	}
}

func (g *openAIGateway) Send(ctx context.Context, systemPrompt, userText string, images ...string) (string, error) {
	if g.apiKey == "" {
		return "", ErrAPIKeyMissing
	}

	model := g.textModel
	userMessage := openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userText,
	}

	if len(images) > 0 {
		model = g.visionModel
		parts := []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeText, Text: userText},
		}
		for _, img := range images {
			parts = append(parts, openai.ChatMessagePart{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL: "data:image/jpeg;base64," + img,
				},
			})
		}
		userMessage = openai.ChatCompletionMessage{
			Role:         openai.ChatMessageRoleUser,
			MultiContent: parts,
		}
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			userMessage,
		},
		MaxTokens:   2000,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrGenerationFailed)
	}

	return resp.Choices[0].Message.Content, nil
}
