package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// CompletionRequest carries one chat-completion attempt against a single
// model. Streaming is never used.
type CompletionRequest struct {
	Model        string
	SystemPrompt string
	UserMessage  string
	Temperature  float64
	MaxTokens    int64
}

type Provider interface {
	Name() string
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// OpenAICompatProvider talks to any OpenAI-compatible chat-completions
// endpoint. Groq and OpenRouter both expose this API shape; OpenRouter
// additionally requires HTTP-Referer and X-Title headers, passed as extra
// headers here.
type OpenAICompatProvider struct {
	name   string
	client openai.Client
}

func NewOpenAICompatProvider(name, baseURL, apiKey string, extraHeaders map[string]string) *OpenAICompatProvider {
	// Retrying inside a candidate would multiply latency before the ladder
	// moves on, so failures surface immediately.
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	for key, value := range extraHeaders {
		opts = append(opts, option.WithHeader(key, value))
	}
	return &OpenAICompatProvider{
		name:   name,
		client: openai.NewClient(opts...),
	}
}

func (p *OpenAICompatProvider) Name() string {
	return p.name
}

func (p *OpenAICompatProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	response, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.SystemPrompt),
			openai.UserMessage(req.UserMessage),
		},
		Temperature: openai.Float(req.Temperature),
		MaxTokens:   openai.Int(req.MaxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion against %s failed: %w", p.name, err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no choices in %s response", p.name)
	}
	return response.Choices[0].Message.Content, nil
}
