package llm

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// OpenRouterBaseURL is the OpenAI-compatible endpoint served by OpenRouter.
const OpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenAILLM implements the LLM interface for OpenAI and any
// OpenAI-compatible endpoint (OpenRouter, local proxies).
type OpenAILLM struct {
	client *openai.Client
}

// NewOpenAILLM creates a new OpenAI LLM client
func NewOpenAILLM(apiKey string) (*OpenAILLM, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &OpenAILLM{client: openai.NewClient(apiKey)}, nil
}

// NewOpenAILLMWithHost creates an OpenAI LLM client against a custom base URL
func NewOpenAILLMWithHost(apiKey, host string) (*OpenAILLM, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = host
	return &OpenAILLM{client: openai.NewClientWithConfig(config)}, nil
}

// NewOpenRouterLLM creates a client for OpenRouter's OpenAI-compatible API
func NewOpenRouterLLM(apiKey string) (*OpenAILLM, error) {
	return NewOpenAILLMWithHost(apiKey, OpenRouterBaseURL)
}

// convertToOpenAIMessages converts our generic Message type to OpenAI's message type
func convertToOpenAIMessages(messages []Message) []openai.ChatCompletionMessage {
	openAIMessages := make([]openai.ChatCompletionMessage, len(messages))
	for i, msg := range messages {
		openAIMessages[i] = openai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
	}
	return openAIMessages
}

// CreateChatCompletion implements the LLM interface for OpenAI
func (o *OpenAILLM) CreateChatCompletion(ctx context.Context, req ChatCompletionRequest) (ChatCompletionResponse, error) {
	openAIReq := openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    convertToOpenAIMessages(req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	resp, err := o.client.CreateChatCompletion(ctx, openAIReq)
	if err != nil {
		return ChatCompletionResponse{}, err
	}

	choices := make([]Choice, len(resp.Choices))
	for i, c := range resp.Choices {
		choices[i] = Choice{
			Index: c.Index,
			Message: Message{
				Role:    Role(c.Message.Role),
				Content: c.Message.Content,
			},
			FinishReason: string(c.FinishReason),
		}
	}

	return ChatCompletionResponse{
		ID:      resp.ID,
		Choices: choices,
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}
