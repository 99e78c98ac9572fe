package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiLLM implements the LLM interface for Google's Gemini
type GeminiLLM struct {
	client *genai.Client
}

// NewGeminiLLM creates a new Gemini LLM client
func NewGeminiLLM(ctx context.Context, apiKey string) (*GeminiLLM, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiLLM{client: client}, nil
}

// Close releases the underlying client connection
func (g *GeminiLLM) Close() error {
	return g.client.Close()
}

// convertToGeminiParts flattens the chat history into role-tagged text parts.
// Gemini has no system role, so every message carries its role inline.
func convertToGeminiParts(messages []Message) []genai.Part {
	var parts []genai.Part

	for _, msg := range messages {
		content := strings.TrimSpace(msg.Content)
		if content == "" {
			continue
		}

		switch msg.Role {
		case RoleSystem:
			parts = append(parts, genai.Text(fmt.Sprintf("[System]\n%s", content)))
		case RoleAssistant:
			parts = append(parts, genai.Text(fmt.Sprintf("[Assistant]\n%s", content)))
		default:
			parts = append(parts, genai.Text(fmt.Sprintf("[User]\n%s", content)))
		}
	}

	return parts
}

// CreateChatCompletion implements the LLM interface for Gemini
func (g *GeminiLLM) CreateChatCompletion(ctx context.Context, req ChatCompletionRequest) (ChatCompletionResponse, error) {
	model := g.client.GenerativeModel(req.Model)

	if req.Temperature > 0 {
		model.SetTemperature(req.Temperature)
	}
	if req.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(req.MaxTokens))
	}

	resp, err := model.GenerateContent(ctx, convertToGeminiParts(req.Messages)...)
	if err != nil {
		return ChatCompletionResponse{}, fmt.Errorf("failed to generate content: %w", err)
	}

	choices := make([]Choice, 0, len(resp.Candidates))
	for i, c := range resp.Candidates {
		var textParts []string
		if c.Content != nil {
			for _, part := range c.Content.Parts {
				if text, ok := part.(genai.Text); ok {
					cleaned := strings.TrimPrefix(string(text), "[Assistant]\n")
					cleaned = strings.TrimSpace(cleaned)
					if cleaned != "" {
						textParts = append(textParts, cleaned)
					}
				}
			}
		}

		choices = append(choices, Choice{
			Index: i,
			Message: Message{
				Role:    RoleAssistant,
				Content: strings.Join(textParts, "\n"),
			},
			FinishReason: fmt.Sprintf("%v", c.FinishReason),
		})
	}

	usage := Usage{}
	if resp.UsageMetadata != nil {
		usage = Usage{
			PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
		}
	}

	return ChatCompletionResponse{Choices: choices, Usage: usage}, nil
}
