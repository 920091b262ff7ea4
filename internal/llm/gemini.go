package llm

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultGeminiModel is used when no model name is configured
const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiExecutor implements Executor over the Google Gemini API
type GeminiExecutor struct {
	client *genai.Client
	model  string
}

// NewGeminiExecutor creates a Gemini-backed executor. An empty model name
// selects DefaultGeminiModel.
func NewGeminiExecutor(ctx context.Context, apiKey, model string) (*GeminiExecutor, error) {
	if apiKey == "" {
		return nil, &ProviderError{Provider: "gemini", Message: "API key is required"}
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, &ProviderError{
			Provider: "gemini",
			Message:  "failed to create client",
			Cause:    err,
		}
	}

	return &GeminiExecutor{client: client, model: model}, nil
}

// Execute submits the prompt and returns the raw response text with any
// markdown code fences stripped
func (e *GeminiExecutor) Execute(ctx context.Context, prompt string, opts Options) (string, error) {
	model := e.client.GenerativeModel(e.model)
	model.SetTemperature(opts.Temperature)
	if opts.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(opts.MaxTokens))
	}
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &ProviderError{
			Provider: "gemini",
			Message:  "failed to generate content",
			Cause:    err,
		}
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return "", err
	}
	return CleanJSONBlock(text), nil
}

// Close releases resources held by the underlying client
func (e *GeminiExecutor) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}

// extractTextFromResponse joins the text parts of a Gemini response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", &ProviderError{Provider: "gemini", Message: "no candidates in response"}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &ProviderError{Provider: "gemini", Message: "no content in response"}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", &ProviderError{Provider: "gemini", Message: "no text parts in response"}
	}

	return strings.Join(parts, ""), nil
}
