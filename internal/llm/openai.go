package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// DefaultModel is the default model to use for suggestions.
const DefaultModel = "gpt-4o"

// OpenAIClient implements the Client interface against the OpenAI API or any
// OpenAI-compatible endpoint (a custom base URL selects the latter).
type OpenAIClient struct {
	client  openai.Client
	model   string
	baseURL string
}

// NewOpenAIClient creates a new OpenAI client. The API key is read from
// WAYFARER_API_KEY, falling back to OPENAI_API_KEY.
func NewOpenAIClient(model, baseURL string) (*OpenAIClient, error) {
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}

	apiKey := os.Getenv("WAYFARER_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, errors.New("no API key set (WAYFARER_API_KEY or OPENAI_API_KEY)")
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &OpenAIClient{
		client:  openai.NewClient(opts...),
		model:   model,
		baseURL: baseURL,
	}, nil
}

// Chat sends messages to the LLM and returns the response.
func (c *OpenAIClient) Chat(ctx context.Context, messages []Message) (string, error) {
	openaiMessages := make([]openai.ChatCompletionMessageParamUnion, len(messages))
	for i, msg := range messages {
		switch msg.Role {
		case "system":
			openaiMessages[i] = openai.SystemMessage(msg.Content)
		case "assistant":
			openaiMessages[i] = openai.AssistantMessage(msg.Content)
		default:
			openaiMessages[i] = openai.UserMessage(msg.Content)
		}
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    c.model,
		Messages: openaiMessages,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}

// ChatJSON sends messages and parses the response as JSON into the provided type.
func (c *OpenAIClient) ChatJSON(ctx context.Context, messages []Message, result any) error {
	content, err := c.Chat(ctx, messages)
	if err != nil {
		return err
	}

	jsonContent := extractJSON(content)
	if err := json.Unmarshal([]byte(jsonContent), result); err != nil {
		return fmt.Errorf("parsing JSON response: %w (content: %s)", err, content)
	}
	return nil
}

// extractJSON attempts to extract JSON from a string that may contain markdown formatting.
func extractJSON(s string) string {
	jsonStart := "```json"
	if idx := strings.Index(s, jsonStart); idx != -1 {
		start := idx + len(jsonStart)
		for start < len(s) && (s[start] == '\n' || s[start] == '\r') {
			start++
		}
		if end := strings.Index(s[start:], "```"); end != -1 {
			return strings.TrimRight(s[start:start+end], "\r\n")
		}
	}

	codeStart := "```"
	if idx := strings.Index(s, codeStart); idx != -1 {
		start := idx + len(codeStart)
		for start < len(s) && (s[start] == '\n' || s[start] == '\r') {
			start++
		}
		if end := strings.Index(s[start:], "```"); end != -1 {
			return strings.TrimRight(s[start:start+end], "\r\n")
		}
	}

	return strings.TrimSpace(s)
}
