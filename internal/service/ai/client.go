// Package ai wraps the generation backend behind a single synchronous
// Generate call. Provider selection happens once at startup; every backend
// or transport failure crosses the package boundary as a *GenerationError.
package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"

	"contractassist/internal/config"
)

// GenerationError reports a failed generation attempt, carrying the
// backend's message. Attempts are never retried here.
type GenerationError struct {
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	return "generation failed: " + e.Message
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Client sends rendered prompts to a chat model and returns the raw reply
// text.
type Client struct {
	chatModel model.BaseChatModel
	timeout   time.Duration
}

// NewClient builds a client for the configured provider.
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	var chatModel model.BaseChatModel
	var err error

	prov := cfg.Provider
	switch prov.Name {
	case "openai":
		chatModel, err = openai.NewChatModel(ctx, &openai.ChatModelConfig{
			BaseURL: prov.BaseURL,
			Model:   prov.Model,
			APIKey:  prov.APIKey,
		})
	case "gemini":
		var client *genai.Client
		client, err = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey: prov.APIKey,
		})
		if err != nil {
			return nil, fmt.Errorf("create gemini client: %w", err)
		}
		chatModel, err = gemini.NewChatModel(ctx, &gemini.Config{
			Client: client,
			Model:  prov.Model,
		})
	case "claude":
		var baseURLPtr *string
		if prov.BaseURL != "" {
			baseURLPtr = &prov.BaseURL
		}
		chatModel, err = claude.NewChatModel(ctx, &claude.Config{
			APIKey:    prov.APIKey,
			Model:     prov.Model,
			BaseURL:   baseURLPtr,
			MaxTokens: 8000,
		})
	default:
		return nil, fmt.Errorf("invalid provider: %s", prov.Name)
	}
	if err != nil {
		return nil, fmt.Errorf("init %s chat model: %w", prov.Name, err)
	}
	return &Client{chatModel: chatModel, timeout: prov.Timeout}, nil
}

// NewClientWithModel wires an already-constructed chat model; used by tests.
func NewClientWithModel(m model.BaseChatModel, timeout time.Duration) *Client {
	return &Client{chatModel: m, timeout: timeout}
}

// Generate sends one prompt and returns the trimmed reply. A single attempt
// per call; the configured timeout bounds the backend round trip.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	resp, err := c.chatModel.Generate(ctx, []*schema.Message{
		{Role: schema.User, Content: prompt},
	})
	if err != nil {
		return "", &GenerationError{Message: err.Error(), Err: err}
	}
	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return "", &GenerationError{Message: "empty reply from model"}
	}
	return strings.TrimSpace(resp.Content), nil
}
