// Package advisor talks to an OpenAI-compatible chat completions API.
package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/iho/paisa/internal/domain"
)

// Config holds the advisor connection settings.
type Config struct {
	APIKey        string
	BaseURL       string
	InsightsModel string
	TipsModel     string
	HTTPClient    *http.Client
}

// Client implements usecase.Advisor.
type Client struct {
	api           *openai.Client
	insightsModel string
	tipsModel     string
	log           zerolog.Logger
}

// New creates a Client. An empty API key is rejected.
func New(cfg Config, log zerolog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, domain.ErrAdvisorUnavailable
	}

	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	if cfg.HTTPClient != nil {
		oc.HTTPClient = cfg.HTTPClient
	}

	return &Client{
		api:           openai.NewClientWithConfig(oc),
		insightsModel: cfg.InsightsModel,
		tipsModel:     cfg.TipsModel,
		log:           log,
	}, nil
}

// Insights returns the free-form completion for prompt.
func (c *Client) Insights(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.insightsModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", c.wrap("insights", err)
	}
	return firstContent(resp)
}

// Tips requests a schema-constrained tips list.
func (c *Client) Tips(ctx context.Context, prompt string) ([]domain.Tip, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.tipsModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "money_tips",
				Schema: &tipsSchema,
			},
		},
	})
	if err != nil {
		return nil, c.wrap("tips", err)
	}

	content, err := firstContent(resp)
	if err != nil {
		return nil, err
	}
	return ParseTips(content)
}

func (c *Client) wrap(kind string, err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		c.log.Debug().
			Str("kind", kind).
			Int("status", apiErr.HTTPStatusCode).
			Msg("advisor api error")
	}
	return fmt.Errorf("advisor %s: %w", kind, err)
}

func firstContent(resp openai.ChatCompletionResponse) (string, error) {
	if len(resp.Choices) == 0 {
		return "", domain.ErrEmptyAdvice
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", domain.ErrEmptyAdvice
	}
	return content, nil
}

var tipItemSchema = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"title":    {Type: jsonschema.String},
		"content":  {Type: jsonschema.String},
		"language": {Type: jsonschema.String, Enum: []string{"Urdu", "Roman Urdu", "English"}},
	},
	Required: []string{"title", "content", "language"},
}

var tipsSchema = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"tips": {Type: jsonschema.Array, Items: &tipItemSchema},
	},
	Required: []string{"tips"},
}

type tipPayload struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Language string `json:"language"`
}

// ParseTips decodes a tips response. Both a bare array and an object with
// a "tips" array are accepted, optionally inside a markdown code fence.
func ParseTips(content string) ([]domain.Tip, error) {
	content = stripFence(content)

	var items []tipPayload
	if err := json.Unmarshal([]byte(content), &items); err != nil {
		var wrapped struct {
			Tips []tipPayload `json:"tips"`
		}
		if err2 := json.Unmarshal([]byte(content), &wrapped); err2 != nil {
			return nil, fmt.Errorf("decode tips: %w", err)
		}
		items = wrapped.Tips
	}

	tips := make([]domain.Tip, 0, len(items))
	for _, it := range items {
		tips = append(tips, domain.Tip{
			Title:    it.Title,
			Content:  it.Content,
			Language: domain.TipLanguage(it.Language),
		})
	}
	if len(tips) == 0 {
		return nil, domain.ErrEmptyAdvice
	}
	return tips, nil
}

func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))
}
