// Package gemini provides a showcase.Provider implementation using Google's
// Gemini API.
//
// This provider uses the Gemini API backend via the official Go SDK:
// https://github.com/googleapis/go-genai
package gemini

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"

	"google.golang.org/genai"

	"github.com/mhpenta/showcase"
)

// Config configures the Gemini provider.
type Config struct {
	// APIKey for authentication
	APIKey string

	// BaseURL for custom endpoints (optional)
	BaseURL string
}

// GeminiProvider implements showcase.Provider using Google's Gemini API.
// The underlying client is never mutated after construction and is safe to
// share between sessions.
type GeminiProvider struct {
	client *genai.Client
}

// Ensure GeminiProvider implements the interfaces.
var (
	_ showcase.Provider        = (*GeminiProvider)(nil)
	_ showcase.ProviderFactory = NewProvider
)

// New creates a new GeminiProvider from a Config.
func New(ctx context.Context, config *Config) (*GeminiProvider, error) {
	if config == nil || config.APIKey == "" {
		return nil, showcase.ErrMissingCredential
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: config.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
	}, nil
}

// NewProvider is a showcase.ProviderFactory for the Gemini API.
func NewProvider(ctx context.Context, apiKey string) (showcase.Provider, error) {
	return New(ctx, &Config{APIKey: apiKey})
}

// NewChat creates a vendor chat bound to model. The SDK builds the chat
// locally; nothing is sent until the first message.
func (p *GeminiProvider) NewChat(ctx context.Context, model showcase.ChatModel) (showcase.ChatHandle, error) {
	chat, err := p.client.Chats.Create(ctx, model.String(), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create chat: %w", err)
	}
	return &geminiChat{chat: chat, model: model.String()}, nil
}

// GenerateImages calls the image model with the requested count, encoding
// and aspect ratio.
func (p *GeminiProvider) GenerateImages(ctx context.Context, req *showcase.ImageRequest) (*showcase.ImageResponse, error) {
	resp, err := p.client.Models.GenerateImages(ctx, req.Model, req.Prompt, buildImagesConfig(req))
	if err != nil {
		return nil, describeAPIError("image generation", req.Model, err)
	}
	return parseImages(resp), nil
}

// GenerateText runs a single completion, applying the thinking budget when
// one is set. Thought parts are dropped from the result.
func (p *GeminiProvider) GenerateText(ctx context.Context, req *showcase.TextRequest) (string, error) {
	resp, err := p.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), buildTextConfig(req))
	if err != nil {
		return "", describeAPIError("generation", req.Model, err)
	}
	return responseText(resp), nil
}

// Models returns the model definitions served by this provider.
func (p *GeminiProvider) Models() []showcase.ModelInfo {
	return []showcase.ModelInfo{
		FlashInfo,
		FlashLiteInfo,
		ImagenInfo,
		ProInfo,
	}
}

// buildImagesConfig converts our request to Gemini's GenerateImagesConfig.
func buildImagesConfig(req *showcase.ImageRequest) *genai.GenerateImagesConfig {
	cfg := &genai.GenerateImagesConfig{
		NumberOfImages: int32(req.NumberOfImages),
		OutputMIMEType: req.OutputMIMEType,
	}
	if req.AspectRatio != "" {
		cfg.AspectRatio = req.AspectRatio.String()
	}
	return cfg
}

// buildTextConfig converts our request to Gemini's GenerateContentConfig.
func buildTextConfig(req *showcase.TextRequest) *genai.GenerateContentConfig {
	if req.ThinkingBudget <= 0 {
		return nil
	}
	return &genai.GenerateContentConfig{
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr(req.ThinkingBudget),
		},
	}
}

// parseImages extracts inline image bytes from an image response.
func parseImages(resp *genai.GenerateImagesResponse) *showcase.ImageResponse {
	out := &showcase.ImageResponse{}
	if resp == nil {
		return out
	}

	for _, gen := range resp.GeneratedImages {
		if gen == nil || gen.Image == nil || len(gen.Image.ImageBytes) == 0 {
			continue
		}
		out.Images = append(out.Images, showcase.ImageData{
			Data:     gen.Image.ImageBytes,
			MIMEType: gen.Image.MIMEType,
		})
	}

	return out
}

// responseText joins the non-thought text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String()
}

// geminiChat adapts a genai.Chat, which keeps the conversation history, to
// showcase.ChatHandle.
type geminiChat struct {
	chat  *genai.Chat
	model string
}

func (c *geminiChat) Send(ctx context.Context, text string) (string, error) {
	resp, err := c.chat.SendMessage(ctx, genai.Part{Text: text})
	if err != nil {
		return "", describeAPIError("chat send", c.model, err)
	}
	return responseText(resp), nil
}

func (c *geminiChat) SendStream(ctx context.Context, text string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for resp, err := range c.chat.SendMessageStream(ctx, genai.Part{Text: text}) {
			if err != nil {
				yield("", describeAPIError("chat stream", c.model, err))
				return
			}
			if !yield(responseText(resp), nil) {
				return
			}
		}
	}
}

// describeAPIError adds the HTTP status of a Gemini API error to the message
// so it shows up in diagnostic logs. Other errors are wrapped unchanged.
func describeAPIError(op, model string, err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%s failed for %s (status %d %s): %w", op, model, apiErr.Code, apiErr.Status, err)
	}
	return fmt.Errorf("%s failed for %s: %w", op, model, err)
}
