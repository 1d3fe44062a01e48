package showcase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mhpenta/showcase/internal/config"
)

// Gateway is the single entry point UI surfaces use to reach the AI
// provider. It owns one lazily constructed Provider shared by every
// operation and every Session.
type Gateway struct {
	factory    ProviderFactory
	credential CredentialSource

	// Guarded one-time initialization; provider is never replaced once set.
	mu       sync.Mutex
	provider Provider

	logger *slog.Logger
}

// NewGateway creates a Gateway that will build its provider with factory
// on first use.
//
// Example:
//
//	gw := showcase.NewGateway(gemini.NewProvider)
//	sess, err := gw.OpenChat(ctx, showcase.ChatModelStandard)
//
// With options:
//
//	gw := showcase.NewGateway(gemini.NewProvider,
//	    showcase.WithLogger(slog.Default()),
//	    showcase.WithAPIKey(apiKey),
//	)
func NewGateway(factory ProviderFactory, opts ...GatewayOption) *Gateway {
	g := &Gateway{
		factory:    factory,
		credential: config.CredentialFromEnv,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// client returns the shared provider, constructing it on first demand.
// A missing credential fails before any network activity and is not cached.
func (g *Gateway) client(ctx context.Context) (Provider, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.provider != nil {
		return g.provider, nil
	}

	apiKey, err := g.credential()
	if err != nil {
		return nil, &ConfigError{Err: err}
	}
	if apiKey == "" {
		return nil, &ConfigError{Key: "API_KEY", Err: ErrMissingCredential}
	}

	if g.factory == nil {
		return nil, &ConfigError{Err: fmt.Errorf("no provider factory configured")}
	}

	p, err := g.factory(ctx, apiKey)
	if err != nil {
		return nil, &ConfigError{Err: fmt.Errorf("create client: %w", err)}
	}

	g.provider = p
	g.logger.Debug("ai client initialized")

	return p, nil
}

// OpenChat creates a new Session bound to model. No request is sent until
// the first message.
func (g *Gateway) OpenChat(ctx context.Context, model ChatModel) (*Session, error) {
	p, err := g.client(ctx)
	if err != nil {
		return nil, err
	}

	if !IsChatModel(model) {
		return nil, fmt.Errorf("%w: %s", ErrModelNotRegistered, model)
	}

	chat, err := p.NewChat(ctx, model)
	if err != nil {
		return nil, fmt.Errorf("open chat: %w", err)
	}

	sess := &Session{
		id:     uuid.New(),
		model:  model,
		chat:   chat,
		logger: g.logger,
	}

	g.logger.Debug("chat session opened",
		"session", sess.ID(),
		"model", string(model),
	)

	return sess, nil
}

// GenerateImage requests exactly one PNG image for prompt. The prompt and
// ratio are passed through unchecked; callers validate them beforehand.
func (g *Gateway) GenerateImage(ctx context.Context, prompt string, ratio AspectRatio) (ImageData, error) {
	p, err := g.client(ctx)
	if err != nil {
		return ImageData{}, err
	}

	start := time.Now()

	g.logger.Debug("starting image generation",
		"model", ImageModel,
		"aspect_ratio", string(ratio),
		"prompt_length", len(prompt),
	)

	resp, err := p.GenerateImages(ctx, &ImageRequest{
		Model:          ImageModel,
		Prompt:         prompt,
		NumberOfImages: 1,
		OutputMIMEType: ImageMIMEType,
		AspectRatio:    ratio,
	})
	duration := time.Since(start)

	if err == nil && (resp == nil || len(resp.Images) == 0 || resp.Images[0].IsZero()) {
		err = ErrNoImageGenerated
	}
	if err != nil {
		g.logger.Error("image generation failed",
			"model", ImageModel,
			"duration_ms", duration.Milliseconds(),
			"error", err.Error(),
		)

		return ImageData{}, &OpError{Op: OpImage, Err: err}
	}

	img := resp.Images[0]
	if img.MIMEType == "" {
		img.MIMEType = ImageMIMEType
	}

	g.logger.Info("image generation completed",
		"model", ImageModel,
		"duration_ms", duration.Milliseconds(),
		"bytes", len(img.Data),
	)

	return img, nil
}

// GenerateWithThinking answers prompt with the reasoning model and its fixed
// thinking budget. Only the final text is returned. Expect this call to take
// much longer than the others.
func (g *Gateway) GenerateWithThinking(ctx context.Context, prompt string) (string, error) {
	p, err := g.client(ctx)
	if err != nil {
		return "", err
	}

	start := time.Now()

	g.logger.Debug("starting thinking generation",
		"model", ThinkingModel,
		"thinking_budget", ThinkingBudget,
		"prompt_length", len(prompt),
	)

	text, err := p.GenerateText(ctx, &TextRequest{
		Model:          ThinkingModel,
		Prompt:         prompt,
		ThinkingBudget: ThinkingBudget,
	})
	duration := time.Since(start)

	if err != nil {
		g.logger.Error("thinking generation failed",
			"model", ThinkingModel,
			"duration_ms", duration.Milliseconds(),
			"error", err.Error(),
		)

		return "", &OpError{Op: OpThinking, Err: err}
	}

	g.logger.Info("thinking generation completed",
		"model", ThinkingModel,
		"duration_ms", duration.Milliseconds(),
		"response_length", len(text),
	)

	return text, nil
}

// Models returns the models served by the gateway's provider.
func (g *Gateway) Models(ctx context.Context) ([]ModelInfo, error) {
	p, err := g.client(ctx)
	if err != nil {
		return nil, err
	}
	return p.Models(), nil
}
