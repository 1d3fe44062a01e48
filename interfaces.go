package showcase

import (
	"context"
	"iter"
)

// Provider is the boundary to a hosted generative-AI backend.
// Implement this interface to plug in a different vendor SDK.
//
// Implementations are shared across all sessions and must be safe for
// concurrent use once constructed.
type Provider interface {
	// NewChat creates a stateful conversation bound to model.
	// It must not perform any network activity.
	NewChat(ctx context.Context, model ChatModel) (ChatHandle, error)

	// GenerateImages requests generated images for a prompt.
	GenerateImages(ctx context.Context, req *ImageRequest) (*ImageResponse, error)

	// GenerateText requests a single text completion.
	GenerateText(ctx context.Context, req *TextRequest) (string, error)

	// Models returns the model definitions this provider serves.
	Models() []ModelInfo
}

// ChatHandle is a vendor-side conversation. It accumulates turns itself;
// callers only forward messages through it.
type ChatHandle interface {
	// Send sends a message and waits for the full reply.
	Send(ctx context.Context, text string) (string, error)

	// SendStream sends a message and yields the reply as text fragments
	// in the order the provider produces them.
	SendStream(ctx context.Context, text string) iter.Seq2[string, error]
}

// ProviderFactory builds a Provider from a credential.
type ProviderFactory func(ctx context.Context, apiKey string) (Provider, error)

// CredentialSource returns the API credential, or "" when none is configured.
type CredentialSource func() (string, error)
