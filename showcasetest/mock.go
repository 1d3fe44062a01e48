// Package showcasetest provides an in-memory showcase.Provider for tests.
package showcasetest

import (
	"context"
	"errors"
	"iter"
	"strconv"
	"sync"

	"github.com/mhpenta/showcase"
)

// ErrStream is the error MockChat yields when told to fail mid-stream.
var ErrStream = errors.New("connection reset by peer")

// MockProvider is a mock implementation of showcase.Provider. Unset funcs
// fall back to simple defaults: chats are MockChats and other calls return
// empty results.
type MockProvider struct {
	NewChatFunc        func(ctx context.Context, model showcase.ChatModel) (showcase.ChatHandle, error)
	GenerateImagesFunc func(ctx context.Context, req *showcase.ImageRequest) (*showcase.ImageResponse, error)
	GenerateTextFunc   func(ctx context.Context, req *showcase.TextRequest) (string, error)
	ModelsFunc         func() []showcase.ModelInfo

	mu    sync.Mutex
	Chats []*MockChat
}

var _ showcase.Provider = (*MockProvider)(nil)

func (m *MockProvider) NewChat(ctx context.Context, model showcase.ChatModel) (showcase.ChatHandle, error) {
	if m.NewChatFunc != nil {
		return m.NewChatFunc(ctx, model)
	}

	chat := NewMockChat(model)
	m.mu.Lock()
	m.Chats = append(m.Chats, chat)
	m.mu.Unlock()
	return chat, nil
}

func (m *MockProvider) GenerateImages(ctx context.Context, req *showcase.ImageRequest) (*showcase.ImageResponse, error) {
	if m.GenerateImagesFunc != nil {
		return m.GenerateImagesFunc(ctx, req)
	}
	return &showcase.ImageResponse{}, nil
}

func (m *MockProvider) GenerateText(ctx context.Context, req *showcase.TextRequest) (string, error) {
	if m.GenerateTextFunc != nil {
		return m.GenerateTextFunc(ctx, req)
	}
	return "", nil
}

func (m *MockProvider) Models() []showcase.ModelInfo {
	if m.ModelsFunc != nil {
		return m.ModelsFunc()
	}
	return []showcase.ModelInfo{}
}

// Factory returns a showcase.ProviderFactory that always hands out m and
// counts how often it was called.
func (m *MockProvider) Factory(calls *int) showcase.ProviderFactory {
	return func(ctx context.Context, apiKey string) (showcase.Provider, error) {
		if calls != nil {
			*calls++
		}
		return m, nil
	}
}

// MockChat is an in-memory conversation. Replies echo the message together
// with the model and turn number, e.g. "gemini-2.5-flash: hi (#1)", so
// sessions can be told apart.
type MockChat struct {
	Model showcase.ChatModel

	// Fragments, when set, is streamed instead of the echo reply.
	Fragments []string

	// FailAfter makes SendStream fail after that many fragments when >= 0.
	FailAfter int

	// SendErr, when set, is returned by Send.
	SendErr error

	mu      sync.Mutex
	history []string
}

// NewMockChat creates a MockChat that never fails.
func NewMockChat(model showcase.ChatModel) *MockChat {
	return &MockChat{Model: model, FailAfter: -1}
}

// History returns the messages sent so far.
func (c *MockChat) History() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.history...)
}

// Reply returns what the chat would answer to text at turn n (1-based).
func Reply(model showcase.ChatModel, text string, n int) string {
	return string(model) + ": " + text + " (#" + strconv.Itoa(n) + ")"
}

func (c *MockChat) record(text string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = append(c.history, text)
	return Reply(c.Model, text, len(c.history))
}

func (c *MockChat) Send(ctx context.Context, text string) (string, error) {
	if c.SendErr != nil {
		return "", c.SendErr
	}
	return c.record(text), nil
}

func (c *MockChat) SendStream(ctx context.Context, text string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		fragments := c.Fragments
		if fragments == nil {
			fragments = Split(c.record(text), 4)
		}

		for i, f := range fragments {
			if c.FailAfter >= 0 && i == c.FailAfter {
				yield("", ErrStream)
				return
			}
			if !yield(f, nil) {
				return
			}
		}
		if c.FailAfter >= len(fragments) {
			yield("", ErrStream)
		}
	}
}

// Split cuts s into chunks of at most n bytes.
func Split(s string, n int) []string {
	var out []string
	for len(s) > n {
		out = append(out, s[:n])
		s = s[n:]
	}
	if s != "" {
		out = append(out, s)
	}
	return out
}
