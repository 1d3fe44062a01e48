package surface

import (
	"context"
	"sync"

	"github.com/mhpenta/showcase"
)

// ThinkingMode is the extended-reasoning surface. Requests are single-shot
// and slow; there is no streaming.
type ThinkingMode struct {
	busyGuard
	status

	gw *showcase.Gateway

	mu       sync.Mutex
	response string
}

func NewThinkingMode(gw *showcase.Gateway) *ThinkingMode {
	return &ThinkingMode{gw: gw}
}

// Submit sends prompt to the reasoning model. A blank prompt only sets the
// status text.
func (t *ThinkingMode) Submit(ctx context.Context, prompt string) (string, error) {
	if err := showcase.ValidatePrompt(prompt); err != nil {
		t.set(EmptyThinkingQuery)
		return "", err
	}
	if !t.acquire() {
		return "", ErrBusy
	}
	defer t.release()

	t.Dismiss()
	t.mu.Lock()
	t.response = ""
	t.mu.Unlock()

	text, err := t.gw.GenerateWithThinking(ctx, prompt)
	if err != nil {
		t.set(showcase.UserMessage(err))
		return "", err
	}

	t.mu.Lock()
	t.response = text
	t.mu.Unlock()
	return text, nil
}

// Response returns the latest answer.
func (t *ThinkingMode) Response() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.response
}
