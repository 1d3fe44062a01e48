// Package surface holds the display state of the four showcase surfaces.
// A surface turns user input into gateway calls, keeps what the user sees,
// and guards against overlapping requests. Rendering is left to the caller.
package surface

import (
	"errors"
	"sync"
)

var (
	// ErrBlankInput is returned when a send is suppressed because the input
	// is empty after trimming.
	ErrBlankInput = errors.New("blank input")

	// ErrBusy is returned when a request is started while another one on
	// the same surface is still pending.
	ErrBusy = errors.New("a request is already in progress")
)

// Display texts shown by the surfaces.
const (
	ChatGreeting       = "Hello! How can I help you today?"
	ChatFailureReply   = "Sorry, something went wrong. Please try again."
	EmptyImagePrompt   = "Please enter a prompt."
	EmptyThinkingQuery = "Please enter a complex query."
	StreamWaiting      = "Waiting for response..."
	ImageWaiting       = "Creating your masterpiece..."
	ThinkingWaiting    = "Gemini is thinking deeply..."
)

// busyGuard lets one request run at a time, like a disabled button.
type busyGuard struct {
	mu   sync.Mutex
	busy bool
}

func (g *busyGuard) acquire() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.busy {
		return false
	}
	g.busy = true
	return true
}

func (g *busyGuard) release() {
	g.mu.Lock()
	g.busy = false
	g.mu.Unlock()
}

// Busy reports whether a request is outstanding.
func (g *busyGuard) Busy() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.busy
}

// status is dismissible inline status text.
type status struct {
	mu   sync.Mutex
	text string
}

func (s *status) set(text string) {
	s.mu.Lock()
	s.text = text
	s.mu.Unlock()
}

// Status returns the current status text, or "" when there is none.
func (s *status) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

// Dismiss clears the status text.
func (s *status) Dismiss() {
	s.set("")
}
