package surface

import (
	"context"
	"strings"
	"sync"

	"github.com/mhpenta/showcase"
)

// LowLatency is the streaming surface. It shows one response at a time,
// growing as fragments arrive.
type LowLatency struct {
	busyGuard
	status

	session *showcase.Session

	mu       sync.Mutex
	response strings.Builder
}

// NewLowLatency opens a session on the low-latency chat model.
func NewLowLatency(ctx context.Context, gw *showcase.Gateway) (*LowLatency, error) {
	sess, err := gw.OpenChat(ctx, showcase.ChatModelLowLatency)
	if err != nil {
		return nil, err
	}
	return &LowLatency{session: sess}, nil
}

// Send streams the reply to input. The buffer is cleared first, then each
// fragment is appended in arrival order and onFragment (if not nil) is
// called with it. On failure the text received so far is kept, the status
// is set to the stream failure message and the error is returned.
func (l *LowLatency) Send(ctx context.Context, input string, onFragment func(string)) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", ErrBlankInput
	}
	if !l.acquire() {
		return "", ErrBusy
	}
	defer l.release()

	l.Dismiss()
	l.mu.Lock()
	l.response.Reset()
	l.mu.Unlock()

	for fragment, err := range l.session.SendMessageStream(ctx, input) {
		if err != nil {
			l.set(showcase.UserMessage(err))
			return l.Response(), err
		}

		l.mu.Lock()
		l.response.WriteString(fragment)
		l.mu.Unlock()

		if onFragment != nil {
			onFragment(fragment)
		}
	}

	return l.Response(), nil
}

// Response returns the text accumulated for the latest request.
func (l *LowLatency) Response() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.response.String()
}

// View returns what the surface displays: the response, followed by the
// failure indicator when the stream broke off.
func (l *LowLatency) View() string {
	resp := l.Response()
	st := l.Status()

	switch {
	case st == "" && resp == "" && l.Busy():
		return StreamWaiting
	case st == "":
		return resp
	case resp == "":
		return st
	default:
		return resp + "\n\n" + st
	}
}

// Session returns the underlying session.
func (l *LowLatency) Session() *showcase.Session {
	return l.session
}
