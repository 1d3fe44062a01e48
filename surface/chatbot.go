package surface

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/mhpenta/showcase"
)

// ChatBot is the conversational surface. It keeps an append-only display
// mirror of the conversation; the session holds the real context.
type ChatBot struct {
	busyGuard

	session *showcase.Session
	logger  *slog.Logger

	mu       sync.Mutex
	messages []showcase.ChatMessage
}

// NewChatBot opens a session on the standard chat model and seeds the
// greeting.
func NewChatBot(ctx context.Context, gw *showcase.Gateway, logger *slog.Logger) (*ChatBot, error) {
	sess, err := gw.OpenChat(ctx, showcase.ChatModelStandard)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ChatBot{
		session: sess,
		logger:  logger,
		messages: []showcase.ChatMessage{
			{Role: showcase.RoleModel, Text: ChatGreeting},
		},
	}, nil
}

// Send posts input and returns the model's message. Failures are not
// returned: the canned ChatFailureReply is appended in place of a reply and
// the cause is logged. ErrBlankInput and ErrBusy are returned without
// touching the transcript.
func (c *ChatBot) Send(ctx context.Context, input string) (showcase.ChatMessage, error) {
	if strings.TrimSpace(input) == "" {
		return showcase.ChatMessage{}, ErrBlankInput
	}
	if !c.acquire() {
		return showcase.ChatMessage{}, ErrBusy
	}
	defer c.release()

	c.appendMessage(showcase.ChatMessage{Role: showcase.RoleUser, Text: input})

	reply := showcase.ChatMessage{Role: showcase.RoleModel}
	text, err := c.session.SendMessage(ctx, input)
	if err != nil {
		c.logger.Warn("chat reply replaced with failure message",
			"session", c.session.ID(),
			"error", err,
		)
		reply.Text = ChatFailureReply
	} else {
		reply.Text = text
	}

	c.appendMessage(reply)
	return reply, nil
}

// Messages returns a copy of the transcript in request order.
func (c *ChatBot) Messages() []showcase.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]showcase.ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// Session returns the underlying session.
func (c *ChatBot) Session() *showcase.Session {
	return c.session
}

func (c *ChatBot) appendMessage(m showcase.ChatMessage) {
	c.mu.Lock()
	c.messages = append(c.messages, m)
	c.mu.Unlock()
}
