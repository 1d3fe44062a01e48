package showcase

import (
	"context"
	"iter"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Session is a conversation bound to one ChatModel for its whole lifetime.
// The provider keeps the conversation context; Session only forwards
// messages. A Session is meant to be owned by a single caller and must not
// have two requests in flight at once.
type Session struct {
	id     uuid.UUID
	model  ChatModel
	chat   ChatHandle
	logger *slog.Logger
}

// ID returns the session's correlation ID used in logs.
func (s *Session) ID() string {
	return s.id.String()
}

// Model returns the model the session is bound to.
func (s *Session) Model() ChatModel {
	return s.model
}

// SendMessage sends text and returns the model's full reply once generation
// is complete. Callers suppress blank input themselves.
func (s *Session) SendMessage(ctx context.Context, text string) (string, error) {
	start := time.Now()

	s.logger.Debug("sending chat message",
		"session", s.ID(),
		"model", string(s.model),
		"message_length", len(text),
	)

	reply, err := s.chat.Send(ctx, text)
	duration := time.Since(start)

	if err != nil {
		s.logger.Error("chat message failed",
			"session", s.ID(),
			"model", string(s.model),
			"duration_ms", duration.Milliseconds(),
			"error", err.Error(),
		)

		return "", &OpError{Op: OpChat, Err: err}
	}

	s.logger.Info("chat message completed",
		"session", s.ID(),
		"model", string(s.model),
		"duration_ms", duration.Milliseconds(),
		"reply_length", len(reply),
	)

	return reply, nil
}

// Stream is a finite sequence of reply fragments in arrival order. It may
// be ranged over once; later attempts yield ErrStreamConsumed.
type Stream = iter.Seq2[string, error]

// SendMessageStream sends text and returns the reply as a Stream. The
// request starts when the caller begins ranging over it. If the provider
// fails part-way, fragments already yielded stay valid and a single
// OpError follows them.
func (s *Session) SendMessageStream(ctx context.Context, text string) Stream {
	var used atomic.Bool

	return func(yield func(string, error) bool) {
		if !used.CompareAndSwap(false, true) {
			yield("", ErrStreamConsumed)
			return
		}

		start := time.Now()
		fragments := 0

		s.logger.Debug("starting chat stream",
			"session", s.ID(),
			"model", string(s.model),
			"message_length", len(text),
		)

		for fragment, err := range s.chat.SendStream(ctx, text) {
			if err != nil {
				s.logger.Error("chat stream failed",
					"session", s.ID(),
					"model", string(s.model),
					"fragments", fragments,
					"duration_ms", time.Since(start).Milliseconds(),
					"error", err.Error(),
				)

				yield("", &OpError{Op: OpStream, Err: err})
				return
			}
			if fragment == "" {
				continue
			}

			fragments++
			if !yield(fragment, nil) {
				s.logger.Debug("chat stream abandoned by consumer",
					"session", s.ID(),
					"fragments", fragments,
				)
				return
			}
		}

		s.logger.Info("chat stream completed",
			"session", s.ID(),
			"model", string(s.model),
			"fragments", fragments,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

// Collect drains stream and returns the concatenated text. On failure the
// text received before the error is returned along with it.
func Collect(stream Stream) (string, error) {
	var sb strings.Builder
	for fragment, err := range stream {
		if err != nil {
			return sb.String(), err
		}
		sb.WriteString(fragment)
	}
	return sb.String(), nil
}
