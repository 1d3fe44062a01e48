package showcase

import (
	"errors"
	"fmt"
)

// Operation names a gateway operation for error reporting.
type Operation string

const (
	OpChat     Operation = "chat"
	OpStream   Operation = "stream"
	OpImage    Operation = "image"
	OpThinking Operation = "thinking"
)

var failureMessages = map[Operation]string{
	OpChat:     "Failed to get a chat response.",
	OpStream:   "Sorry, something went wrong while streaming.",
	OpImage:    "Failed to generate image. Please check the logs for details.",
	OpThinking: "Failed to generate response in thinking mode. Please check the logs for details.",
}

// FailureMessage returns the user-facing text for a failed operation.
func (o Operation) FailureMessage() string {
	if msg, ok := failureMessages[o]; ok {
		return msg
	}
	return "Something went wrong."
}

var (
	// ErrMissingCredential is returned when no API key is configured.
	ErrMissingCredential = errors.New("API_KEY environment variable not set")

	// ErrModelNotRegistered is returned when a chat is opened with an unknown model.
	ErrModelNotRegistered = errors.New("model not registered")

	// ErrNoImageGenerated is returned when the provider answers with zero images.
	ErrNoImageGenerated = errors.New("no image was generated")

	// ErrStreamConsumed is yielded when a Stream is ranged over a second time.
	ErrStreamConsumed = errors.New("stream already consumed")
)

// ConfigError is returned when the gateway cannot build its client.
// It is never wrapped in an OpError so callers can tell a misconfigured
// process from a failed request.
type ConfigError struct {
	Key string // Configuration key at fault, if known
	Err error
}

func (e *ConfigError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("configuration error (%s): %v", e.Key, e.Err)
	}
	return fmt.Sprintf("configuration error: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigError checks if an error is a ConfigError.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}

// OpError is the normalized failure of a gateway operation. Its message is
// safe to show to end users; the provider error is kept for diagnostics only.
type OpError struct {
	Op  Operation
	Err error // Underlying error from the provider
}

func (e *OpError) Error() string {
	return e.Op.FailureMessage()
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// IsOpError checks if an error is an OpError.
func IsOpError(err error) bool {
	var opErr *OpError
	return errors.As(err, &opErr)
}

// UserMessage returns display text for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var opErr *OpError
	if errors.As(err, &opErr) {
		return opErr.Error()
	}

	if IsConfigError(err) {
		return "The AI client is not configured: " + err.Error()
	}

	return "An unknown error occurred."
}
