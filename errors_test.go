package showcase_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mhpenta/showcase"
)

func TestOpError_UserSafeMessage(t *testing.T) {
	raw := errors.New("rpc error: code = Internal desc = backend 10.0.0.3 exploded")

	for _, op := range []showcase.Operation{showcase.OpChat, showcase.OpStream, showcase.OpImage, showcase.OpThinking} {
		t.Run(string(op), func(t *testing.T) {
			err := fmt.Errorf("wrapped: %w", &showcase.OpError{Op: op, Err: raw})

			assert.True(t, showcase.IsOpError(err))
			assert.ErrorIs(t, err, raw)
			assert.Equal(t, op.FailureMessage(), showcase.UserMessage(err))
			assert.NotContains(t, showcase.UserMessage(err), "10.0.0.3")
		})
	}
}

func TestOperation_DistinctMessages(t *testing.T) {
	seen := map[string]bool{}
	for _, op := range []showcase.Operation{showcase.OpChat, showcase.OpStream, showcase.OpImage, showcase.OpThinking} {
		msg := op.FailureMessage()
		assert.False(t, seen[msg], "duplicate message %q", msg)
		seen[msg] = true
	}
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "", showcase.UserMessage(nil))
	assert.Equal(t, "An unknown error occurred.", showcase.UserMessage(errors.New("x")))

	cfgErr := &showcase.ConfigError{Key: "API_KEY", Err: showcase.ErrMissingCredential}
	assert.Contains(t, showcase.UserMessage(cfgErr), "API_KEY environment variable not set")
}

func TestImageData_DataURI(t *testing.T) {
	img := showcase.ImageData{Data: []byte("hello")}
	assert.Equal(t, "data:image/png;base64,aGVsbG8=", img.DataURI())

	img.MIMEType = "image/jpeg"
	assert.Equal(t, "data:image/jpeg;base64,aGVsbG8=", img.DataURI())
}
