package surface

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhpenta/showcase"
	"github.com/mhpenta/showcase/showcasetest"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newGateway(mock *showcasetest.MockProvider) *showcase.Gateway {
	return showcase.NewGateway(mock.Factory(nil),
		showcase.WithAPIKey("test-key"),
		showcase.WithLogger(quietLogger()),
	)
}

// blockingChat holds every request until release is closed.
type blockingChat struct {
	*showcasetest.MockChat
	started chan struct{}
	release chan struct{}
}

func (b *blockingChat) Send(ctx context.Context, text string) (string, error) {
	close(b.started)
	<-b.release
	return b.MockChat.Send(ctx, text)
}

func TestChatBot_Greeting(t *testing.T) {
	bot, err := NewChatBot(context.Background(), newGateway(&showcasetest.MockProvider{}), quietLogger())
	require.NoError(t, err)

	assert.Equal(t, []showcase.ChatMessage{
		{Role: showcase.RoleModel, Text: ChatGreeting},
	}, bot.Messages())
	assert.Equal(t, showcase.ChatModelStandard, bot.Session().Model())
}

func TestChatBot_SendAppendsInOrder(t *testing.T) {
	ctx := context.Background()
	bot, err := NewChatBot(ctx, newGateway(&showcasetest.MockProvider{}), quietLogger())
	require.NoError(t, err)

	_, err = bot.Send(ctx, "hi")
	require.NoError(t, err)
	reply, err := bot.Send(ctx, "again")
	require.NoError(t, err)

	assert.Equal(t, showcasetest.Reply(showcase.ChatModelStandard, "again", 2), reply.Text)
	assert.Equal(t, []showcase.ChatMessage{
		{Role: showcase.RoleModel, Text: ChatGreeting},
		{Role: showcase.RoleUser, Text: "hi"},
		{Role: showcase.RoleModel, Text: showcasetest.Reply(showcase.ChatModelStandard, "hi", 1)},
		{Role: showcase.RoleUser, Text: "again"},
		{Role: showcase.RoleModel, Text: showcasetest.Reply(showcase.ChatModelStandard, "again", 2)},
	}, bot.Messages())
}

func TestChatBot_BlankInputSuppressed(t *testing.T) {
	mock := &showcasetest.MockProvider{}
	bot, err := NewChatBot(context.Background(), newGateway(mock), quietLogger())
	require.NoError(t, err)

	_, err = bot.Send(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrBlankInput)
	assert.Len(t, bot.Messages(), 1)
	assert.Empty(t, mock.Chats[0].History())
}

func TestChatBot_FailureBecomesCannedReply(t *testing.T) {
	chat := showcasetest.NewMockChat(showcase.ChatModelStandard)
	chat.SendErr = errors.New("boom")
	mock := &showcasetest.MockProvider{
		NewChatFunc: func(ctx context.Context, model showcase.ChatModel) (showcase.ChatHandle, error) {
			return chat, nil
		},
	}
	bot, err := NewChatBot(context.Background(), newGateway(mock), quietLogger())
	require.NoError(t, err)

	reply, err := bot.Send(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, ChatFailureReply, reply.Text)

	msgs := bot.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, showcase.ChatMessage{Role: showcase.RoleUser, Text: "hi"}, msgs[1])
	assert.Equal(t, showcase.ChatMessage{Role: showcase.RoleModel, Text: ChatFailureReply}, msgs[2])
}

func TestChatBot_RejectsOverlap(t *testing.T) {
	chat := &blockingChat{
		MockChat: showcasetest.NewMockChat(showcase.ChatModelStandard),
		started:  make(chan struct{}),
		release:  make(chan struct{}),
	}
	mock := &showcasetest.MockProvider{
		NewChatFunc: func(ctx context.Context, model showcase.ChatModel) (showcase.ChatHandle, error) {
			return chat, nil
		},
	}
	ctx := context.Background()
	bot, err := NewChatBot(ctx, newGateway(mock), quietLogger())
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := bot.Send(ctx, "first")
		assert.NoError(t, err)
	}()

	<-chat.started
	assert.True(t, bot.Busy())

	_, err = bot.Send(ctx, "second")
	assert.ErrorIs(t, err, ErrBusy)

	close(chat.release)
	wg.Wait()

	assert.False(t, bot.Busy())
	assert.Len(t, bot.Messages(), 3)
}

func TestChatBot_MissingCredential(t *testing.T) {
	gw := showcase.NewGateway((&showcasetest.MockProvider{}).Factory(nil),
		showcase.WithAPIKey(""),
		showcase.WithLogger(quietLogger()),
	)

	_, err := NewChatBot(context.Background(), gw, quietLogger())
	assert.True(t, showcase.IsConfigError(err))
}

func TestLowLatency_StreamsFragments(t *testing.T) {
	chat := showcasetest.NewMockChat(showcase.ChatModelLowLatency)
	chat.Fragments = []string{"The ", "quick ", "fox"}
	mock := &showcasetest.MockProvider{
		NewChatFunc: func(ctx context.Context, model showcase.ChatModel) (showcase.ChatHandle, error) {
			assert.Equal(t, showcase.ChatModelLowLatency, model)
			return chat, nil
		},
	}
	ll, err := NewLowLatency(context.Background(), newGateway(mock))
	require.NoError(t, err)

	var seen []string
	text, err := ll.Send(context.Background(), "go", func(f string) {
		seen = append(seen, f)
	})
	require.NoError(t, err)

	assert.Equal(t, "The quick fox", text)
	assert.Equal(t, []string{"The ", "quick ", "fox"}, seen)
	assert.Equal(t, "The quick fox", ll.View())
	assert.Empty(t, ll.Status())
}

func TestLowLatency_FailureKeepsPartial(t *testing.T) {
	chat := showcasetest.NewMockChat(showcase.ChatModelLowLatency)
	chat.Fragments = []string{"Once ", "upon ", "a time"}
	chat.FailAfter = 2
	mock := &showcasetest.MockProvider{
		NewChatFunc: func(ctx context.Context, model showcase.ChatModel) (showcase.ChatHandle, error) {
			return chat, nil
		},
	}
	ll, err := NewLowLatency(context.Background(), newGateway(mock))
	require.NoError(t, err)

	text, err := ll.Send(context.Background(), "story", nil)
	require.Error(t, err)
	assert.True(t, showcase.IsOpError(err))

	failure := showcase.OpStream.FailureMessage()
	assert.Equal(t, "Once upon ", text)
	assert.Equal(t, failure, ll.Status())
	assert.Equal(t, "Once upon \n\n"+failure, ll.View())

	ll.Dismiss()
	assert.Equal(t, "Once upon ", ll.View())
}

func TestLowLatency_NewSendClearsBuffer(t *testing.T) {
	ll, err := NewLowLatency(context.Background(), newGateway(&showcasetest.MockProvider{}))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = ll.Send(ctx, "one", nil)
	require.NoError(t, err)
	text, err := ll.Send(ctx, "two", nil)
	require.NoError(t, err)

	assert.Equal(t, showcasetest.Reply(showcase.ChatModelLowLatency, "two", 2), text)
	assert.Equal(t, text, ll.Response())
}

func TestLowLatency_BlankInput(t *testing.T) {
	ll, err := NewLowLatency(context.Background(), newGateway(&showcasetest.MockProvider{}))
	require.NoError(t, err)

	_, err = ll.Send(context.Background(), "", nil)
	assert.ErrorIs(t, err, ErrBlankInput)
}

func TestImageGenerator_Generate(t *testing.T) {
	var gotRatio showcase.AspectRatio
	mock := &showcasetest.MockProvider{
		GenerateImagesFunc: func(ctx context.Context, req *showcase.ImageRequest) (*showcase.ImageResponse, error) {
			gotRatio = req.AspectRatio
			return &showcase.ImageResponse{
				Images: []showcase.ImageData{{Data: []byte("png"), MIMEType: "image/png"}},
			}, nil
		},
	}
	gen := NewImageGenerator(newGateway(mock))
	assert.Equal(t, showcase.AspectRatio1x1, gen.AspectRatio())

	require.NoError(t, gen.SetAspectRatio(showcase.AspectRatio16x9))

	img, err := gen.Generate(context.Background(), "a red bicycle")
	require.NoError(t, err)

	assert.Equal(t, showcase.AspectRatio16x9, gotRatio)
	assert.Equal(t, "data:image/png;base64,cG5n", img.DataURI())

	stored, ok := gen.Image()
	assert.True(t, ok)
	assert.Equal(t, img, stored)
	assert.Empty(t, gen.Status())
}

func TestImageGenerator_RejectsBadInputBeforeGateway(t *testing.T) {
	calls := 0
	mock := &showcasetest.MockProvider{
		GenerateImagesFunc: func(ctx context.Context, req *showcase.ImageRequest) (*showcase.ImageResponse, error) {
			calls++
			return &showcase.ImageResponse{}, nil
		},
	}
	gen := NewImageGenerator(newGateway(mock))

	err := gen.SetAspectRatio("21:9")
	assert.ErrorIs(t, err, showcase.ErrInvalidAspectRatio)
	assert.Equal(t, showcase.AspectRatio1x1, gen.AspectRatio())

	_, err = gen.Generate(context.Background(), "  ")
	assert.ErrorIs(t, err, showcase.ErrEmptyPrompt)
	assert.Equal(t, EmptyImagePrompt, gen.Status())
	assert.Zero(t, calls)
}

func TestImageGenerator_FailureShowsStatus(t *testing.T) {
	mock := &showcasetest.MockProvider{
		GenerateImagesFunc: func(ctx context.Context, req *showcase.ImageRequest) (*showcase.ImageResponse, error) {
			return &showcase.ImageResponse{}, nil
		},
	}
	gen := NewImageGenerator(newGateway(mock))

	img, err := gen.Generate(context.Background(), "a red bicycle")
	require.Error(t, err)
	assert.ErrorIs(t, err, showcase.ErrNoImageGenerated)
	assert.True(t, img.IsZero())

	_, ok := gen.Image()
	assert.False(t, ok)
	assert.Equal(t, showcase.OpImage.FailureMessage(), gen.Status())

	gen.Dismiss()
	assert.Empty(t, gen.Status())
}

func TestThinkingMode_Submit(t *testing.T) {
	mock := &showcasetest.MockProvider{
		GenerateTextFunc: func(ctx context.Context, req *showcase.TextRequest) (string, error) {
			return "42", nil
		},
	}
	tm := NewThinkingMode(newGateway(mock))

	text, err := tm.Submit(context.Background(), "meaning of life")
	require.NoError(t, err)
	assert.Equal(t, "42", text)
	assert.Equal(t, "42", tm.Response())
}

func TestThinkingMode_BlankAndFailure(t *testing.T) {
	mock := &showcasetest.MockProvider{
		GenerateTextFunc: func(ctx context.Context, req *showcase.TextRequest) (string, error) {
			return "", errors.New("deadline exceeded")
		},
	}
	tm := NewThinkingMode(newGateway(mock))

	_, err := tm.Submit(context.Background(), "")
	assert.ErrorIs(t, err, showcase.ErrEmptyPrompt)
	assert.Equal(t, EmptyThinkingQuery, tm.Status())

	_, err = tm.Submit(context.Background(), "hard question")
	assert.True(t, showcase.IsOpError(err))
	assert.Equal(t, showcase.OpThinking.FailureMessage(), tm.Status())
	assert.Empty(t, tm.Response())
}
