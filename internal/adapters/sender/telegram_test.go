package sender

import (
	"context"
	"errors"
	"iranscbot/internal/core/domain"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBot struct {
	mock.Mock
}

func (m *MockBot) SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error) {
	args := m.Called(ctx, params)
	msg, _ := args.Get(0).(*models.Message)
	return msg, args.Error(1)
}

func (m *MockBot) SendChatAction(ctx context.Context, params *bot.SendChatActionParams) (bool, error) {
	args := m.Called(ctx, params)
	return args.Bool(0), args.Error(1)
}

func (m *MockBot) SetMyCommands(ctx context.Context, params *bot.SetMyCommandsParams) (bool, error) {
	args := m.Called(ctx, params)
	return args.Bool(0), args.Error(1)
}

func TestTelegramSender_SendMessageReply(t *testing.T) {
	longText := strings.Repeat("x", TelegramMessageLimit+10)

	tests := []struct {
		name      string
		text      string
		wantCalls int
		wantID    int
		setupMock func(mb *MockBot)
		wantErr   bool
	}{
		{
			name:      "single message",
			text:      "hello",
			wantCalls: 1,
			wantID:    123,
			setupMock: func(mb *MockBot) {
				mb.On("SendMessage", mock.Anything, mock.MatchedBy(func(params *bot.SendMessageParams) bool {
					return params.Text == "hello" &&
						params.ChatID == int64(1001) &&
						params.ReplyParameters.MessageID == 42
				})).
					Return(&models.Message{ID: 123}, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name:      "message chunked in two",
			text:      longText,
			wantCalls: 2,
			wantID:    456,
			setupMock: func(mb *MockBot) {
				mb.On("SendMessage", mock.Anything, mock.MatchedBy(func(params *bot.SendMessageParams) bool {
					return len(params.Text) <= TelegramMessageLimit
				})).
					Return(&models.Message{ID: 456}, nil).
					Twice()
			},
			wantErr: false,
		},
		{
			name:      "send fails on first",
			text:      "fail",
			wantCalls: 1,
			setupMock: func(mb *MockBot) {
				mb.On("SendMessage", mock.Anything, mock.Anything).Return(nil, errors.New("fail")).Once()
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mb := new(MockBot)
			sender := NewTelegram(mb)

			msg := &domain.Message{
				ID:     42,
				ChatID: 1001,
			}

			tc.setupMock(mb)
			id, err := sender.SendMessageReply(t.Context(), msg, tc.text)

			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.wantID, id)
			}
			mb.AssertNumberOfCalls(t, "SendMessage", tc.wantCalls)
			mb.AssertExpectations(t)
		})
	}
}

func TestChunkTextCountsRunes(t *testing.T) {
	text := strings.Repeat("آ", 5)

	chunks := chunkText(text, 2)

	assert.Equal(t, []string{"آآ", "آآ", "آ"}, chunks)
	assert.Equal(t, []string{"short"}, chunkText("short", 10))
}

func TestTelegramSender_SetCommands(t *testing.T) {
	tests := []struct {
		name    string
		retErr  error
		wantErr bool
	}{
		{name: "success"},
		{name: "set fails", retErr: errors.New("fail"), wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mb := new(MockBot)
			sender := NewTelegram(mb)

			mb.On("SetMyCommands", mock.Anything, &bot.SetMyCommandsParams{
				Commands: []models.BotCommand{
					{Command: "start", Description: "greet"},
					{Command: "weather", Description: "forecast"},
				},
			}).Return(tc.retErr == nil, tc.retErr).Once()

			err := sender.SetCommands(t.Context(), []domain.CommandInfo{
				{Command: "start", Description: "greet"},
				{Command: "weather", Description: "forecast"},
			})

			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			mb.AssertExpectations(t)
		})
	}
}

func TestSendChatAction_RepeatsAndStopsOnContextCancel(t *testing.T) {
	mb := new(MockBot)
	sender := NewTelegram(mb)
	sender.actionInterval = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(t.Context())
	chatID := int64(12345)
	var sent atomic.Int32

	mb.On("SendChatAction", mock.Anything, &bot.SendChatActionParams{
		ChatID: chatID,
		Action: models.ChatActionTyping,
	}).Return(true, nil).Run(func(mock.Arguments) { sent.Add(1) })

	done := make(chan struct{})
	go func() {
		sender.SendChatAction(ctx, chatID, domain.Typing)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return sent.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("chat action routine did not stop after cancel")
	}
}

func TestSendChatAction_StopsOnError(t *testing.T) {
	mb := new(MockBot)
	sender := NewTelegram(mb)

	mb.On("SendChatAction", mock.Anything, mock.Anything).Return(false, errors.New("fail")).Once()

	sender.SendChatAction(t.Context(), 1, domain.Typing)

	mb.AssertExpectations(t)
}
