package command

import (
	"context"
	"iranscbot/internal/core/domain"
	"sync"
)

type MockTextSender struct {
	mu      sync.Mutex
	err     error
	replies []string
	actions []chatAction
}

type chatAction struct {
	chatID  int64
	action  domain.Action
	stopped bool
}

func (m *MockTextSender) SendMessageReply(_ context.Context, _ *domain.Message, text string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.replies = append(m.replies, text)
	return len(m.replies), m.err
}

// SendChatAction records the action and, like the real sender, keeps it running until ctx is done.
func (m *MockTextSender) SendChatAction(ctx context.Context, chatID int64, action domain.Action) {
	m.mu.Lock()
	i := len(m.actions)
	m.actions = append(m.actions, chatAction{chatID: chatID, action: action})
	m.mu.Unlock()

	<-ctx.Done()

	m.mu.Lock()
	m.actions[i].stopped = true
	m.mu.Unlock()
}

func (m *MockTextSender) ChatActions() []chatAction {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]chatAction(nil), m.actions...)
}

func (m *MockTextSender) Replies() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.replies...)
}

// MockWeatherClient returns the queued replies in order, repeating the last one once the queue is drained.
type MockWeatherClient struct {
	pending func()
	replies []domain.Reply
	calls   int
	cities  []string
}

func (m *MockWeatherClient) Report(_ context.Context, city string) domain.Reply {
	m.cities = append(m.cities, city)
	if m.pending != nil {
		m.pending()
	}

	i := m.calls
	if i >= len(m.replies) {
		i = len(m.replies) - 1
	}
	m.calls++

	return m.replies[i]
}

type MockJokeClient struct {
	pending func()
	reply   domain.Reply
	calls   int
}

func (m *MockJokeClient) Tell(_ context.Context) domain.Reply {
	m.calls++
	if m.pending != nil {
		m.pending()
	}
	return m.reply
}

type MockNewsClient struct {
	pending func()
	reply   domain.Reply
	calls   int
}

func (m *MockNewsClient) Headline(_ context.Context) domain.Reply {
	m.calls++
	if m.pending != nil {
		m.pending()
	}
	return m.reply
}
