package command

import (
	"context"
	"iranscbot/internal/core/domain"
	"iranscbot/internal/core/port"
	"time"
)

type News struct {
	client     port.NewsClient
	textSender port.TextSender
	command    string
}

func NewNews(client port.NewsClient, sender port.TextSender) *News {
	return &News{client: client, textSender: sender, command: "/news"}
}

func (n *News) GetCommand() string {
	return n.command
}

func (n *News) Description() string {
	return domain.DescNews
}

func (n *News) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := requestLogger(message, n.GetCommand())

	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(l.WithContext(ctx), timeout)
	defer cancel()

	actionCtx, stopAction := context.WithCancel(ctx)
	go n.textSender.SendChatAction(actionCtx, message.ChatID, domain.Typing)

	reply := n.client.Headline(ctx)
	stopAction()

	return sendReply(ctx, l, n.textSender, message, reply.Text)
}
