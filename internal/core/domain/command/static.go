package command

import (
	"context"
	"iranscbot/internal/core/domain"
	"iranscbot/internal/core/port"
	"time"
)

// Static replies with a fixed text and takes no input.
type Static struct {
	textSender  port.TextSender
	command     string
	description string
	text        string
}

func NewStatic(sender port.TextSender, command, description, text string) *Static {
	return &Static{textSender: sender, command: command, description: description, text: text}
}

func NewStart(sender port.TextSender) *Static {
	return NewStatic(sender, "/start", domain.DescStart, domain.MsgGreeting)
}

func NewHelp(sender port.TextSender) *Static {
	return NewStatic(sender, "/help", domain.DescHelp, domain.MsgHelp)
}

func (s *Static) GetCommand() string {
	return s.command
}

func (s *Static) Description() string {
	return s.description
}

func (s *Static) Respond(ctx context.Context, _ time.Duration, message *domain.Message) error {
	l := requestLogger(message, s.GetCommand())

	l.Info().Msg("handling request")

	return sendReply(ctx, l, s.textSender, message, s.text)
}
