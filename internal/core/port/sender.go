package port

import (
	"context"
	"iranscbot/internal/core/domain"
)

type TextSender interface {
	// SendMessageReply sends a reply to a specified message with the given text and returns the sent message ID and
	// an error if any.
	SendMessageReply(ctx context.Context, message *domain.Message, text string) (int, error)
	// SendChatAction sends a specified chat action (e.g., typing) to indicate activity in a given chat until ctx is
	// done.
	SendChatAction(ctx context.Context, chatID int64, action domain.Action)
}

type CommandPublisher interface {
	// SetCommands replaces the command menu shown to users.
	SetCommands(ctx context.Context, commands []domain.CommandInfo) error
}
