package command

import (
	"context"
	"fmt"
	"iranscbot/internal/core/domain"
	"iranscbot/internal/core/port"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// sendReply delivers the single reply of an invocation. It detaches from ctx cancellation so a reply computed right
// at the handler deadline is still sent.
func sendReply(ctx context.Context, l zerolog.Logger, ts port.TextSender, message *domain.Message, text string) error {
	_, err := ts.SendMessageReply(context.WithoutCancel(ctx), message, text)
	if err != nil {
		l.Error().Err(err).Msg(domain.ErrSendingReplyFailed.Error())
		return fmt.Errorf("%w: %w", domain.ErrSendingReplyFailed, err)
	}

	return nil
}

func requestLogger(message *domain.Message, command string) zerolog.Logger {
	return log.With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Str("requestId", message.RequestID).
		Str("command", command).
		Logger()
}
