package sender

import (
	"context"
	"fmt"
	"iranscbot/internal/core/domain"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

// TelegramMessageLimit is the maximum length of a single Telegram text message, in characters.
const TelegramMessageLimit = 4096

const ChatActionRepeatInterval = 5 * time.Second

var chatActions = map[domain.Action]models.ChatAction{
	domain.Typing: models.ChatActionTyping,
}

// TelegramBot is the subset of *bot.Bot the sender needs.
type TelegramBot interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	SendChatAction(ctx context.Context, params *bot.SendChatActionParams) (bool, error)
	SetMyCommands(ctx context.Context, params *bot.SetMyCommandsParams) (bool, error)
}

type Telegram struct {
	bot            TelegramBot
	actionInterval time.Duration
}

func NewTelegram(bot TelegramBot) *Telegram {
	return &Telegram{bot: bot, actionInterval: ChatActionRepeatInterval}
}

// SendMessageReply replies to message, splitting text that exceeds TelegramMessageLimit into several messages.
// The ID of the last sent message is returned.
func (t *Telegram) SendMessageReply(ctx context.Context, message *domain.Message, text string) (int, error) {
	var lastID int

	for _, chunk := range chunkText(text, TelegramMessageLimit) {
		sent, err := t.bot.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: message.ChatID,
			Text:   chunk,
			ReplyParameters: &models.ReplyParameters{
				MessageID:                message.ID,
				ChatID:                   message.ChatID,
				AllowSendingWithoutReply: true,
			},
		})
		if err != nil {
			return lastID, fmt.Errorf("failed to send message: %w", err)
		}

		if sent != nil {
			lastID = sent.ID
		}
	}

	return lastID, nil
}

// SendChatAction repeats the chat action until ctx is done, since Telegram clears it after a few seconds.
func (t *Telegram) SendChatAction(ctx context.Context, chatID int64, action domain.Action) {
	chatAction, ok := chatActions[action]
	if !ok {
		chatAction = models.ChatActionTyping
	}

	ticker := time.NewTicker(t.actionInterval)
	defer ticker.Stop()

	log.Debug().Int64("chatID", chatID).Msg("starting action routine")
	for {
		_, err := t.bot.SendChatAction(ctx, &bot.SendChatActionParams{
			ChatID: chatID,
			Action: chatAction,
		})
		if err != nil {
			if ctx.Err() == nil {
				log.Err(err).Int64("chatID", chatID).Msg("error sending chat action")
			}
			return
		}

		select {
		case <-ctx.Done():
			log.Debug().Int64("chatID", chatID).Msg("done, stopping action routine")
			return
		case <-ticker.C:
		}
	}
}

// SetCommands publishes the command menu shown to users.
func (t *Telegram) SetCommands(ctx context.Context, commands []domain.CommandInfo) error {
	botCommands := make([]models.BotCommand, len(commands))
	for i, c := range commands {
		botCommands[i] = models.BotCommand{Command: c.Command, Description: c.Description}
	}

	_, err := t.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{Commands: botCommands})
	if err != nil {
		return fmt.Errorf("failed to set bot commands: %w", err)
	}

	log.Info().Int("count", len(botCommands)).Msg("published bot commands")

	return nil
}

func chunkText(text string, limit int) []string {
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}

	chunks := make([]string, 0, len(runes)/limit+1)
	for len(runes) > limit {
		chunks = append(chunks, string(runes[:limit]))
		runes = runes[limit:]
	}

	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}

	return chunks
}
