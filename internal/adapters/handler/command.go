package handler

import (
	"context"
	"iranscbot/internal/core/domain"
	"iranscbot/internal/core/port"
	"strings"
	"sync"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

// Command dispatches text updates starting with a slash to the matching registered command handler.
type Command struct {
	botUsername     string
	commandRegistry port.CommandRegistry
	recorder        port.MetricsRecorder
	timeout         time.Duration
	inFlight        sync.WaitGroup
}

// NewCommand creates the dispatcher. Commands addressed to a bot other than botUsername, as in /weather@OtherBot,
// are ignored.
func NewCommand(
	botUsername string,
	commandRegistry port.CommandRegistry,
	recorder port.MetricsRecorder,
	timeout time.Duration,
) *Command {
	return &Command{
		botUsername:     botUsername,
		commandRegistry: commandRegistry,
		recorder:        recorder,
		timeout:         timeout,
	}
}

// Handle matches bot.HandlerFunc. The command handler runs in its own goroutine so a slow provider never holds up
// the update loop.
func (c *Command) Handle(ctx context.Context, _ *bot.Bot, update *models.Update) {
	if update.Message == nil {
		log.Debug().Int64("updateId", update.ID).Msg("update without message")
		return
	}

	log.Debug().Str("message", update.Message.Text).Msg("received command")

	cmd := domain.ParseCommand(update.Message.Text)

	if mention := domain.ParseCommandMention(update.Message.Text); mention != "" &&
		!strings.EqualFold(mention, c.botUsername) {
		log.Debug().Str("command", cmd).Str("mention", mention).Msg("command addressed to another bot")
		return
	}

	commandHandler, err := c.commandRegistry.Get(cmd)
	if err != nil {
		log.Debug().Err(err).Str("command", cmd).Msg("no handler for command")
		return
	}

	if c.recorder != nil {
		c.recorder.ObserveCommand(cmd)
	}

	message := &domain.Message{
		ID:        update.Message.ID,
		ChatID:    update.Message.Chat.ID,
		Username:  getUserNameFromMessage(update.Message.From),
		RequestID: newRequestID(),
		Text:      update.Message.Text,
	}

	// Commands run to completion even if the update loop is shutting down.
	ctx = context.WithoutCancel(ctx)

	c.inFlight.Add(1)
	go func() {
		defer c.inFlight.Done()

		err := commandHandler.Respond(ctx, c.timeout, message)
		if err != nil {
			log.Err(err).Str("command", cmd).Str("requestId", message.RequestID).Msg("failed to respond to command")
		}
	}()
}

// Wait blocks until every dispatched command handler has returned.
func (c *Command) Wait() {
	c.inFlight.Wait()
}

func newRequestID() string {
	id, err := uuid.NewV4()
	if err != nil {
		log.Warn().Err(err).Msg("could not generate request id")
		return ""
	}

	return id.String()
}

func getUserNameFromMessage(user *models.User) string {
	if user == nil {
		return ""
	}

	if user.Username == "" {
		return user.FirstName
	}

	return "@" + user.Username
}
