package command

import (
	"context"
	"iranscbot/internal/core/domain"
	"iranscbot/internal/core/port"
	"time"
)

type Joke struct {
	client     port.JokeClient
	textSender port.TextSender
	command    string
}

func NewJoke(client port.JokeClient, sender port.TextSender) *Joke {
	return &Joke{client: client, textSender: sender, command: "/joke"}
}

func (j *Joke) GetCommand() string {
	return j.command
}

func (j *Joke) Description() string {
	return domain.DescJoke
}

func (j *Joke) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := requestLogger(message, j.GetCommand())

	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(l.WithContext(ctx), timeout)
	defer cancel()

	actionCtx, stopAction := context.WithCancel(ctx)
	go j.textSender.SendChatAction(actionCtx, message.ChatID, domain.Typing)

	reply := j.client.Tell(ctx)
	stopAction()

	return sendReply(ctx, l, j.textSender, message, reply.Text)
}
