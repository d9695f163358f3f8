package command

import (
	"context"
	"iranscbot/internal/core/domain"
	"iranscbot/internal/core/port"
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultWeatherAttempts   = 3
	DefaultWeatherRetryDelay = 2 * time.Second
)

type Weather struct {
	client     port.WeatherClient
	textSender port.TextSender
	command    string
	attempts   int
	retryDelay time.Duration
}

func NewWeather(client port.WeatherClient, sender port.TextSender, attempts int, retryDelay time.Duration) *Weather {
	if attempts < 1 {
		attempts = DefaultWeatherAttempts
	}

	return &Weather{
		client:     client,
		textSender: sender,
		command:    "/weather",
		attempts:   attempts,
		retryDelay: retryDelay,
	}
}

func (w *Weather) GetCommand() string {
	return w.command
}

func (w *Weather) Description() string {
	return domain.DescWeather
}

func (w *Weather) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := requestLogger(message, w.GetCommand())

	city := domain.ParseCommandArgs(message.Text)
	l.Info().Str("city", city).Msg("handling request")

	if city == "" {
		return sendReply(ctx, l, w.textSender, message, domain.MsgWeatherUsage)
	}

	ctx, cancel := context.WithTimeout(l.WithContext(ctx), timeout)
	defer cancel()

	actionCtx, stopAction := context.WithCancel(ctx)
	go w.textSender.SendChatAction(actionCtx, message.ChatID, domain.Typing)

	reply := w.lookup(ctx, l, city)
	stopAction()

	return sendReply(ctx, l, w.textSender, message, reply.Text)
}

// lookup runs the weather client up to w.attempts times, waiting retryDelay between attempts. Only retryable
// failures trigger another attempt; the last reply is returned as-is.
func (w *Weather) lookup(ctx context.Context, l zerolog.Logger, city string) domain.Reply {
	var reply domain.Reply

	for attempt := 1; attempt <= w.attempts; attempt++ {
		reply = w.client.Report(ctx, city)
		if !reply.Retryable() {
			return reply
		}

		if attempt == w.attempts {
			l.Error().Int("attempts", attempt).Str("failure", reply.Failure.String()).
				Msg("all attempts to fetch weather data failed")
			break
		}

		l.Warn().Int("attempt", attempt).Str("failure", reply.Failure.String()).Msg("weather lookup failed, retrying")

		timer := time.NewTimer(w.retryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			l.Warn().Err(ctx.Err()).Int("attempt", attempt).Msg("handler deadline reached, not retrying")
			return reply
		case <-timer.C:
		}
	}

	return reply
}
