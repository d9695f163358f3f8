package service

import (
	"context"
	"iranscbot/internal/core/domain"
	"iranscbot/internal/core/port"
	"time"

	"github.com/rs/zerolog"
)

type Jokes struct {
	provider port.JokeProvider
	recorder port.MetricsRecorder
}

func NewJokes(provider port.JokeProvider, recorder port.MetricsRecorder) *Jokes {
	return &Jokes{provider: provider, recorder: recorder}
}

func (j *Jokes) Tell(ctx context.Context) domain.Reply {
	l := zerolog.Ctx(ctx).With().Str("provider", j.provider.Name()).Logger()

	start := time.Now()
	joke, err := j.provider.Random(ctx)
	if err != nil {
		kind := domain.KindOf(err)
		observe(j.recorder, j.provider.Name(), kind, start)

		if kind == domain.FailureNotFound {
			l.Info().Err(err).Msg("joke provider returned nothing usable")
			return domain.Reply{Text: domain.MsgJokeNotFound, Failure: kind}
		}

		l.Error().Err(err).Int("status", domain.StatusCode(err)).Msg("error fetching joke")
		return domain.Reply{Text: domain.MsgJokeError, Failure: kind}
	}

	text, ok := domain.FormatJoke(joke)
	if !ok {
		observe(j.recorder, j.provider.Name(), domain.FailureNotFound, start)
		l.Info().Str("type", string(joke.Type)).Msg("unsupported or incomplete joke")
		return domain.Reply{Text: domain.MsgJokeNotFound, Failure: domain.FailureNotFound}
	}

	observe(j.recorder, j.provider.Name(), domain.NoFailure, start)

	return domain.Reply{Text: text}
}
