package port

import (
	"context"
	"iranscbot/internal/core/domain"
	"time"
)

// Provider adapters return a *domain.ProviderError on failure.

type WeatherProvider interface {
	Current(ctx context.Context, city string) (domain.Weather, error)
	Name() string
}

type JokeProvider interface {
	Random(ctx context.Context) (domain.Joke, error)
	Name() string
}

type NewsProvider interface {
	Articles(ctx context.Context) ([]domain.Article, error)
	Name() string
}

type MetricsRecorder interface {
	ObserveProviderCall(provider string, outcome domain.FailureKind, elapsed time.Duration)
	ObserveCommand(command string)
}

// The clients below resolve every provider outcome, failures included, into a displayable domain.Reply.

type WeatherClient interface {
	Report(ctx context.Context, city string) domain.Reply
}

type JokeClient interface {
	Tell(ctx context.Context) domain.Reply
}

type NewsClient interface {
	Headline(ctx context.Context) domain.Reply
}
