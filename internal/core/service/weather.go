package service

import (
	"context"
	"iranscbot/internal/core/domain"
	"iranscbot/internal/core/port"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Weather struct {
	provider port.WeatherProvider
	recorder port.MetricsRecorder
}

func NewWeather(provider port.WeatherProvider, recorder port.MetricsRecorder) *Weather {
	return &Weather{provider: provider, recorder: recorder}
}

// Report looks up the current weather for a city. Every outcome, failures included, is rendered into the Reply.
func (w *Weather) Report(ctx context.Context, city string) domain.Reply {
	l := zerolog.Ctx(ctx).With().Str("provider", w.provider.Name()).Str("city", city).Logger()

	if strings.TrimSpace(city) == "" {
		l.Debug().Err(domain.ErrEmptyCity).Msg("skipping weather lookup")
		return domain.Reply{Text: domain.MsgWeatherUsage, Failure: domain.FailureNotFound}
	}

	start := time.Now()
	weather, err := w.provider.Current(ctx, city)
	kind := domain.KindOf(err)
	observe(w.recorder, w.provider.Name(), kind, start)

	switch kind {
	case domain.NoFailure:
		return domain.Reply{Text: domain.FormatWeather(city, weather)}
	case domain.FailureNotFound:
		l.Info().Msg("no weather data for city")
		return domain.Reply{Text: domain.MsgWeatherNotFound, Failure: kind}
	case domain.FailureTimeout:
		l.Error().Err(err).Msg("weather request timed out")
		return domain.Reply{Text: domain.MsgWeatherTimeout, Failure: kind}
	case domain.FailureUpstream:
		l.Error().Err(err).Int("status", domain.StatusCode(err)).Msg("weather provider returned an error status")
		return domain.Reply{Text: domain.MsgWeatherUpstream, Failure: kind}
	default:
		l.Error().Err(err).Msg("unexpected error fetching weather")
		return domain.Reply{Text: domain.MsgWeatherError, Failure: kind}
	}
}
