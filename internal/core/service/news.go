package service

import (
	"context"
	"iranscbot/internal/core/domain"
	"iranscbot/internal/core/port"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"
)

type News struct {
	provider port.NewsProvider
	recorder port.MetricsRecorder
	pick     func(n int) int
}

func NewNews(provider port.NewsProvider, recorder port.MetricsRecorder) *News {
	return &News{provider: provider, recorder: recorder, pick: rand.IntN}
}

// Headline picks one article uniformly at random from the provider's result list.
func (n *News) Headline(ctx context.Context) domain.Reply {
	l := zerolog.Ctx(ctx).With().Str("provider", n.provider.Name()).Logger()

	start := time.Now()
	articles, err := n.provider.Articles(ctx)
	if err != nil {
		kind := domain.KindOf(err)
		observe(n.recorder, n.provider.Name(), kind, start)

		l.Error().Err(err).Int("status", domain.StatusCode(err)).Msg("error fetching news")
		return domain.Reply{Text: domain.MsgNewsError, Failure: kind}
	}

	if len(articles) == 0 {
		observe(n.recorder, n.provider.Name(), domain.FailureNotFound, start)
		l.Info().Msg("no articles returned")
		return domain.Reply{Text: domain.MsgNewsNotFound, Failure: domain.FailureNotFound}
	}

	observe(n.recorder, n.provider.Name(), domain.NoFailure, start)

	article := articles[n.pick(len(articles))]
	l.Debug().Int("articles", len(articles)).Str("url", article.URL).Msg("picked article")

	return domain.Reply{Text: domain.FormatArticle(article)}
}
