package service

import (
	"context"
	"iranscbot/internal/core/domain"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockWeatherProvider struct {
	mock.Mock
}

func (m *MockWeatherProvider) Current(ctx context.Context, city string) (domain.Weather, error) {
	args := m.Called(ctx, city)
	return args.Get(0).(domain.Weather), args.Error(1)
}

func (m *MockWeatherProvider) Name() string {
	return "weather-mock"
}

type MockJokeProvider struct {
	joke domain.Joke
	err  error
}

func (m *MockJokeProvider) Random(_ context.Context) (domain.Joke, error) {
	return m.joke, m.err
}

func (m *MockJokeProvider) Name() string {
	return "joke-mock"
}

type MockNewsProvider struct {
	articles []domain.Article
	err      error
}

func (m *MockNewsProvider) Articles(_ context.Context) ([]domain.Article, error) {
	return m.articles, m.err
}

func (m *MockNewsProvider) Name() string {
	return "news-mock"
}

type MockRecorder struct {
	outcomes []domain.FailureKind
}

func (m *MockRecorder) ObserveProviderCall(_ string, outcome domain.FailureKind, _ time.Duration) {
	m.outcomes = append(m.outcomes, outcome)
}

func (m *MockRecorder) ObserveCommand(_ string) {}
