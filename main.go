package main

import (
	"context"
	"iranscbot/internal/adapters/handler"
	"iranscbot/internal/adapters/httpserver"
	"iranscbot/internal/adapters/metrics"
	"iranscbot/internal/adapters/provider"
	"iranscbot/internal/adapters/sender"
	"iranscbot/internal/config"
	"iranscbot/internal/core/domain/command"
	"iranscbot/internal/core/service"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-telegram/bot/models"

	"github.com/rs/zerolog"

	"github.com/go-telegram/bot"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	log.Info().Msg("starting iranscbot...")

	log.Info().Msg("reading config...")
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}

	setupLogging(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	opts := []bot.Option{
		bot.WithDefaultHandler(noOpHandler),
		bot.WithHTTPClient(cfg.Telegram.PollTimeout, &http.Client{Timeout: cfg.Telegram.PollTimeout + 10*time.Second}),
	}

	b, err := bot.New(cfg.Telegram.Token, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("failed initializing telegram bot")
	}

	me, err := b.GetMe(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed fetching bot identity")
	}
	log.Info().Str("username", me.Username).Msg("authorized bot")

	s := sender.NewTelegram(b)
	recorder := metrics.NewPrometheus()

	weatherClient := service.NewWeather(
		provider.NewWeatherAPI(cfg.Weather.BaseURL, cfg.Weather.APIKey, cfg.Weather.Language, cfg.Weather.Timeout),
		recorder)
	jokeClient := service.NewJokes(
		provider.NewJokeAPI(cfg.Joke.BaseURL, cfg.Joke.Category, cfg.Joke.Timeout),
		recorder)
	newsClient := service.NewNews(
		provider.NewNewsAPI(cfg.News.BaseURL, cfg.News.APIKey, cfg.News.Query, cfg.News.Timeout),
		recorder)

	commandRegistry := &command.Registry{}

	commandRegistry.Register(command.NewStart(s))
	commandRegistry.Register(command.NewHelp(s))
	commandRegistry.Register(command.NewWeather(weatherClient, s, cfg.Weather.RetryAttempts, cfg.Weather.RetryDelay))
	commandRegistry.Register(command.NewJoke(jokeClient, s))
	commandRegistry.Register(command.NewNews(newsClient, s))

	if err := s.SetCommands(ctx, commandRegistry.ListCommands()); err != nil {
		log.Warn().Err(err).Msg("could not publish command list")
	}

	commandHandler := handler.NewCommand(me.Username, commandRegistry, recorder, cfg.Handler.Timeout)

	b.RegisterHandler(bot.HandlerTypeMessageText, "/", bot.MatchTypePrefix, commandHandler.Handle)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Msg("bot listening")
		b.Start(gctx)
		return nil
	})

	if cfg.Metrics.Address != "" {
		srv := httpserver.New(cfg.Metrics.Address, recorder.Handler())
		g.Go(func() error {
			return srv.Run(gctx)
		})
	}

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("shutting down after error")
	}

	log.Info().Msg("waiting for in-flight commands")
	commandHandler.Wait()
	log.Info().Msg("bot stopped")
}

func setupLogging(level, format string) {
	var logLevel zerolog.Level

	switch level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	if format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	// Services log through zerolog.Ctx; fall back to the global logger outside of a command.
	zerolog.DefaultContextLogger = &log.Logger
}

func noOpHandler(_ context.Context, _ *bot.Bot, _ *models.Update) {}
