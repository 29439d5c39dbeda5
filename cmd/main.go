package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/tariff-tracker/backend/internal/config"
	"github.com/tariff-tracker/backend/internal/extractor"
	"github.com/tariff-tracker/backend/internal/fetch"
	"github.com/tariff-tracker/backend/internal/handler"
	"github.com/tariff-tracker/backend/internal/notify"
	"github.com/tariff-tracker/backend/internal/repo"
	"github.com/tariff-tracker/backend/pkg/logger"
)

func main() {
	godotenv.Load()

	cfg := config.Load()
	logger.Init(logger.IsDev())
	log := logger.Log

	watchlist, err := repo.NewWatchlistRepo(cfg.MongoURL, cfg.MongoDB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongo")
	}
	defer watchlist.Close()

	var notifier handler.Notifier
	if cfg.MailConfigured() {
		mailer, err := notify.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPAPIKey, cfg.AlertSender, cfg.AlertRecipient)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to configure mailer")
		}
		notifier = mailer
	} else {
		log.Warn().Msg("mail credentials not set, watchlist alerts disabled")
	}

	source := extractor.New(fetch.NewClient(cfg.FetchTimeout))

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	handler.New(cfg, source, watchlist, notifier).SetupRoutes(app)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info().Msg("shutting down")
		app.Shutdown()
	}()

	log.Info().
		Str("port", cfg.Port).
		Dur("fetch_timeout", cfg.FetchTimeout).
		Msg("tariff tracker started")

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("http server error")
	}
}
