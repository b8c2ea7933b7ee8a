package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/aspirecareer/consultancy-api/internal/api"
	"github.com/aspirecareer/consultancy-api/internal/infrastructure/broadcast"
	mongodb "github.com/aspirecareer/consultancy-api/internal/infrastructure/db/mongo"
	redisdb "github.com/aspirecareer/consultancy-api/internal/infrastructure/db/redis"
	"github.com/aspirecareer/consultancy-api/internal/infrastructure/mail"
	"github.com/aspirecareer/consultancy-api/internal/infrastructure/queue"
	"github.com/aspirecareer/consultancy-api/internal/pkg/config"
	"github.com/aspirecareer/consultancy-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongodb index bootstrap failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	mailer := mail.NewSendGridMailer(mail.Config{
		APIKey:      cfg.Mail.SendGridAPIKey,
		FromName:    cfg.Mail.FromName,
		FromAddress: cfg.Mail.FromAddress,
		Sandbox:     cfg.Mail.Sandbox,
	})
	dispatcher := queue.NewMailDispatcher(cfg.Mail.Workers, mailer, log)
	// The dispatcher outlives the signal context so queued mail can still be
	// delivered while the server drains.
	mailCtx, stopMail := context.WithCancel(context.Background())
	defer stopMail()
	dispatcher.Start(mailCtx)

	hub := broadcast.NewHub(log)

	e := api.NewRouter(db, rdb, hub, dispatcher, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}

	// No requests can enqueue mail anymore; flush what is buffered.
	drainCtx, cancelDrain := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelDrain()
	dispatcher.Stop(drainCtx)
}
