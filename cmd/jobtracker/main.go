// Job tracker API server.
//
// @title        Job Tracker API
// @version      1.0
// @description  Job application tracking backend: applications, contacts, notes, timeline, files, dashboard and CSV exchange.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jobtrackr/jobtracker/internal/api"
	"github.com/jobtrackr/jobtracker/internal/core/service"
	"github.com/jobtrackr/jobtracker/internal/infrastructure/db/postgres"
	redisdb "github.com/jobtrackr/jobtracker/internal/infrastructure/db/redis"
	"github.com/jobtrackr/jobtracker/internal/infrastructure/mail"
	"github.com/jobtrackr/jobtracker/internal/infrastructure/scheduler"
	"github.com/jobtrackr/jobtracker/internal/pkg/config"
	"github.com/jobtrackr/jobtracker/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	// --- Postgres ---
	db, err := postgres.Connect(cfg.Postgres.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	log.Info().Str("host", cfg.Postgres.Host).Str("db", cfg.Postgres.Database).Msg("postgres connected")

	// --- Redis ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")

	// --- Daily reminder job ---
	var reminderScheduler *scheduler.Scheduler
	if cfg.Reminder.Enabled {
		sender, err := mail.NewSender(mail.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
			BaseURL:  cfg.AppBaseURL,
		}, logger.Component("mail"))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to build mail sender")
		}

		reminderService := service.NewReminderService(
			postgres.NewUserRepository(db),
			postgres.NewApplicationRepository(db),
			sender,
			redisdb.NewReminderGuard(rdb),
			time.Now,
			logger.Component("reminders"),
		)

		reminderScheduler, err = scheduler.New(cfg.Reminder.CronSpec, reminderService, logger.Component("scheduler"))
		if err != nil {
			log.Fatal().Err(err).Str("spec", cfg.Reminder.CronSpec).Msg("invalid reminder cron spec")
		}
		reminderScheduler.Start()
	} else {
		log.Info().Msg("reminder job disabled")
	}

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, cfg.JWTSecret, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server stopped")
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	if reminderScheduler != nil {
		reminderScheduler.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown failed")
	}

	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close failed")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Info().Msg("shutdown complete")
}
