package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ByPavel22/ByPavel22Bot/internal/bot"
	"github.com/ByPavel22/ByPavel22Bot/internal/config"
	"github.com/ByPavel22/ByPavel22Bot/internal/repository"
	"github.com/ByPavel22/ByPavel22Bot/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	setupLogger(cfg.LogLevel)

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db")
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	api, err := bot.NewAPI(cfg.BotToken)
	if err != nil {
		log.Fatal().Err(err).Msg("bot api")
	}

	userRepo := repository.NewUserRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	adminGate := service.NewAdminGate(cfg.AdminID)
	sender := bot.NewSender(api)
	relaySvc := service.NewRelayService(userRepo, messageRepo, sender, adminGate)
	replySvc := service.NewReplyService(userRepo, messageRepo, sender, adminGate)
	statsSvc := service.NewStatsService(userRepo, messageRepo, adminGate)

	relayBot := bot.New(api, relaySvc, replySvc, statsSvc, adminGate)

	if cfg.StatsInterval > 0 {
		scheduler := service.NewSchedulerService(time.Local)
		if _, err := scheduler.ScheduleInterval(cfg.StatsInterval, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := relayBot.SendStatsDigest(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error().Err(err).Msg("stats digest")
			}
		}); err != nil {
			log.Fatal().Err(err).Msg("schedule stats digest")
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	log.Info().Msg("relay bot started")
	if err := relayBot.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("bot stopped with error")
	}
	log.Info().Msg("shutdown complete")
}

func setupLogger(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
