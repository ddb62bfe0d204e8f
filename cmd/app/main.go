package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"giveaway-wheel-backend/internal/common/config"
	"giveaway-wheel-backend/internal/common/logger"
	participantrepo "giveaway-wheel-backend/internal/features/participant/repository"
	participantpostgres "giveaway-wheel-backend/internal/features/participant/repository/postgres"
	participantredis "giveaway-wheel-backend/internal/features/participant/repository/redis"
	photoredis "giveaway-wheel-backend/internal/features/photo/repository/redis"
	apphttp "giveaway-wheel-backend/internal/http"
	"giveaway-wheel-backend/internal/platform/postgres"
	"giveaway-wheel-backend/internal/platform/redis"
	"giveaway-wheel-backend/internal/platform/telegram"
)

const shutdownTimeout = 30 * time.Second

// @title           Giveaway Wheel API
// @version         1.0
// @description     Telegram giveaway backend: webhook registration, admin dashboard API and the prize wheel.

// @BasePath  /

// @securityDefinitions.apikey TelegramInitData
// @in header
// @name Authorization
// @description "tma <init data>" from the dashboard Mini App or "Bearer <ADMIN_API_KEY>"

// @tag.name participants
// @tag.description Current draw and participation history

// @tag.name broadcast
// @tag.description Messages to participants

// @tag.name photos
// @tag.description Broadcast photo uploads

// @tag.name telegram
// @tag.description Webhook delivery and setup

// @tag.name wheel
// @tag.description Winner selection

func main() {
	// Инициализируем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	logger.Init("giveaway-wheel-backend", cfg.Debug)

	logger.Info().
		Bool("debug", cfg.Debug).
		Str("storage", cfg.Storage.Driver).
		Bool("telegram_configured", cfg.TelegramConfigured()).
		Msg("Starting Giveaway Wheel Backend")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Fatal().Err(err).Msg("Service stopped with error")
	}

	logger.Info().Msg("Server exited")
}

func run(ctx context.Context, cfg *config.Config) error {
	// Redis нужен всегда: в нем хранятся загруженные фото
	redisClient, err := redis.Open(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer redisClient.Close()

	checks := []apphttp.HealthCheck{{Name: "redis", Check: redisClient.HealthCheck}}

	var participants participantrepo.ParticipantRepository
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		pg, err := postgres.NewClient(ctx, cfg)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer pg.Close()

		participants = participantpostgres.NewPostgresRepository(pg.DB())
		checks = append(checks, apphttp.HealthCheck{Name: "postgres", Check: pg.HealthCheck})
	default:
		participants = participantredis.NewRedisRepository(redisClient.Client)
	}

	logger.Info().Str("driver", cfg.Storage.Driver).Msg("Repositories initialized")

	tg, err := telegram.NewClient(telegram.Options{
		Token:  cfg.Telegram.BotToken,
		APIURL: cfg.Telegram.APIURL,
	})
	if err != nil {
		return err
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := apphttp.NewRouter(apphttp.Dependencies{
		Config:       cfg,
		Participants: participants,
		Photos:       photoredis.NewPhotoRepository(redisClient.Client),
		Telegram:     tg,
		HealthChecks: checks,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("Server forced to shutdown")
			return err
		}
		return nil
	})

	return g.Wait()
}
