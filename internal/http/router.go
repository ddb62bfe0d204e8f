package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "giveaway-wheel-backend/docs"
	"giveaway-wheel-backend/internal/common/config"
	"giveaway-wheel-backend/internal/common/middleware"
	broadcasthttp "giveaway-wheel-backend/internal/features/broadcast/delivery/http"
	broadcastservice "giveaway-wheel-backend/internal/features/broadcast/service"
	participanthttp "giveaway-wheel-backend/internal/features/participant/delivery/http"
	participantrepo "giveaway-wheel-backend/internal/features/participant/repository"
	participantservice "giveaway-wheel-backend/internal/features/participant/service"
	photohttp "giveaway-wheel-backend/internal/features/photo/delivery/http"
	photorepo "giveaway-wheel-backend/internal/features/photo/repository"
	photoservice "giveaway-wheel-backend/internal/features/photo/service"
	registrationhttp "giveaway-wheel-backend/internal/features/registration/delivery/http"
	registrationservice "giveaway-wheel-backend/internal/features/registration/service"
	webhookhttp "giveaway-wheel-backend/internal/features/webhook/delivery/http"
	webhookservice "giveaway-wheel-backend/internal/features/webhook/service"
	wheelhttp "giveaway-wheel-backend/internal/features/wheel/delivery/http"
	wheelservice "giveaway-wheel-backend/internal/features/wheel/service"
	"giveaway-wheel-backend/internal/platform/telegram"
	"giveaway-wheel-backend/internal/utils/random"
)

const (
	serviceName  = "giveaway-wheel-backend"
	readyTimeout = 2 * time.Second
)

// HealthCheck is a named dependency checked by /ready.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// Dependencies are the stores and clients the router is built from.
type Dependencies struct {
	Config       *config.Config
	Participants participantrepo.ParticipantRepository
	Photos       photorepo.PhotoRepository
	Telegram     telegram.Gateway
	// nil uses random.CryptoSource
	WheelSource  random.Source
	HealthChecks []HealthCheck
}

// NewRouter builds a gin engine with routes and middlewares wired.
func NewRouter(deps Dependencies) *gin.Engine {
	cfg := deps.Config

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.ErrorHandler())

	// Настраиваем CORS для дашборда
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "Accept", "init_data", "X-Request-ID"}
	router.Use(cors.New(corsConfig))

	admin := middleware.RequireAdmin(middleware.AdminAuthConfig{
		BotToken:    cfg.Telegram.BotToken,
		InitDataTTL: cfg.Telegram.InitDataTTL,
		AdminIDs:    cfg.AdminIDs(),
		APIKey:      cfg.Telegram.AdminAPIKey,
	})

	participantSvc := participantservice.NewParticipantService(deps.Participants)
	registrationSvc := registrationservice.NewRegistrationService(deps.Participants, deps.Telegram, registrationservice.Messages{
		Registered:         cfg.Messages.Registered,
		AlreadyRegistered:  cfg.Messages.AlreadyRegistered,
		RegistrationFailed: cfg.Messages.RegistrationFailed,
		PhotoURL:           cfg.Messages.RegistrationPhoto,
	})
	broadcastSvc := broadcastservice.NewBroadcastService(deps.Participants, deps.Telegram, broadcastservice.Config{
		Delay:         cfg.Broadcast.Delay,
		PresetMessage: cfg.Broadcast.PresetMessage,
		PresetPhoto:   cfg.Broadcast.PresetPhoto,
	})
	photoSvc := photoservice.NewPhotoService(deps.Photos, photoservice.Config{
		PublicBaseURL: cfg.Server.PublicBaseURL,
		TTL:           cfg.Photo.TTL,
		MaxSize:       cfg.Photo.MaxSize,
	})
	webhookSvc := webhookservice.NewWebhookService(deps.Telegram, cfg.Telegram.WebhookSecret)
	wheelSvc := wheelservice.NewWheelService(deps.Participants, deps.WheelSource, cfg.Wheel.Animation)

	api := router.Group("/api")
	participanthttp.NewParticipantHandler(participantSvc).RegisterRoutes(api, admin)
	broadcasthttp.NewBroadcastHandler(broadcastSvc).RegisterRoutes(api, admin)
	photohttp.NewPhotoHandler(photoSvc, cfg.Photo.MaxSize).RegisterRoutes(api, &router.RouterGroup, admin)
	webhookhttp.NewSetupHandler(webhookSvc).RegisterRoutes(api, admin)
	wheelhttp.NewWheelHandler(wheelSvc).RegisterRoutes(api, admin)
	registrationhttp.NewWebhookHandler(registrationSvc).RegisterRoutes(api, middleware.TelegramWebhookSecret(cfg.Telegram.WebhookSecret))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerHealthRoutes(router, deps.HealthChecks)

	return router
}

func registerHealthRoutes(router *gin.Engine, checks []HealthCheck) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   serviceName,
		})
	})

	// Liveness
	router.GET("/live", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// Readiness
	router.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
		defer cancel()

		for _, hc := range checks {
			if err := hc.Check(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":  "unready",
					"error":   hc.Name + " unavailable",
					"details": err.Error(),
				})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "ready",
			"timestamp": time.Now().UTC(),
			"service":   serviceName,
		})
	})
}
