package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"proposal-tracker-backend/internal/common/config"
	"proposal-tracker-backend/internal/common/logger"
	"proposal-tracker-backend/internal/common/middleware"
	profilehttp "proposal-tracker-backend/internal/features/profile/delivery/http"
	"proposal-tracker-backend/internal/features/profile/repository"
	memoryrepo "proposal-tracker-backend/internal/features/profile/repository/memory"
	redisrepo "proposal-tracker-backend/internal/features/profile/repository/redis"
	profileservice "proposal-tracker-backend/internal/features/profile/service"
	trackinghttp "proposal-tracker-backend/internal/features/tracking/delivery/http"
	trackingservice "proposal-tracker-backend/internal/features/tracking/service"
	redisplatform "proposal-tracker-backend/internal/platform/redis"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.ServiceName, cfg.Debug)
	logger.Info().
		Bool("debug", cfg.Debug).
		Bool("merge_updates", cfg.Webhook.MergeUpdates).
		Msg("Starting proposal tracker backend")

	// Pick the record store: in-memory by default, Redis when configured.
	var recordRepo repository.RecordRepository
	if cfg.Redis.Addr != "" {
		rdb, err := redisplatform.Open(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		recordRepo = redisrepo.NewRecordRepository(rdb.Client)
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("Using Redis record store")
	} else {
		recordRepo = memoryrepo.NewRecordRepository()
		logger.Info().Msg("Using in-memory record store; redeploys clear records")
	}

	profileSvc := profileservice.NewProfileService(recordRepo, cfg.Webhook.MergeUpdates)
	trackingSvc := trackingservice.NewTrackingService()

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.Server.CORSAllowedOrigins) == 1 && cfg.Server.CORSAllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Server.CORSAllowedOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))

	profilehttp.NewProfileHandler(profileSvc).RegisterRoutes(router)
	trackinghttp.NewTrackingHandler(trackingSvc, cfg.Server.PublicBaseURL).RegisterRoutes(router)

	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ok":      true,
			"service": cfg.ServiceName,
		})
	}
	router.GET("/", healthHandler)
	router.GET("/health", healthHandler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}
