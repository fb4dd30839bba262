package main

import (
	"fmt"
	"generate-storyboard-api/application/services"
	"generate-storyboard-api/config"
	"generate-storyboard-api/infrastructure/adapters"
	"generate-storyboard-api/infrastructure/gin_interface/controllers"
	"generate-storyboard-api/middleware"
	mockgenerator "generate-storyboard-api/mock"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
	"time"
)

func main() {
	_ = godotenv.Load()

	narrationConfig, err := config.GetNarrationConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get narration config")
	}

	illustrationConfig, err := config.GetIllustrationConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get illustration config")
	}

	gatewayConfig, err := config.GetGatewayConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get gateway config")
	}

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(120, ants.WithPanicHandler(panicHandler))
	defer workerPool.Release()

	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}

	var illustrationLimiter *rate.Limiter
	if illustrationConfig.RequestsPerMinute > 0 {
		interval := time.Minute / time.Duration(illustrationConfig.RequestsPerMinute)
		illustrationLimiter = rate.NewLimiter(rate.Every(interval), 1)
	}

	sceneScriptGenerator := adapters.NewSceneScriptGenerator(narrationConfig, zeroLogger)
	imageSynthesizer := adapters.NewImageSynthesizer(illustrationConfig, zeroLogger)

	snapshotPublisher := adapters.NewSSESnapshotPublisher(zeroLogger)
	defer snapshotPublisher.Close()

	navigation := services.NewNavigationController()

	narrationGenerator := services.NewNarrationGenerator(zeroLogger, sceneScriptGenerator)

	sceneIllustrator := services.NewSceneIllustrator(zeroLogger, imageSynthesizer, illustrationLimiter)

	storyboardOrchestrator := services.NewStoryboardOrchestrator(zeroLogger, narrationGenerator, sceneIllustrator, snapshotPublisher, navigation)

	storyboardController := controllers.NewStoryboardController(zeroLogger, workerPool, storyboardOrchestrator, navigation, snapshotPublisher.StreamHandler())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	err = router.SetTrustedProxies(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	if gatewayConfig.JwksUrl != "" {
		authHandler, err := middleware.NewAuthHandler(gatewayConfig.JwksUrl)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create auth handler!")
		}
		router.Use(authHandler.AuthMiddleware())
	}

	if err := mockgenerator.Init(router, workerPool, snapshotPublisher, navigation, zeroLogger); err != nil {
		log.Warn().Err(err).Msg("Mock storyboard routes disabled")
	}

	storyboardController.RegisterRoutes(router)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	err = router.Run(":" + gatewayConfig.Port)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
