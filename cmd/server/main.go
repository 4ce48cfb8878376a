package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/nbadviser/nbadviser/internal/api/handlers"
	"github.com/nbadviser/nbadviser/internal/bot"
	"github.com/nbadviser/nbadviser/internal/config"
	"github.com/nbadviser/nbadviser/internal/logger"
	"github.com/nbadviser/nbadviser/internal/providers"
	"github.com/nbadviser/nbadviser/internal/render"
	"github.com/nbadviser/nbadviser/internal/services"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.InitLogger(cfg.LogLevel, cfg.IsDevelopment())
	log.WithFields(logrus.Fields{
		"environment": cfg.Env,
		"port":        cfg.Port,
	}).Info("Starting NBAdviser")

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Provider client with the bounded scoreboard cache and circuit
	// breaker at the fetch boundary.
	scoreboardClient, err := providers.NewScoreboardClient(
		cfg.StatsBaseURL,
		cfg.ExternalAPITimeout,
		cfg.ScoreboardCacheSize,
		cfg.CircuitBreakerThreshold,
		log,
	)
	if err != nil {
		log.Fatalf("Failed to create scoreboard client: %v", err)
	}

	gameDay, err := services.NewGameDay(cfg.LeagueTimezone, cfg.CutoffHour)
	if err != nil {
		log.Fatalf("Failed to set up game day resolver: %v", err)
	}

	// Explicit registry, built once; order fixes presentation order.
	registry := services.NewRegistry(
		services.NewCloseGameStrategy(scoreboardClient, gameDay, cfg.AllowedGap, cfg.TopGames, log),
		services.NewTopPerformanceStrategy(scoreboardClient, gameDay, cfg.PerformanceThreshold, log),
	)
	liveGames := services.NewLiveGamesStrategy(scoreboardClient, gameDay, log)

	adviser := services.NewAdviser(registry, liveGames, log)
	renderer := render.NewRenderer(gameDay)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Telegram bot, when a token is configured.
	var tgBot *bot.Bot
	if cfg.BotEnabled() {
		tgBot, err = bot.New(cfg.TelegramToken, cfg.ControlChatID, adviser, renderer, log)
		if err != nil {
			log.Fatalf("Failed to start Telegram bot: %v", err)
		}
		go tgBot.Run(ctx)
	} else {
		log.Warn("TELEGRAM_TOKEN not set, running without the bot")
	}

	// Optional scheduled daily digest to the control chat.
	var digest *cron.Cron
	if cfg.DigestEnabled && tgBot != nil {
		digest = cron.New()
		if _, err := digest.AddFunc(cfg.DigestCron, func() {
			log.Info("Sending scheduled digest")
			tgBot.SendDigest(ctx)
		}); err != nil {
			log.Fatalf("Invalid digest cron spec %q: %v", cfg.DigestCron, err)
		}
		digest.Start()
		log.WithField("schedule", cfg.DigestCron).Info("Daily digest scheduled")
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	recommendationsHandler := handlers.NewRecommendationsHandler(adviser, renderer, log)
	healthHandler := handlers.NewHealthHandler(log)

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/recommendations", recommendationsHandler.GetRecommendations)
		apiV1.GET("/live", recommendationsHandler.GetLiveGames)
	}
	router.GET("/health", healthHandler.GetHealth)
	router.GET("/ready", healthHandler.GetReady)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("HTTP server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down NBAdviser...")
	cancel()
	if digest != nil {
		digest.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("NBAdviser exited")
}
