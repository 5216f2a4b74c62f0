package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lpernett/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sessionpulse/ratebot-go/handlers"
	"github.com/sessionpulse/ratebot-go/utils"
)

func init() {
	// A missing .env just means we run off the real environment.
	_ = godotenv.Load()
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// User-typed dates are interpreted in one fixed operating time zone
	// regardless of where the process runs.
	tzName := os.Getenv("BOT_TZ")
	if tzName == "" {
		tzName = "Europe/London"
	}
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		logger.Fatal("Invalid BOT_TZ", zap.String("tz", tzName), zap.Error(err))
	}

	streamName := os.Getenv("STREAM_NAME")
	if streamName == "" {
		logger.Fatal("STREAM_NAME environment variable not set")
	}

	// TABLE_NAME is read for parity with the deployment config; the
	// location allow-list stays in code until the migration lands.
	if tableName := os.Getenv("TABLE_NAME"); tableName != "" {
		logger.Info("Location table configured but not yet consulted",
			zap.String("table", tableName))
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:        os.Getenv("REDIS_HOST"),
		Password:    os.Getenv("REDIS_PASSWORD"),
		DB:          0,
		DialTimeout: 20 * time.Second, // initial connection timeout
	})

	redisCtx, cancelRedis := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelRedis()

	if _, err := redisClient.Ping(redisCtx).Result(); err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	logger.Info("Successfully connected to Redis")

	bot := handlers.NewBot(
		logger,
		utils.NewSentimentClient(),
		utils.NewStreamPublisher(redisClient, streamName),
		loc,
		time.Now().UnixNano(),
	)

	r := chi.NewRouter()
	r.Post("/turn", bot.HandleTurn)
	r.Get("/turn/ws", bot.HandleTurnSocket)
	r.Get("/healthz", handlers.HandleHealth)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + os.Getenv("PORT")
	if port == ":" {
		port = ":8080"
	}

	server := &http.Server{Addr: port, Handler: r}

	// Set up signal handling
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverExit := make(chan struct{})

	go func() {
		logger.Info("Starting server", zap.String("addr", port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server exited", zap.Error(err))
		}
		close(serverExit)
	}()

	select {
	case <-stop:
		logger.Info("Shutting down server...")
	case <-serverExit:
		logger.Info("Server exited unexpectedly...")
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}

	logger.Info("Server shut down gracefully")
}
