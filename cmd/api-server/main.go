// cmd/api-server/main.go
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

	"go.uber.org/zap"

	"plantscape-service/internal/common/config"
	"plantscape-service/internal/common/database"
	"plantscape-service/internal/common/gemini"
	"plantscape-service/internal/common/logger"
	"plantscape-service/internal/common/observability"
	"plantscape-service/internal/handlers/answer"
	"plantscape-service/internal/handlers/community"
	"plantscape-service/internal/handlers/users"
	"plantscape-service/internal/server"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting plantscape service...",
		zap.String("environment", cfg.App.Environment),
		zap.String("version", cfg.App.Version),
	)

	obs := observability.New("plantscape-service")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Gemini client ---
	geminiClient, err := gemini.New(ctx, cfg.Gemini, log)
	if err != nil {
		zapLog.Fatal("gemini client initialization failed", zap.Error(err))
	}

	// --- Init user store: Redis when configured, in-memory otherwise ---
	var store users.Store
	if cfg.Database.Redis.Enabled {
		var redisClient *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			redisClient, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return redisClient.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")

		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer redisClient.Close()
		zapLog.Info("Redis connected successfully")

		store = users.NewRedisStore(redisClient)
	} else {
		zapLog.Info("Redis disabled, using in-memory user store")
		store = users.NewMemoryStore()
	}

	if err := users.SeedSampleUsers(ctx, store); err != nil {
		zapLog.Fatal("user store seeding failed", zap.Error(err))
	}

	// --- Wire handlers ---
	answerHandler := answer.NewHandler(geminiClient, answer.LoadConfig(), log, obs)

	// Pass a nil interface rather than a nil *gemini.Client so the
	// handler's narrator check holds when narration is disabled.
	communityCfg := community.LoadConfig(cfg.Community)
	var communityHandler *community.Handler
	if cfg.Community.Narrate {
		communityHandler = community.NewHandler(communityCfg, geminiClient, store, log)
	} else {
		communityHandler = community.NewHandler(communityCfg, nil, store, log)
	}

	usersHandler := users.NewHandler(store, log)

	router := server.NewRouter(server.Dependencies{
		Answer:    answerHandler,
		Community: communityHandler,
		Users:     usersHandler,
		Logger:    log,
		Obs:       obs,
		Config:    cfg,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout, 30*time.Second),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout, 120*time.Second),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	// --- Wait for shutdown signal ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLog.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout, 10*time.Second))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}

	zapLog.Info("Shutdown complete")
}
