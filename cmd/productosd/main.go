package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avelasco/productos-client/config"
	"github.com/avelasco/productos-client/internal/devserver"
	"github.com/avelasco/productos-client/pkg/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.Client.AppEnv == "dev" || cfg.Client.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Open the store
	store, err := devserver.NewStore(cfg.DevServer.DBPath)
	if err != nil {
		appLogger.Fatal("could not open product store", zap.Error(err))
	}
	defer store.Close()
	appLogger.Info("opened product store", zap.String("path", cfg.DevServer.DBPath))

	// 4. Start the server
	srv := devserver.NewServer(store, appLogger)

	go func() {
		appLogger.Info("starting dev product server", zap.String("addr", cfg.DevServer.Addr))
		if err := srv.Start(cfg.DevServer.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("shutdown error", zap.Error(err))
	}
	appLogger.Info("server stopped")
}
