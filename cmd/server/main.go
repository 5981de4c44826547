package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/IT22898920/GYM-App-sub004/internal/config"
	"github.com/IT22898920/GYM-App-sub004/internal/infrastructure/database"
	httpServer "github.com/IT22898920/GYM-App-sub004/internal/infrastructure/http"
	"github.com/IT22898920/GYM-App-sub004/internal/infrastructure/provider/card"
	"github.com/IT22898920/GYM-App-sub004/internal/infrastructure/storage"
	"github.com/IT22898920/GYM-App-sub004/internal/metrics"
	"github.com/IT22898920/GYM-App-sub004/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Output:      cfg.Log.Output,
		FilePath:    cfg.Log.FilePath,
		Development: cfg.Log.Development,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	metrics.Register()

	db, err := database.NewConnection(cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db, zapLogger); err != nil {
			zapLogger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	if err := database.Migrate(db); err != nil {
		zapLogger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	repos := database.NewRepositories(db, zapLogger)

	receiptDir := cfg.Service.ReceiptDir
	if receiptDir == "" {
		receiptDir = "./data/receipts"
	}
	receipts, err := storage.NewLocalReceiptStore(receiptDir, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to initialize receipt store", zap.Error(err))
	}

	cardProcessor, err := card.NewProcessor(&cfg.Service, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to initialize card processor", zap.Error(err))
	}
	zapLogger.Info("Card processor ready", zap.String("provider", cardProcessor.Name()))

	fees, err := cfg.Service.ParsePlanFees()
	if err != nil {
		zapLogger.Fatal("Invalid plan fee configuration", zap.Error(err))
	}
	if len(fees) == 0 {
		zapLogger.Fatal("No membership plans configured")
	}

	srv := httpServer.NewServer(cfg, zapLogger, repos, receipts, cardProcessor, fees)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	zapLogger.Info("Shutting down server...")

	shutdownTimeout := cfg.Server.HTTP.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Failed to shutdown HTTP server", zap.Error(err))
	}

	zapLogger.Info("Server shut down successfully")
}
