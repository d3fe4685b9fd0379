package main

// @title Station Microservice API
// @version 1.0.0
// @description Microservice for the Thai railway station dataset. Ingests the
// @description public data.go.th station feed into PostGIS and serves
// @description nearest-station proximity queries with pagination.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/station-microservice/docs"
	"github.com/station-microservice/internal/config"
	httpDelivery "github.com/station-microservice/internal/delivery/http"
	"github.com/station-microservice/internal/delivery/http/handler"
	"github.com/station-microservice/internal/infrastructure/datagovth"
	"github.com/station-microservice/internal/pkg/logger"
	"github.com/station-microservice/internal/pkg/metrics"
	"github.com/station-microservice/internal/repository/postgres"
	"github.com/station-microservice/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Station Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(cfg, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Health check
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	log.Info("PostgreSQL healthy")

	// 5. Metrics
	collector := metrics.NewCollector()
	var metricsSrv *http.Server
	if cfg.Metrics.Enabled {
		metricsSrv = collector.Serve(cfg.GetMetricsAddr(), log)
	}

	// 6. Initialize repositories and the feed client
	stationRepo := postgres.NewStationRepository(db)
	feedClient := datagovth.NewClient(&cfg.Feed, log)

	// 7. Initialize use cases
	ingestUC := usecase.NewIngestUseCase(feedClient, stationRepo, log, collector)
	stationUC := usecase.NewStationUseCase(stationRepo, log, collector)

	// 8. Initialize HTTP handler and server
	stationHandler := handler.NewStationHandler(stationUC, ingestUC, log)
	server := httpDelivery.NewServer(cfg, log, stationHandler)

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if metricsSrv != nil {
		if err := metricsSrv.Shutdown(ctx); err != nil {
			log.Error("Metrics server shutdown error", zap.Error(err))
		}
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close PostgreSQL connection", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
