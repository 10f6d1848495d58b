package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	ocrpb "github.com/werb210/ocr-reconciler/gen/proto/ocr/v1"
	"github.com/werb210/ocr-reconciler/internal/cache"
	"github.com/werb210/ocr-reconciler/internal/common"
	"github.com/werb210/ocr-reconciler/internal/export"
	"github.com/werb210/ocr-reconciler/internal/fields"
	"github.com/werb210/ocr-reconciler/internal/ingest"
	"github.com/werb210/ocr-reconciler/internal/insights"
	"github.com/werb210/ocr-reconciler/internal/reconcile"
	repo "github.com/werb210/ocr-reconciler/internal/repository"
	svc "github.com/werb210/ocr-reconciler/internal/server"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	documentsRepo := repo.NewDocumentRepository(entc, logger)
	resultsRepo := repo.NewOCRResultRepository(entc, logger)

	registry := fields.Default()
	engine := reconcile.NewEngine(registry, logger).
		WithMaxGroupDocs(cfg.Reconcile.MaxGroupDocs)

	var insightsCache *cache.InsightsCache
	if cfg.Cache.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Cache.Addr})
		insightsCache = cache.NewInsightsCache(rdb, cfg.Cache.TTL, logger)
		logger.Info("insights cache enabled", "addr", cfg.Cache.Addr, "ttl", cfg.Cache.TTL)
	}

	insightsSvc := insights.NewService(documentsRepo, resultsRepo, engine, registry, insightsCache, logger)
	ingestor := ingest.NewUsecase(resultsRepo, logger)
	exporter := export.NewService(insightsSvc, logger)

	// gRPC server
	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()
	ocrpb.RegisterOcrInsightsServiceServer(grpcServer, svc.NewInsightsService(insightsSvc, resultsRepo, ingestor, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("ocrd gRPC listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	// HTTP server for the portal UI
	httpServer := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: svc.NewRouter(insightsSvc, exporter, logger),
	}
	logger.Info("ocrd HTTP listening", "addr", cfg.Server.HTTPAddr)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
}
