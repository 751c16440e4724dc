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

	"github.com/kailas-cloud/vecsense/internal/config"
	"github.com/kailas-cloud/vecsense/internal/corpus"
	"github.com/kailas-cloud/vecsense/internal/db"
	dbRedis "github.com/kailas-cloud/vecsense/internal/db/redis"
	"github.com/kailas-cloud/vecsense/internal/domain"
	"github.com/kailas-cloud/vecsense/internal/domain/article"
	"github.com/kailas-cloud/vecsense/internal/domain/search/method"
	logpkg "github.com/kailas-cloud/vecsense/internal/logger"
	"github.com/kailas-cloud/vecsense/internal/metrics"
	"github.com/kailas-cloud/vecsense/internal/ml/linear"
	documentrepo "github.com/kailas-cloud/vecsense/internal/repository/document"
	chiTransport "github.com/kailas-cloud/vecsense/internal/transport/chi"
	classifyuc "github.com/kailas-cloud/vecsense/internal/usecase/classify"
	documentuc "github.com/kailas-cloud/vecsense/internal/usecase/document"
	healthuc "github.com/kailas-cloud/vecsense/internal/usecase/health"
	searchuc "github.com/kailas-cloud/vecsense/internal/usecase/search"
	"github.com/kailas-cloud/vecsense/internal/version"
)

func main() {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting vecsense API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Bool("db_enabled", cfg.Database.Enabled()),
	)

	ctx := context.Background()

	// Persistence is optional: without it the document API answers 501.
	var store db.Store
	if cfg.Database.Enabled() {
		rs, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Database.Addrs,
			Username: cfg.Database.Username,
			Password: cfg.Database.Password,
			DB:       cfg.Database.DB,
		})
		if err != nil {
			logger.Fatal("Failed to create database store", zap.Error(err))
		}
		defer rs.Close()

		if err := rs.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
			logger.Fatal("Database not ready", zap.Error(err))
		}
		logger.Info("Connected to database",
			zap.String("driver", cfg.Database.Driver),
			zap.Strings("addrs", cfg.Database.Addrs),
		)
		store = rs
	}

	// Register metrics explicitly (no init())
	metrics.RegisterEmbeddingMetrics()
	metrics.RegisterSearchMetrics()
	metrics.RegisterClassifierMetrics()

	router, err := buildRouter(cfg.Embedding, store, logger)
	if err != nil {
		logger.Fatal("Failed to build embedders", zap.Error(err))
	}

	searchMethods, _ := method.ParseAll(cfg.Search.Methods) // validated in config
	searchSvc := searchuc.New(corpus.LegalDocuments(), router, searchuc.Config{
		Model:     domain.EmbeddingModel(cfg.Search.Model),
		TopK:      cfg.Search.TopK,
		MMRLambda: cfg.Search.MMRLambda,
		Methods:   searchMethods,
	}, logger)

	lin := linear.Config{
		Iterations:   cfg.Classifier.Iterations,
		LearningRate: cfg.Classifier.LearningRate,
	}
	if err := lin.Validate(); err != nil {
		logger.Fatal("Invalid classifier config", zap.Error(err))
	}
	registry := classifyuc.NewRegistry(article.CategoryNames(), lin.Factory(), logger)
	classifySvc := classifyuc.New(corpus.TrainingArticles(), router, registry, classifyuc.Config{
		TestSplit: cfg.Classifier.TestSplit,
		Seed:      cfg.Classifier.Seed,
	}, logger)

	// Pass nil interfaces (not typed nil pointers) when there is no database.
	var (
		docRepo documentuc.Repository
		pinger  healthuc.DBPinger
	)
	if store != nil {
		docRepo = documentrepo.New(store)
		pinger = store
	}
	documentSvc := documentuc.New(docRepo, router, domain.EmbeddingModel(cfg.Search.Model), logger)
	healthSvc := healthuc.New(pinger, router, logger)

	server := chiTransport.NewServer(searchSvc, classifySvc, documentSvc, healthSvc, logger)
	handler := chiTransport.NewRouter(server, cfg.Auth.APIKeys, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}
