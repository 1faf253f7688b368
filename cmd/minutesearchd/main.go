package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/quorumhq/minutesearch/internal/config"
	"github.com/quorumhq/minutesearch/internal/domain/search/kind"
	logpkg "github.com/quorumhq/minutesearch/internal/logger"
	"github.com/quorumhq/minutesearch/internal/metrics"
	memstore "github.com/quorumhq/minutesearch/internal/store/memory"
	redisstore "github.com/quorumhq/minutesearch/internal/store/redis"
	chiTransport "github.com/quorumhq/minutesearch/internal/transport/chi"
	searchuc "github.com/quorumhq/minutesearch/internal/usecase/search"
	"github.com/quorumhq/minutesearch/internal/version"
)

func main() {
	// Load configuration based on ENV
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

	logger.Info("Starting minutesearch API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	// Create the candidate-record store based on driver
	sources, pinger, closeStore, err := buildStore(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to create record store", zap.Error(err))
	}
	defer closeStore()

	// Register search metrics explicitly (no init())
	metrics.RegisterSearchMetrics()

	// Create the search service — composition root
	searchSvc := searchuc.New(sources, logger)
	if weights, ok := fieldWeightsFromConfig(cfg.Search.FieldWeights); ok {
		searchSvc = searchSvc.WithFieldWeights(weights)
	}
	if len(cfg.Search.TypeLabels) > 0 {
		searchSvc = searchSvc.WithTypeLabels(typeLabelsFromConfig(cfg.Search.TypeLabels))
	}
	if cfg.Search.ContextWindowChars > 0 {
		searchSvc = searchSvc.WithContextWindow(cfg.Search.ContextWindowChars)
	}
	if cfg.Search.MaxFacetValues > 0 {
		searchSvc = searchSvc.WithMaxFacetValues(cfg.Search.MaxFacetValues)
	}

	// Create chi server
	server := chiTransport.NewServer(searchSvc, pinger, logger)

	r := chi.NewRouter()
	r.Use(chiTransport.Recoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(chiTransport.RequestLogger(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Register(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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

// buildStore assembles the record store for the configured driver and
// returns the engine sources, the health pinger and a close func.
func buildStore(cfg config.Config, logger *zap.Logger) (searchuc.Sources, chiTransport.Pinger, func(), error) {
	switch cfg.Database.Driver {
	case "memory":
		store := memstore.NewStore()
		if cfg.Database.SeedFile != "" {
			if err := store.LoadSeed(cfg.Database.SeedFile); err != nil {
				return searchuc.Sources{}, nil, nil, fmt.Errorf("load seed file: %w", err)
			}
			logger.Info("Loaded seed records", zap.String("file", cfg.Database.SeedFile))
		}
		return sourcesFor(store), store, store.Close, nil

	case "redis":
		store, err := redisstore.NewStore(redisstore.Config{
			Addrs:     cfg.Database.Addrs,
			Password:  cfg.Database.Password,
			KeyPrefix: cfg.Database.KeyPrefix,
		})
		if err != nil {
			return searchuc.Sources{}, nil, nil, err
		}

		ctx := context.Background()
		timeout := time.Duration(cfg.Database.ReadinessTimeout) * time.Second
		if err := store.WaitForReady(ctx, timeout); err != nil {
			store.Close()
			return searchuc.Sources{}, nil, nil, fmt.Errorf("database not ready: %w", err)
		}
		logger.Info("Connected to database")
		return sourcesFor(store), store, store.Close, nil

	default:
		return searchuc.Sources{}, nil, nil,
			fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}

// recordStore is the store surface main needs: every driver supplies all
// four record kinds.
type recordStore interface {
	searchuc.MeetingSource
	searchuc.MinutesSource
	searchuc.TranscriptSource
	searchuc.ActionItemSource
}

func sourcesFor(store recordStore) searchuc.Sources {
	return searchuc.Sources{
		Meetings:    store,
		Minutes:     store,
		Transcripts: store,
		ActionItems: store,
	}
}

// fieldWeightsFromConfig maps "<kind>.<field>" keys onto the weight struct.
// Unknown keys are ignored; unset fields keep their defaults.
func fieldWeightsFromConfig(overrides map[string]float64) (searchuc.FieldWeights, bool) {
	if len(overrides) == 0 {
		return searchuc.FieldWeights{}, false
	}

	weights := searchuc.DefaultFieldWeights()
	targets := map[string]*float64{
		"meeting.title":           &weights.MeetingTitle,
		"meeting.description":     &weights.MeetingDescription,
		"meeting.host":            &weights.MeetingHost,
		"minutes.summary":         &weights.MinutesSummary,
		"minutes.content":         &weights.MinutesContent,
		"transcript.text":         &weights.TranscriptText,
		"transcript.speaker":      &weights.TranscriptSpeaker,
		"action_item.title":       &weights.ActionTitle,
		"action_item.description": &weights.ActionDescription,
		"action_item.assignee":    &weights.ActionAssignee,
	}
	for key, w := range overrides {
		if target, ok := targets[key]; ok {
			*target = w
		}
	}
	return weights, true
}

func typeLabelsFromConfig(labels map[string]string) map[kind.Kind]string {
	out := make(map[kind.Kind]string, len(labels))
	for k, label := range labels {
		out[kind.Kind(k)] = label
	}
	return out
}
