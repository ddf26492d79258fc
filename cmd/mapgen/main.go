package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"hypermap/internal/adapters"
	"hypermap/internal/bootstrap"
	errs "hypermap/internal/errors"
	repo "hypermap/internal/repository"
	"hypermap/internal/usecase/mapbuilder"
)

func main() {
	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		logger := NewLogger("info")
		logger.Errorw("Failed to setup configuration", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}

	logger := NewLogger(cfg.LogLevel).With("run_id", uuid.NewString())

	ctx, cancel := context.WithCancel(context.Background())
	go handleShutdown(cancel, logger)

	err = generate(ctx, *cfg, logger)
	cancel()
	if err != nil {
		logger.Errorw("An error occurred while writing the map", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func NewLogger(level string) *zap.SugaredLogger {
	zapCfg := zap.NewProductionConfig()

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	logger, err := zapCfg.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

func generate(ctx context.Context, cfg bootstrap.Config, log *zap.SugaredLogger) error {
	store, closeStore, err := initMapStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(context.Background()); err != nil {
			log.Warnw("failed to close map store", "error", err)
		}
	}()

	return mapbuilder.NewMapUseCase(store, log).Generate(ctx)
}

// initMapStore opens only the backend the configured sink writes to.
func initMapStore(ctx context.Context, cfg bootstrap.Config, log *zap.SugaredLogger) (mapbuilder.MapStore, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	switch cfg.OutputSink {
	case bootstrap.SinkFile:
		return repo.NewFileMapStore(cfg.OutputPath, log), noop, nil

	case bootstrap.SinkRedis:
		redisAdapter := adapters.NewAdapterRedis(&cfg, log)
		if err := redisAdapter.Init(ctx); err != nil {
			_ = redisAdapter.Close(ctx)
			return nil, nil, fmt.Errorf("%w: %w", errs.ErrWriteFailed, err)
		}
		return repo.NewRedisMapStore(redisAdapter.GetClient(), cfg.RedisKey, log), redisAdapter.Close, nil

	case bootstrap.SinkMongo:
		mongoAdapter := adapters.NewAdapterMongo(&cfg, log)
		if err := mongoAdapter.Init(ctx); err != nil {
			return nil, nil, fmt.Errorf("%w: %w", errs.ErrWriteFailed, err)
		}
		store := repo.NewMongoMapStore(mongoAdapter.Database, cfg.MongoCollection, cfg.MapId, log)
		return store, mongoAdapter.Close, nil
	}

	return nil, nil, fmt.Errorf("%w: %q", errs.ErrUnknownSink, cfg.OutputSink)
}

func handleShutdown(cancelFunc context.CancelFunc, log *zap.SugaredLogger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info("Received shutdown signal")
	cancelFunc()
}
