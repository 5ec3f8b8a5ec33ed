package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/muhammadchandra19/quantstream/internal/consumer"
	marketv1 "github.com/muhammadchandra19/quantstream/internal/domain/market/v1"
	snapshotInfra "github.com/muhammadchandra19/quantstream/internal/infrastructure/questdb/snapshot"
	"github.com/muhammadchandra19/quantstream/internal/usecase/beta"
	snapshotUc "github.com/muhammadchandra19/quantstream/internal/usecase/snapshot"
	"github.com/muhammadchandra19/quantstream/pkg/config"
	"github.com/muhammadchandra19/quantstream/pkg/logger"
	"github.com/muhammadchandra19/quantstream/pkg/questdb"
	"github.com/muhammadchandra19/quantstream/pkg/redis"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lg, err := logger.NewLogger(logger.WithLoggingLevel(logger.Level(cfg.App.LogLevel)))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer lg.Sync()

	questdbClient, err := questdb.NewClient(ctx, cfg.QuestDB)
	if err != nil {
		lg.Error(err, logger.Field{Key: "action", Value: "init_questdb"})
		os.Exit(1)
	}
	defer questdbClient.Close()

	redisClient, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		lg.Error(err, logger.Field{Key: "action", Value: "init_redis"})
		os.Exit(1)
	}
	defer redisClient.Close()

	target := marketv1.Symbol{
		Ticker:       cfg.Beta.TargetTicker,
		Market:       cfg.Beta.TargetMarket,
		SecurityType: marketv1.SecurityType(cfg.Beta.TargetSecurityType),
	}
	reference := marketv1.Symbol{
		Ticker:       cfg.Beta.ReferenceTicker,
		Market:       cfg.Beta.ReferenceMarket,
		SecurityType: marketv1.SecurityType(cfg.Beta.ReferenceSecurityType),
	}

	indicator, err := beta.New(cfg.App.Name, target, reference, cfg.Beta.Period)
	if err != nil {
		lg.Error(err, logger.Field{Key: "action", Value: "init_indicator"})
		os.Exit(1)
	}

	snapshotRepo := snapshotInfra.NewRepository(questdbClient)
	snapshotUsecase := snapshotUc.NewUsecase(snapshotRepo, lg)

	barConsumer := consumer.NewBarConsumer(
		cfg.BarKafka,
		cfg.Beta,
		lg,
		indicator,
		snapshotUsecase,
		redisClient,
	)

	go barConsumer.Start(ctx)
	go barConsumer.Subscribe(ctx)

	lg.Info("beta-stream started",
		logger.Field{Key: "target", Value: target.Ticker},
		logger.Field{Key: "reference", Value: reference.Ticker},
		logger.Field{Key: "period", Value: cfg.Beta.Period},
		logger.Field{Key: "warm_up_period", Value: indicator.WarmUpPeriod()},
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	lg.Info("shutting down beta-stream")
	cancel()

	if err := barConsumer.Stop(); err != nil {
		lg.Error(err, logger.Field{Key: "action", Value: "stop_consumer"})
	}

	lg.Info("beta-stream stopped")
}
