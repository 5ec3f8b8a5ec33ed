package main

import (
	"context"
	"log"
	"os"

	"github.com/muhammadchandra19/quantstream/pkg/config"
	"github.com/muhammadchandra19/quantstream/pkg/logger"
	"github.com/muhammadchandra19/quantstream/pkg/questdb"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lg, err := logger.NewLogger(logger.WithLoggingLevel(logger.Level(cfg.App.LogLevel)))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer lg.Sync()

	client, err := questdb.NewClient(ctx, cfg.QuestDB)
	if err != nil {
		lg.Error(err, logger.Field{Key: "action", Value: "init_questdb"})
		os.Exit(1)
	}
	defer client.Close()

	if err := questdb.RunMigrations(ctx, client, cfg.QuestDB.MigrationsDir, lg); err != nil {
		lg.Error(err, logger.Field{Key: "action", Value: "run_migrations"})
		os.Exit(1)
	}

	lg.Info("migrations completed")
}
