package questdb

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/muhammadchandra19/quantstream/pkg/logger"
)

// RunMigrations applies every .sql file in dir against the client, in
// lexical filename order. Files are expected to be idempotent (CREATE TABLE
// IF NOT EXISTS style); there is no applied-migrations bookkeeping.
func RunMigrations(ctx context.Context, client Client, dir string, log logger.Interface) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}

	sort.Strings(files)

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return err
		}

		if err := client.Exec(ctx, string(content)); err != nil {
			return err
		}

		log.Info("applied migration", logger.Field{Key: "file", Value: file})
	}

	return nil
}
