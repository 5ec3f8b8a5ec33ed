package questdb

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Client defines the interface for QuestDB operations. Repositories depend on
// this interface rather than the concrete pool-backed client.
type Client interface {
	Exec(ctx context.Context, sql string, args ...any) error
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
	Ping(ctx context.Context) error
	Close()
}
