package questdb

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/muhammadchandra19/quantstream/pkg/errors"
)

// Config is the QuestDB client configuration. QuestDB speaks the postgres
// wire protocol, hence the pgx-based client.
type Config struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     int    `env:"PORT" envDefault:"8812"`
	Database string `env:"DATABASE" envDefault:"qdb"`
	Username string `env:"USERNAME" envDefault:"admin"`
	Password string `env:"PASSWORD" envDefault:"quest"`

	MaxConns        int32         `env:"MAX_CONNS" envDefault:"10"`
	MinConns        int32         `env:"MIN_CONNS" envDefault:"2"`
	MaxConnLifetime time.Duration `env:"MAX_CONN_LIFETIME" envDefault:"1h"`
	ConnectTimeout  time.Duration `env:"CONNECT_TIMEOUT" envDefault:"10s"`

	MigrationsDir string `env:"MIGRATIONS_DIR" envDefault:"internal/infrastructure/questdb/migrations"`
}

// client is the pgxpool-backed implementation of Client.
type client struct {
	pool *pgxpool.Pool
}

var _ Client = (*client)(nil)

// NewClient creates a new QuestDB client and verifies the connection.
func NewClient(ctx context.Context, config Config) (Client, error) {
	connString := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		config.Username,
		config.Password,
		config.Host,
		config.Port,
		config.Database,
	)

	pgxConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, errors.NewErrorDetails(err.Error(), errors.QuestDBConnectionError, "config")
	}

	pgxConfig.MaxConns = config.MaxConns
	pgxConfig.MinConns = config.MinConns
	pgxConfig.MaxConnLifetime = config.MaxConnLifetime
	pgxConfig.ConnConfig.ConnectTimeout = config.ConnectTimeout

	pool, err := pgxpool.New(ctx, pgxConfig.ConnString())
	if err != nil {
		return nil, errors.NewErrorDetails(err.Error(), errors.QuestDBConnectionError, "pool")
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.NewErrorDetails(err.Error(), errors.QuestDBConnectionError, "ping")
	}

	return &client{pool: pool}, nil
}

// Exec executes a query without returning any rows.
func (c *client) Exec(ctx context.Context, sql string, args ...any) error {
	_, err := c.pool.Exec(ctx, sql, args...)
	return err
}

// Query executes a query that returns rows.
func (c *client) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return c.pool.Query(ctx, sql, args...)
}

// QueryRow executes a query that is expected to return at most one row.
func (c *client) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return c.pool.QueryRow(ctx, sql, args...)
}

// CopyFrom wraps the pool's CopyFrom method for batch inserts.
func (c *client) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return c.pool.CopyFrom(ctx, tableName, columnNames, rowSrc)
}

// Ping pings the connection pool.
func (c *client) Ping(ctx context.Context) error {
	return c.pool.Ping(ctx)
}

// Close closes the connection pool.
func (c *client) Close() {
	if c.pool != nil {
		c.pool.Close()
	}
}
