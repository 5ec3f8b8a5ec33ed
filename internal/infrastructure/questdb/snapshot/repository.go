package snapshot

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/muhammadchandra19/quantstream/pkg/questdb"
)

// Repository persists beta snapshots in QuestDB.
type Repository struct {
	client questdb.Client
}

var _ SnapshotRepository = (*Repository)(nil)

// NewRepository creates a new snapshot repository.
func NewRepository(client questdb.Client) *Repository {
	return &Repository{
		client: client,
	}
}

// Store stores a single beta snapshot.
func (r *Repository) Store(ctx context.Context, snapshot *Snapshot) error {
	query := `INSERT INTO beta_snapshots (id, timestamp, target, reference, beta, ready)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	err := r.client.Exec(ctx, query,
		snapshot.ID, snapshot.Timestamp, snapshot.Target, snapshot.Reference, snapshot.Beta, snapshot.Ready)

	if err != nil {
		return fmt.Errorf("failed to store beta snapshot: %w", err)
	}

	return nil
}

// StoreBatch stores a batch of beta snapshots using CopyFrom.
func (r *Repository) StoreBatch(ctx context.Context, snapshots []*Snapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	_, err := r.client.CopyFrom(
		ctx,
		pgx.Identifier{"beta_snapshots"},
		[]string{"id", "timestamp", "target", "reference", "beta", "ready"},
		pgx.CopyFromSlice(len(snapshots), func(i int) ([]any, error) {
			s := snapshots[i]
			return []any{
				s.ID,
				s.Timestamp,
				s.Target,
				s.Reference,
				s.Beta,
				s.Ready,
			}, nil
		}),
	)

	if err != nil {
		return fmt.Errorf("failed to copy beta snapshots: %w", err)
	}

	return nil
}

// GetByFilter retrieves beta snapshots by filter.
func (r *Repository) GetByFilter(ctx context.Context, filter Filter) ([]*Snapshot, error) {
	query := "SELECT id, timestamp, target, reference, beta, ready FROM beta_snapshots WHERE 1=1"
	args := []any{}
	argIndex := 1

	if filter.Target != "" {
		query += fmt.Sprintf(" AND target = $%d", argIndex)
		args = append(args, filter.Target)
		argIndex++
	}

	if filter.Reference != "" {
		query += fmt.Sprintf(" AND reference = $%d", argIndex)
		args = append(args, filter.Reference)
		argIndex++
	}

	if filter.From != nil {
		query += fmt.Sprintf(" AND timestamp >= $%d", argIndex)
		args = append(args, *filter.From)
		argIndex++
	}

	if filter.To != nil {
		query += fmt.Sprintf(" AND timestamp <= $%d", argIndex)
		args = append(args, *filter.To)
		argIndex++
	}

	query += " ORDER BY timestamp DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, filter.Limit)
	}

	rows, err := r.client.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query beta snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []*Snapshot
	for rows.Next() {
		s := &Snapshot{}
		err := rows.Scan(&s.ID, &s.Timestamp, &s.Target, &s.Reference, &s.Beta, &s.Ready)
		if err != nil {
			return nil, fmt.Errorf("failed to scan beta snapshot: %w", err)
		}
		snapshots = append(snapshots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return snapshots, nil
}

// GetLatestByPair retrieves the most recent snapshot for a target/reference pair.
func (r *Repository) GetLatestByPair(ctx context.Context, target, reference string) (*Snapshot, error) {
	query := `SELECT id, timestamp, target, reference, beta, ready
			  FROM beta_snapshots
			  WHERE target = $1 AND reference = $2
			  ORDER BY timestamp DESC
			  LIMIT 1`

	s := &Snapshot{}
	err := r.client.QueryRow(ctx, query, target, reference).Scan(
		&s.ID, &s.Timestamp, &s.Target, &s.Reference, &s.Beta, &s.Ready)

	if err != nil {
		return nil, fmt.Errorf("failed to get latest beta snapshot: %w", err)
	}

	return s, nil
}
