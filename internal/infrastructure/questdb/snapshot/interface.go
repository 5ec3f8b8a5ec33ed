package snapshot

import (
	"context"
)

// SnapshotRepository is the interface for the beta snapshot repository.
type SnapshotRepository interface {
	Store(ctx context.Context, snapshot *Snapshot) error
	StoreBatch(ctx context.Context, snapshots []*Snapshot) error
	GetByFilter(ctx context.Context, filter Filter) ([]*Snapshot, error)
	GetLatestByPair(ctx context.Context, target, reference string) (*Snapshot, error)
}
