package snapshot

import (
	"context"

	"github.com/muhammadchandra19/quantstream/internal/infrastructure/questdb/snapshot"
)

// Usecase is the interface for the beta snapshot usecase.
type Usecase interface {
	StoreSnapshot(ctx context.Context, s *snapshot.Snapshot) error
	StoreSnapshots(ctx context.Context, snapshots []*snapshot.Snapshot) error
	GetSnapshots(ctx context.Context, filter snapshot.Filter) ([]*snapshot.Snapshot, error)
	GetLatestSnapshot(ctx context.Context, target, reference string) (*snapshot.Snapshot, error)
}
