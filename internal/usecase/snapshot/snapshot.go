package snapshot

import (
	"context"

	"github.com/muhammadchandra19/quantstream/internal/infrastructure/questdb/snapshot"
	"github.com/muhammadchandra19/quantstream/pkg/errors"
	"github.com/muhammadchandra19/quantstream/pkg/logger"
	"github.com/oklog/ulid/v2"
)

// Usecase is the usecase for beta snapshots.
type Usecase struct {
	snapshotRepository snapshot.SnapshotRepository
	logger             logger.Interface
}

// NewUsecase creates a new snapshot usecase.
func NewUsecase(snapshotRepository snapshot.SnapshotRepository, logger logger.Interface) *Usecase {
	return &Usecase{snapshotRepository: snapshotRepository, logger: logger}
}

// StoreSnapshot stores a beta snapshot, assigning a ULID when none is set.
func (u *Usecase) StoreSnapshot(ctx context.Context, s *snapshot.Snapshot) error {
	if s.ID == "" {
		s.ID = ulid.Make().String()
	}

	if err := u.snapshotRepository.Store(ctx, s); err != nil {
		return errors.TracerFromError(err)
	}
	return nil
}

// StoreSnapshots stores a batch of beta snapshots.
func (u *Usecase) StoreSnapshots(ctx context.Context, snapshots []*snapshot.Snapshot) error {
	for _, s := range snapshots {
		if s.ID == "" {
			s.ID = ulid.Make().String()
		}
	}

	if err := u.snapshotRepository.StoreBatch(ctx, snapshots); err != nil {
		return errors.TracerFromError(err)
	}
	return nil
}

// GetSnapshots gets snapshots for a given filter.
func (u *Usecase) GetSnapshots(ctx context.Context, filter snapshot.Filter) ([]*snapshot.Snapshot, error) {
	snapshots, err := u.snapshotRepository.GetByFilter(ctx, filter)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	return snapshots, nil
}

// GetLatestSnapshot gets the most recent snapshot for a target/reference pair.
func (u *Usecase) GetLatestSnapshot(ctx context.Context, target, reference string) (*snapshot.Snapshot, error) {
	s, err := u.snapshotRepository.GetLatestByPair(ctx, target, reference)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	return s, nil
}
