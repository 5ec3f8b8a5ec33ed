package snapshot

import (
	"context"
	"testing"
	"time"

	snapshotInfra "github.com/muhammadchandra19/quantstream/internal/infrastructure/questdb/snapshot"
	"github.com/muhammadchandra19/quantstream/pkg/logger"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	stored []*snapshotInfra.Snapshot
	err    error
}

func (f *fakeRepository) Store(_ context.Context, s *snapshotInfra.Snapshot) error {
	if f.err != nil {
		return f.err
	}
	f.stored = append(f.stored, s)
	return nil
}

func (f *fakeRepository) StoreBatch(_ context.Context, snapshots []*snapshotInfra.Snapshot) error {
	if f.err != nil {
		return f.err
	}
	f.stored = append(f.stored, snapshots...)
	return nil
}

func (f *fakeRepository) GetByFilter(context.Context, snapshotInfra.Filter) ([]*snapshotInfra.Snapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.stored, nil
}

func (f *fakeRepository) GetLatestByPair(context.Context, string, string) (*snapshotInfra.Snapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.stored) == 0 {
		return nil, errors.New("no snapshots")
	}
	return f.stored[len(f.stored)-1], nil
}

func testSnapshot(beta float64) *snapshotInfra.Snapshot {
	return &snapshotInfra.Snapshot{
		Timestamp: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Target:    "SPY",
		Reference: "QQQ",
		Beta:      beta,
		Ready:     true,
	}
}

func TestUsecase_StoreSnapshot(t *testing.T) {
	t.Run("assigns ULID when missing", func(t *testing.T) {
		repo := &fakeRepository{}
		u := NewUsecase(repo, logger.NewNop())

		s := testSnapshot(1.2)
		require.NoError(t, u.StoreSnapshot(context.Background(), s))

		require.Len(t, repo.stored, 1)
		assert.NotEmpty(t, repo.stored[0].ID)
	})

	t.Run("keeps existing ID", func(t *testing.T) {
		repo := &fakeRepository{}
		u := NewUsecase(repo, logger.NewNop())

		s := testSnapshot(1.2)
		s.ID = "fixed-id"
		require.NoError(t, u.StoreSnapshot(context.Background(), s))

		assert.Equal(t, "fixed-id", repo.stored[0].ID)
	})

	t.Run("wraps repository errors", func(t *testing.T) {
		repo := &fakeRepository{err: errors.New("boom")}
		u := NewUsecase(repo, logger.NewNop())

		err := u.StoreSnapshot(context.Background(), testSnapshot(1.2))
		require.Error(t, err)
		assert.Equal(t, "boom", err.Error())
	})
}

func TestUsecase_StoreSnapshots(t *testing.T) {
	repo := &fakeRepository{}
	u := NewUsecase(repo, logger.NewNop())

	batch := []*snapshotInfra.Snapshot{testSnapshot(1.1), testSnapshot(1.2)}
	require.NoError(t, u.StoreSnapshots(context.Background(), batch))

	require.Len(t, repo.stored, 2)
	assert.NotEmpty(t, repo.stored[0].ID)
	assert.NotEmpty(t, repo.stored[1].ID)
	assert.NotEqual(t, repo.stored[0].ID, repo.stored[1].ID)
}

func TestUsecase_GetLatestSnapshot(t *testing.T) {
	repo := &fakeRepository{}
	u := NewUsecase(repo, logger.NewNop())

	require.NoError(t, u.StoreSnapshot(context.Background(), testSnapshot(1.1)))
	require.NoError(t, u.StoreSnapshot(context.Background(), testSnapshot(1.3)))

	s, err := u.GetLatestSnapshot(context.Background(), "SPY", "QQQ")
	require.NoError(t, err)
	assert.Equal(t, 1.3, s.Beta)
}
