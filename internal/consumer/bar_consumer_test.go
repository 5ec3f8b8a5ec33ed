package consumer

import (
	"context"
	"testing"
	"time"

	barv1 "github.com/muhammadchandra19/quantstream/internal/domain/bar-consumer/v1"
	marketv1 "github.com/muhammadchandra19/quantstream/internal/domain/market/v1"
	snapshotInfra "github.com/muhammadchandra19/quantstream/internal/infrastructure/questdb/snapshot"
	"github.com/muhammadchandra19/quantstream/internal/usecase/beta"
	"github.com/muhammadchandra19/quantstream/pkg/errors"
	"github.com/muhammadchandra19/quantstream/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSnapshotUsecase struct {
	stored []*snapshotInfra.Snapshot
}

func (f *fakeSnapshotUsecase) StoreSnapshot(_ context.Context, s *snapshotInfra.Snapshot) error {
	f.stored = append(f.stored, s)
	return nil
}

func (f *fakeSnapshotUsecase) StoreSnapshots(_ context.Context, snapshots []*snapshotInfra.Snapshot) error {
	f.stored = append(f.stored, snapshots...)
	return nil
}

func (f *fakeSnapshotUsecase) GetSnapshots(context.Context, snapshotInfra.Filter) ([]*snapshotInfra.Snapshot, error) {
	return f.stored, nil
}

func (f *fakeSnapshotUsecase) GetLatestSnapshot(context.Context, string, string) (*snapshotInfra.Snapshot, error) {
	if len(f.stored) == 0 {
		return nil, nil
	}
	return f.stored[len(f.stored)-1], nil
}

type fakeCache struct {
	sets map[string]any
}

func (f *fakeCache) Ping(context.Context) error { return nil }

func (f *fakeCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	if f.sets == nil {
		f.sets = map[string]any{}
	}
	f.sets[key] = value
	return nil
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	v, ok := f.sets[key]
	if !ok {
		return "", errors.NewErrorDetails("key not found", errors.RedisGetError, key)
	}
	return v.(string), nil
}

func (f *fakeCache) Close() error { return nil }

func barEvent(ticker string, day int, close float64) *barv1.RawBarEvent {
	start := time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)
	return &barv1.RawBarEvent{
		Ticker:       ticker,
		Market:       marketv1.MarketUSA,
		SecurityType: string(marketv1.SecurityTypeEquity),
		StartTime:    start,
		EndTime:      start.Add(24 * time.Hour),
		Close:        close,
	}
}

func newTestConsumer(t *testing.T) (*BarConsumer, *fakeSnapshotUsecase, *fakeCache) {
	t.Helper()

	target := marketv1.Symbol{Ticker: "SPY", Market: marketv1.MarketUSA, SecurityType: marketv1.SecurityTypeEquity}
	reference := marketv1.Symbol{Ticker: "QQQ", Market: marketv1.MarketUSA, SecurityType: marketv1.SecurityTypeEquity}

	indicator, err := beta.New("beta-test", target, reference, 2)
	require.NoError(t, err)

	usecase := &fakeSnapshotUsecase{}
	cache := &fakeCache{}

	return &BarConsumer{
		logger:          logger.NewNop(),
		indicator:       indicator,
		snapshotUsecase: usecase,
		cache:           cache,
		target:          "SPY",
		reference:       "QQQ",
	}, usecase, cache
}

func TestBarConsumer_HandleBar(t *testing.T) {
	c, usecase, cache := newTestConsumer(t)
	ctx := context.Background()

	require.NoError(t, c.handleBar(ctx, barEvent("SPY", 1, 100)))
	require.NoError(t, c.handleBar(ctx, barEvent("QQQ", 1, 50)))

	// Every consumed bar produces one snapshot of the current estimate.
	require.Len(t, usecase.stored, 2)
	assert.Equal(t, "SPY", usecase.stored[0].Target)
	assert.Equal(t, "QQQ", usecase.stored[0].Reference)
	assert.Equal(t, 0.0, usecase.stored[1].Beta)
	assert.False(t, usecase.stored[1].Ready)

	// The latest value lands in the cache under the pair key.
	v, err := cache.Get(ctx, "beta:latest:SPY:QQQ")
	require.NoError(t, err)
	assert.Equal(t, "0", v)
}

func TestBarConsumer_HandleBar_InvalidEvent(t *testing.T) {
	c, usecase, _ := newTestConsumer(t)

	event := barEvent("SPY", 1, 100)
	event.Close = -1

	err := c.handleBar(context.Background(), event)
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, errors.ErrInvalidBar))
	assert.Empty(t, usecase.stored)
}

func TestBarConsumer_HandleBar_UnknownSymbol(t *testing.T) {
	c, usecase, _ := newTestConsumer(t)

	err := c.handleBar(context.Background(), barEvent("MSFT", 1, 100))
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, errors.ErrUnknownSymbol))
	assert.Empty(t, usecase.stored)
}

func TestBarConsumer_HandleBar_ReachesReadiness(t *testing.T) {
	c, usecase, cache := newTestConsumer(t)
	ctx := context.Background()

	targetCloses := []float64{100, 102, 101}
	referenceCloses := []float64{50, 50.5, 50.2}

	for i := range targetCloses {
		require.NoError(t, c.handleBar(ctx, barEvent("SPY", i+1, targetCloses[i])))
		require.NoError(t, c.handleBar(ctx, barEvent("QQQ", i+1, referenceCloses[i])))
	}

	// Three pairs fill a period of two returns.
	last := usecase.stored[len(usecase.stored)-1]
	assert.True(t, last.Ready)
	assert.NotEqual(t, 0.0, last.Beta)

	v, err := cache.Get(ctx, "beta:latest:SPY:QQQ")
	require.NoError(t, err)
	assert.NotEqual(t, "0", v)
}
