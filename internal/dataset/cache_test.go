package dataset

import (
	"context"
	"errors"
	"testing"
	"time"

	"obesitydash/domain/survey"
	"obesitydash/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_ZeroTTLReloadsEveryTime(t *testing.T) {
	source := testkit.NewStaticSource(testkit.ScenarioTable())
	cache := NewCache(source, 0, nil)

	for i := 0; i < 3; i++ {
		table, err := cache.LoadTable(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 3, table.Len())
	}
	assert.Equal(t, 3, source.Loads())
}

func TestCache_TTL(t *testing.T) {
	source := testkit.NewStaticSource(testkit.ScenarioTable())
	cache := NewCache(source, time.Minute, nil)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	_, err := cache.LoadTable(context.Background())
	require.NoError(t, err)
	_, err = cache.LoadTable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, source.Loads())

	now = now.Add(time.Minute)
	_, err = cache.LoadTable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, source.Loads())

	cache.Invalidate()
	_, err = cache.LoadTable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, source.Loads())
}

func TestCache_ErrorsAreNotCached(t *testing.T) {
	source := testkit.NewStaticSource(testkit.ScenarioTable())
	source.Err = errors.New("disk unavailable")
	cache := NewCache(source, time.Hour, nil)

	_, err := cache.LoadTable(context.Background())
	require.Error(t, err)

	source.Err = nil
	table, err := cache.LoadTable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())
	assert.Equal(t, "static", cache.Describe())
}

// blockingSource holds every load until release is closed.
type blockingSource struct {
	*testkit.StaticSource
	started chan struct{}
	release chan struct{}
}

func (s *blockingSource) LoadTable(ctx context.Context) (*survey.Table, error) {
	s.started <- struct{}{}
	<-s.release
	return s.StaticSource.LoadTable(ctx)
}

func TestCache_CancelledCallerDoesNotFailSharedLoad(t *testing.T) {
	source := &blockingSource{
		StaticSource: testkit.NewStaticSource(testkit.ScenarioTable()),
		started:      make(chan struct{}, 1),
		release:      make(chan struct{}),
	}
	cache := NewCache(source, 0, nil)

	firstCtx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := cache.LoadTable(firstCtx)
		firstErr <- err
	}()
	<-source.started

	secondErr := make(chan error, 1)
	go func() {
		table, err := cache.LoadTable(context.Background())
		if err == nil && table.Len() != 3 {
			err = errors.New("unexpected table size")
		}
		secondErr <- err
	}()

	cancel()
	close(source.release)

	assert.NoError(t, <-firstErr)
	assert.NoError(t, <-secondErr)
}

func TestCache_LoadIgnoresCallerCancellation(t *testing.T) {
	source := testkit.NewStaticSource(testkit.ScenarioTable())
	cache := NewCache(source, 0, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	table, err := cache.LoadTable(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())
}
