//go:build unit

package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"stay-picker/internal/domain/location"
	"stay-picker/internal/infra"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unreachableStore points at a port nothing listens on.
func unreachableStore(t *testing.T) *LocationFixStore {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return NewLocationFixStore(client, 15*time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLocationFixStoreReportsCacheFailures(t *testing.T) {
	ctx := context.Background()
	store := unreachableStore(t)

	fix, err := store.Get(ctx, "device-1")
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindCacheFailure), "got %v", err)
	assert.Nil(t, fix)

	err = store.Put(ctx, "device-1", location.Fix{Point: location.Point{Lat: 35.68, Lng: 139.77}, RecordedAt: time.Now()})
	assert.True(t, infra.IsKind(err, infra.KindCacheFailure), "got %v", err)
}
