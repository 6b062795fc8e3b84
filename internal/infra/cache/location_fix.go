package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"stay-picker/internal/domain/location"
	"stay-picker/internal/infra"

	"github.com/go-redis/redis/v8"
)

const locationFixPrefix = "location:fix:"

type locationFixRecord struct {
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	RecordedAt time.Time `json:"recorded_at"`
}

// LocationFixStore keeps the last fix per device. Entries expire after ttl so
// an abandoned device never looks fresh.
type LocationFixStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewLocationFixStore(client *redis.Client, ttl time.Duration, logger *slog.Logger) *LocationFixStore {
	return &LocationFixStore{client: client, ttl: ttl, logger: logger}
}

// Get returns nil without error when the device has no fix.
func (s *LocationFixStore) Get(ctx context.Context, deviceID string) (*location.Fix, error) {
	data, err := s.client.Get(ctx, locationFixPrefix+deviceID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindCacheFailure, "failed to read location fix", err)
	}

	var rec locationFixRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDecodeFailed, "failed to decode location fix", err)
	}
	return &location.Fix{
		Point:      location.Point{Lat: rec.Lat, Lng: rec.Lng},
		RecordedAt: rec.RecordedAt,
	}, nil
}

func (s *LocationFixStore) Put(ctx context.Context, deviceID string, fix location.Fix) error {
	b, err := json.Marshal(locationFixRecord{
		Lat:        fix.Point.Lat,
		Lng:        fix.Point.Lng,
		RecordedAt: fix.RecordedAt,
	})
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDecodeFailed, "failed to encode location fix", err)
	}
	if err := s.client.Set(ctx, locationFixPrefix+deviceID, b, s.ttl).Err(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindCacheFailure, "failed to store location fix", err)
	}
	return nil
}
