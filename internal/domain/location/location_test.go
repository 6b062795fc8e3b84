//go:build unit

package location_test

import (
	"math"
	"testing"
	"time"

	"stay-picker/internal/domain/location"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	shinjuku = location.Point{Lat: 35.6896, Lng: 139.7006}
	shibuya  = location.Point{Lat: 35.6580, Lng: 139.7016}
)

func TestNewPoint(t *testing.T) {
	_, err := location.NewPoint(35.6, 139.7)
	require.NoError(t, err)

	for _, tc := range []struct {
		name     string
		lat, lng float64
	}{
		{name: "latitude too high", lat: 91, lng: 0},
		{name: "longitude too low", lat: 0, lng: -181},
		{name: "NaN", lat: math.NaN(), lng: 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := location.NewPoint(tc.lat, tc.lng)
			require.ErrorIs(t, err, location.ErrInvalidPoint)
		})
	}
}

func TestDistanceMeters(t *testing.T) {
	assert.InDelta(t, 0, shinjuku.DistanceMeters(shinjuku), 0.001)
	assert.InDelta(t, 3515, shinjuku.DistanceMeters(shibuya), 50)
	assert.InDelta(t, shibuya.DistanceMeters(shinjuku), shinjuku.DistanceMeters(shibuya), 0.001)
}

func TestNeedsRefresh(t *testing.T) {
	policy := location.DefaultPolicy()
	now := time.Date(2024, time.June, 10, 14, 30, 0, 0, time.UTC)
	nearby := location.Point{Lat: shinjuku.Lat + 0.001, Lng: shinjuku.Lng}

	tests := []struct {
		name    string
		cached  *location.Fix
		current location.Point
		refresh bool
		reason  location.Reason
	}{
		{
			name:    "no cached fix",
			cached:  nil,
			current: shinjuku,
			refresh: true,
			reason:  location.ReasonNoFix,
		},
		{
			name:    "recent fix close by",
			cached:  &location.Fix{Point: shinjuku, RecordedAt: now.Add(-time.Minute)},
			current: nearby,
			refresh: false,
			reason:  location.ReasonFresh,
		},
		{
			name:    "recent fix but moved across town",
			cached:  &location.Fix{Point: shinjuku, RecordedAt: now.Add(-time.Minute)},
			current: shibuya,
			refresh: true,
			reason:  location.ReasonMoved,
		},
		{
			name:    "old fix",
			cached:  &location.Fix{Point: shinjuku, RecordedAt: now.Add(-time.Hour)},
			current: shinjuku,
			refresh: true,
			reason:  location.ReasonExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := policy.NeedsRefresh(tt.cached, tt.current, now)
			assert.Equal(t, tt.refresh, d.Refresh)
			assert.Equal(t, tt.reason, d.Reason)
		})
	}
}
