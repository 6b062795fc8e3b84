// Package location decides when a client should ask the device for a fresh
// geolocation fix instead of reusing the one it already sent.
package location

import (
	"errors"
	"math"
	"time"
)

var ErrInvalidPoint = errors.New("coordinates out of range")

const earthRadiusMeters = 6371000.0

type Point struct {
	Lat float64
	Lng float64
}

func NewPoint(lat, lng float64) (Point, error) {
	if math.IsNaN(lat) || math.IsNaN(lng) || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Point{}, ErrInvalidPoint
	}
	return Point{Lat: lat, Lng: lng}, nil
}

// DistanceMeters is the great-circle (haversine) distance between p and q.
func (p Point) DistanceMeters(q Point) float64 {
	lat1 := p.Lat * math.Pi / 180
	lat2 := q.Lat * math.Pi / 180
	dLat := (q.Lat - p.Lat) * math.Pi / 180
	dLng := (q.Lng - p.Lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMeters * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Fix is the last position a device reported.
type Fix struct {
	Point      Point
	RecordedAt time.Time
}

type Policy struct {
	DistanceThresholdMeters float64
	MaxAge                  time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		DistanceThresholdMeters: 500,
		MaxAge:                  15 * time.Minute,
	}
}

type Decision struct {
	Refresh        bool
	Reason         Reason
	DistanceMeters float64
}

type Reason string

const (
	ReasonNoFix   Reason = "no_fix"
	ReasonExpired Reason = "expired"
	ReasonMoved   Reason = "moved"
	ReasonFresh   Reason = "fresh"
)

// NeedsRefresh compares the cached fix with a coarse current position.
func (p Policy) NeedsRefresh(cached *Fix, current Point, now time.Time) Decision {
	if cached == nil {
		return Decision{Refresh: true, Reason: ReasonNoFix}
	}
	distance := cached.Point.DistanceMeters(current)
	if p.MaxAge > 0 && now.Sub(cached.RecordedAt) > p.MaxAge {
		return Decision{Refresh: true, Reason: ReasonExpired, DistanceMeters: distance}
	}
	if distance > p.DistanceThresholdMeters {
		return Decision{Refresh: true, Reason: ReasonMoved, DistanceMeters: distance}
	}
	return Decision{Refresh: false, Reason: ReasonFresh, DistanceMeters: distance}
}
