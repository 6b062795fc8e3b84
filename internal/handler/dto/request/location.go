package request

import "stay-picker/internal/domain/location"

// LocationCheckRequest is the coarse position; the device comes from the X-Device-ID header.
type LocationCheckRequest struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lng *float64 `json:"lng" binding:"required"`
}

func (r *LocationCheckRequest) ToDomain() (location.Point, error) {
	return location.NewPoint(*r.Lat, *r.Lng)
}
