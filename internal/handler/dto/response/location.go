package response

import "stay-picker/internal/usecase/commands"

type LocationCheckResponse struct {
	Refresh        bool    `json:"refresh"`
	Reason         string  `json:"reason"`
	DistanceMeters float64 `json:"distanceMeters"`
}

func FromLocationCheckResult(r *commands.LocationCheckResult) *LocationCheckResponse {
	return &LocationCheckResponse{
		Refresh:        r.Refresh,
		Reason:         string(r.Reason),
		DistanceMeters: r.DistanceMeters,
	}
}
