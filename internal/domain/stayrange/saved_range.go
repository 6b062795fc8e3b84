package stayrange

import (
	"time"

	"github.com/google/uuid"
)

// SavedRange is a committed range kept for a guest so the picker can reopen with it.
type SavedRange struct {
	id           uuid.UUID
	userID       uuid.UUID
	timeRange    TimeRange
	minimumHours int
	createdAt    time.Time
}

func NewSavedRange(userID uuid.UUID, r TimeRange, v Validator, now time.Time) (*SavedRange, error) {
	if err := v.ValidateCommitted(r); err != nil {
		return nil, err
	}
	return &SavedRange{
		id:           uuid.New(),
		userID:       userID,
		timeRange:    r,
		minimumHours: v.MinimumHours(),
		createdAt:    now,
	}, nil
}

func ReconstructSavedRange(
	id, userID uuid.UUID,
	r TimeRange,
	minimumHours int,
	createdAt time.Time,
) *SavedRange {
	return &SavedRange{
		id:           id,
		userID:       userID,
		timeRange:    r,
		minimumHours: minimumHours,
		createdAt:    createdAt,
	}
}

func (s *SavedRange) ID() uuid.UUID        { return s.id }
func (s *SavedRange) UserID() uuid.UUID    { return s.userID }
func (s *SavedRange) TimeRange() TimeRange { return s.timeRange }
func (s *SavedRange) MinimumHours() int    { return s.minimumHours }
func (s *SavedRange) CreatedAt() time.Time { return s.createdAt }
