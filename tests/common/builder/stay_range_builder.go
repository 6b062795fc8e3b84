//go:build unit || e2e

package builder

import (
	"time"

	"stay-picker/internal/domain/stayrange"
	reqdto "stay-picker/internal/handler/dto/request"
	"stay-picker/internal/usecase/queries"

	"github.com/google/uuid"
)

// StayRangeBuilder produces a valid 15:00 -> 21:00 stay by default.
type StayRangeBuilder struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Date         time.Time
	StartHour    int
	Length       time.Duration
	MinimumHours int
	CreatedAt    time.Time
}

func NewStayRangeBuilder() *StayRangeBuilder {
	loc := time.FixedZone("JST", 9*60*60)
	return &StayRangeBuilder{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Date:         time.Date(2024, time.June, 10, 0, 0, 0, 0, loc),
		StartHour:    15,
		Length:       6 * time.Hour,
		MinimumHours: stayrange.DefaultMinimumDurationHours,
		CreatedAt:    time.Date(2024, time.June, 1, 12, 0, 0, 0, loc),
	}
}

func (b *StayRangeBuilder) WithUserID(id uuid.UUID) *StayRangeBuilder {
	b.UserID = id
	return b
}

func (b *StayRangeBuilder) WithDate(date time.Time) *StayRangeBuilder {
	b.Date = stayrange.DateOf(date)
	return b
}

func (b *StayRangeBuilder) WithStartHour(hour int) *StayRangeBuilder {
	b.StartHour = hour
	return b
}

func (b *StayRangeBuilder) WithLength(d time.Duration) *StayRangeBuilder {
	b.Length = d
	return b
}

func (b *StayRangeBuilder) WithMinimumHours(h int) *StayRangeBuilder {
	b.MinimumHours = h
	return b
}

func (b *StayRangeBuilder) WithCreatedAt(t time.Time) *StayRangeBuilder {
	b.CreatedAt = t
	return b
}

func (b *StayRangeBuilder) Start() time.Time {
	return b.Date.Add(time.Duration(b.StartHour) * time.Hour)
}

func (b *StayRangeBuilder) End() time.Time {
	return b.Start().Add(b.Length)
}

func (b *StayRangeBuilder) BuildTimeRange() stayrange.TimeRange {
	r, err := stayrange.Restore(b.Date, b.Start(), b.End())
	if err != nil {
		panic(err)
	}
	return r
}

func (b *StayRangeBuilder) BuildDomain() *stayrange.SavedRange {
	return stayrange.ReconstructSavedRange(b.ID, b.UserID, b.BuildTimeRange(), b.MinimumHours, b.CreatedAt)
}

func (b *StayRangeBuilder) BuildViewQuery() *queries.StayRangeView {
	return &queries.StayRangeView{
		ID:           b.ID,
		UserID:       b.UserID,
		Range:        b.BuildTimeRange(),
		MinimumHours: b.MinimumHours,
		CreatedAt:    b.CreatedAt,
	}
}

func (b *StayRangeBuilder) BuildSaveRequestDTO() reqdto.SaveStayRangeRequest {
	return reqdto.SaveStayRangeRequest{
		SelectedDate:         stayrange.FormatDate(b.Date),
		StartDateTime:        stayrange.FormatNaive(b.Start()),
		EndDateTime:          stayrange.FormatNaive(b.End()),
		MinimumDurationHours: b.MinimumHours,
	}
}
