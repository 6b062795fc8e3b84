package queries

import (
	"context"
	"time"

	"stay-picker/internal/domain/stayrange"
	"stay-picker/internal/pkg/clock"
	"stay-picker/internal/usecase/shared"

	"github.com/google/uuid"
)

type SlotsView struct {
	Step             stayrange.Step
	Slots            []stayrange.Slot
	NoSlotsAvailable bool
}

type StayRangeView struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Range        stayrange.TimeRange
	MinimumHours int
	CreatedAt    time.Time
}

type StayRangeReadStore interface {
	FindLatestByUser(ctx context.Context, userID uuid.UUID) (*stayrange.SavedRange, error)
}

type StayPickerQueries interface {
	CheckInSlots(ctx context.Context, date time.Time) (*SlotsView, error)
	CheckOutSlots(ctx context.Context, checkIn time.Time) (*SlotsView, error)
	LatestStayRange(ctx context.Context, userID uuid.UUID) (*StayRangeView, error)
}

type stayPickerQueriesImpl struct {
	repo     StayRangeReadStore
	settings shared.PickerSettings
	clock    clock.Clock
}

func NewStayPickerQueries(repo StayRangeReadStore, settings shared.PickerSettings, clk clock.Clock) StayPickerQueries {
	return &stayPickerQueriesImpl{repo: repo, settings: settings, clock: clk}
}

func (q *stayPickerQueriesImpl) CheckInSlots(_ context.Context, date time.Time) (*SlotsView, error) {
	w := stayrange.Open(stayrange.TimeRange{}, q.settings.Options(0), q.clock)
	if _, err := w.SelectDate(date); err != nil {
		return nil, shared.MarkDomainErr(err)
	}
	return &SlotsView{
		Step:             w.Step(),
		Slots:            w.Slots(),
		NoSlotsAvailable: w.NoSlotsAvailable(),
	}, nil
}

// CheckOutSlots only answers for a check-in the picker would currently offer.
func (q *stayPickerQueriesImpl) CheckOutSlots(_ context.Context, checkIn time.Time) (*SlotsView, error) {
	w := stayrange.Open(stayrange.TimeRange{}, q.settings.Options(0), q.clock)
	if _, err := w.SelectDate(checkIn); err != nil {
		return nil, shared.MarkDomainErr(err)
	}
	if _, err := w.SelectCheckIn(checkIn); err != nil {
		return nil, shared.MarkDomainErr(err)
	}
	return &SlotsView{
		Step:             w.Step(),
		Slots:            w.Slots(),
		NoSlotsAvailable: w.NoSlotsAvailable(),
	}, nil
}

func (q *stayPickerQueriesImpl) LatestStayRange(ctx context.Context, userID uuid.UUID) (*StayRangeView, error) {
	saved, err := q.repo.FindLatestByUser(ctx, userID)
	if err != nil {
		return nil, shared.MarkDomainErr(err)
	}
	return &StayRangeView{
		ID:           saved.ID(),
		UserID:       saved.UserID(),
		Range:        saved.TimeRange(),
		MinimumHours: saved.MinimumHours(),
		CreatedAt:    saved.CreatedAt(),
	}, nil
}
