//go:build unit

package queries_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"stay-picker/internal/domain/stayrange"
	"stay-picker/internal/infra"
	"stay-picker/internal/pkg/clock"
	"stay-picker/internal/pkg/errs"
	"stay-picker/internal/usecase/queries"
	"stay-picker/internal/usecase/shared"
	"stay-picker/tests/common/builder"
	queriesmock "stay-picker/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var jst = time.FixedZone("JST", 9*60*60)

func at(day, hour int) time.Time {
	return time.Date(2024, time.June, day, hour, 0, 0, 0, jst)
}

func newQueries(t *testing.T, now time.Time) (*queriesmock.MockStayRangeReadStore, queries.StayPickerQueries) {
	ctrl := gomock.NewController(t)
	repo := queriesmock.NewMockStayRangeReadStore(ctrl)
	settings := shared.PickerSettings{Policy: stayrange.DefaultSlotPolicy(), MinimumDurationHours: 2}
	return repo, queries.NewStayPickerQueries(repo, settings, clock.NewMockClock(now))
}

func slotHours(slots []stayrange.Slot) []int {
	out := make([]int, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.At.Hour())
	}
	return out
}

func TestCheckInSlots(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name      string
		now       time.Time
		date      time.Time
		wantHours []int
		noSlots   bool
	}{
		{name: "afternoon today", now: at(10, 14).Add(30 * time.Minute), date: at(10, 0), wantHours: []int{15, 16, 17, 18}},
		{name: "tomorrow", now: at(10, 14), date: at(11, 0), wantHours: []int{6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}},
		{name: "late evening today", now: at(10, 19), date: at(10, 0), wantHours: []int{}, noSlots: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, q := newQueries(t, tc.now)

			view, err := q.CheckInSlots(ctx, tc.date)

			require.NoError(t, err)
			assert.Equal(t, stayrange.StepCheckIn, view.Step)
			if diff := cmp.Diff(tc.wantHours, slotHours(view.Slots)); diff != "" {
				t.Errorf("slot hours mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tc.noSlots, view.NoSlotsAvailable)
		})
	}

	t.Run("past date is unavailable", func(t *testing.T) {
		_, q := newQueries(t, at(10, 9))

		_, err := q.CheckInSlots(ctx, at(9, 0))

		require.True(t, errs.Is(err, errs.ErrUnavailableSelection), "got %v", err)
	})
}

func TestCheckOutSlots(t *testing.T) {
	ctx := context.Background()

	t.Run("offered check-in lists its packages", func(t *testing.T) {
		_, q := newQueries(t, at(10, 9))

		view, err := q.CheckOutSlots(ctx, at(10, 15))

		require.NoError(t, err)
		assert.Equal(t, stayrange.StepCheckOut, view.Step)
		assert.Equal(t, []int{18, 21, 0}, slotHours(view.Slots))
		assert.True(t, view.Slots[2].NextDay)
	})

	t.Run("check-in that already passed is unavailable", func(t *testing.T) {
		_, q := newQueries(t, at(10, 16))

		_, err := q.CheckOutSlots(ctx, at(10, 15))

		require.True(t, errs.Is(err, errs.ErrUnavailableSelection), "got %v", err)
	})

	t.Run("check-in off the hour grid is unavailable", func(t *testing.T) {
		_, q := newQueries(t, at(10, 9))

		_, err := q.CheckOutSlots(ctx, at(10, 15).Add(30*time.Minute))

		require.True(t, errs.Is(err, errs.ErrUnavailableSelection), "got %v", err)
	})
}

func TestLatestStayRange(t *testing.T) {
	ctx := context.Background()

	t.Run("maps the saved range to a view", func(t *testing.T) {
		repo, q := newQueries(t, at(10, 9))
		b := builder.NewStayRangeBuilder()
		repo.EXPECT().FindLatestByUser(gomock.Any(), b.UserID).Return(b.BuildDomain(), nil).Times(1)

		view, err := q.LatestStayRange(ctx, b.UserID)

		require.NoError(t, err)
		want := b.BuildViewQuery()
		assert.Equal(t, want.ID, view.ID)
		assert.Equal(t, want.UserID, view.UserID)
		assert.True(t, want.Range.Equal(view.Range))
		assert.Equal(t, want.MinimumHours, view.MinimumHours)
		assert.Equal(t, want.CreatedAt, view.CreatedAt)
	})

	t.Run("missing row becomes not found", func(t *testing.T) {
		repo, q := newQueries(t, at(10, 9))
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		repo.EXPECT().FindLatestByUser(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr(logger, infra.KindNotFound, "stay range not found", nil)).Times(1)

		view, err := q.LatestStayRange(ctx, uuid.New())

		require.True(t, errs.Is(err, errs.ErrStayRangeNotFound), "got %v", err)
		assert.Nil(t, view)
	})

	t.Run("unexpected errors pass through", func(t *testing.T) {
		repo, q := newQueries(t, at(10, 9))
		boom := errors.New("boom")
		repo.EXPECT().FindLatestByUser(gomock.Any(), gomock.Any()).Return(nil, boom).Times(1)

		_, err := q.LatestStayRange(ctx, uuid.New())

		require.ErrorIs(t, err, boom)
	})
}
