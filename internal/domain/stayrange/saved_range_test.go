//go:build unit

package stayrange_test

import (
	"testing"
	"time"

	"stay-picker/internal/domain/stayrange"
	"stay-picker/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type savedRangeCase struct {
	name   string
	mutate func(*builder.StayRangeBuilder)
	errIs  error
}

func runSavedRangeCases(t *testing.T, cases []savedRangeCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewStayRangeBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			now := b.CreatedAt

			saved, err := stayrange.NewSavedRange(b.UserID, b.BuildTimeRange(), stayrange.NewValidator(b.MinimumHours), now)

			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, saved)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, b.ID, saved.ID())
			assert.Equal(t, b.UserID, saved.UserID())
			assert.True(t, saved.TimeRange().Equal(b.BuildTimeRange()))
			assert.Equal(t, b.MinimumHours, saved.MinimumHours())
			assert.Equal(t, now, saved.CreatedAt())
		})
	}
}

func TestNewSavedRange(t *testing.T) {
	runSavedRangeCases(t, []savedRangeCase{
		{name: "default stay"},
		{
			name:   "stay crossing midnight",
			mutate: func(b *builder.StayRangeBuilder) { b.WithLength(9 * time.Hour) },
		},
		{
			name:   "stay exactly at the minimum",
			mutate: func(b *builder.StayRangeBuilder) { b.WithLength(3 * time.Hour).WithMinimumHours(3) },
		},
		{
			name:   "stay shorter than the minimum",
			mutate: func(b *builder.StayRangeBuilder) { b.WithLength(3 * time.Hour).WithMinimumHours(4) },
			errIs:  stayrange.ErrMinimumDurationNotMet,
		},
	})
}

func TestNewSavedRangeRejectsIncompleteRange(t *testing.T) {
	b := builder.NewStayRangeBuilder()
	partial := stayrange.TimeRange{}.WithDate(b.Date).WithStart(b.Start())

	_, err := stayrange.NewSavedRange(b.UserID, partial, stayrange.NewValidator(2), b.CreatedAt)

	require.ErrorIs(t, err, stayrange.ErrInvalidTimeRange)
}

func TestNewValidatorFallsBackToDefault(t *testing.T) {
	assert.Equal(t, stayrange.DefaultMinimumDurationHours, stayrange.NewValidator(0).MinimumHours())
	assert.Equal(t, stayrange.DefaultMinimumDurationHours, stayrange.NewValidator(-3).MinimumHours())
	assert.Equal(t, 4*time.Hour, stayrange.NewValidator(4).MinimumDuration())
}
