//go:build unit

package stayrange_test

import (
	"testing"
	"time"

	"stay-picker/internal/domain/stayrange"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jst = time.FixedZone("JST", 9*60*60)

func at(day, hour, minute int) time.Time {
	return time.Date(2024, time.June, day, hour, minute, 0, 0, jst)
}

func slotTimes(slots []stayrange.Slot) []time.Time {
	out := make([]time.Time, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.At)
	}
	return out
}

func TestCheckInSlots(t *testing.T) {
	policy := stayrange.DefaultSlotPolicy()

	t.Run("today after 14:30 starts at the next full hour", func(t *testing.T) {
		slots := policy.CheckInSlots(at(10, 0, 0), at(10, 14, 30))

		assert.Equal(t, []time.Time{at(10, 15, 0), at(10, 16, 0), at(10, 17, 0), at(10, 18, 0)}, slotTimes(slots))
		assert.Equal(t, "3:00 PM", slots[0].Label)
		assert.False(t, slots[0].NextDay)
	})

	t.Run("today on the hour skips the current hour", func(t *testing.T) {
		slots := policy.CheckInSlots(at(10, 0, 0), at(10, 15, 0))

		require.NotEmpty(t, slots)
		assert.Equal(t, at(10, 16, 0), slots[0].At)
	})

	t.Run("early morning today keeps the business floor", func(t *testing.T) {
		slots := policy.CheckInSlots(at(10, 0, 0), at(10, 2, 10))

		require.Len(t, slots, 13)
		assert.Equal(t, at(10, 6, 0), slots[0].At)
		assert.Equal(t, at(10, 18, 0), slots[12].At)
	})

	t.Run("future date offers the full day", func(t *testing.T) {
		slots := policy.CheckInSlots(at(11, 0, 0), at(10, 14, 30))

		require.Len(t, slots, 13)
		assert.Equal(t, at(11, 6, 0), slots[0].At)
		assert.Equal(t, "6:00 AM", slots[0].Label)
	})

	t.Run("late today leaves nothing", func(t *testing.T) {
		slots := policy.CheckInSlots(at(10, 0, 0), at(10, 18, 5))

		assert.NotNil(t, slots)
		assert.Empty(t, slots)
	})

	t.Run("date carrying a time is treated as its calendar day", func(t *testing.T) {
		slots := policy.CheckInSlots(at(11, 20, 45), at(10, 14, 30))

		require.NotEmpty(t, slots)
		assert.Equal(t, at(11, 6, 0), slots[0].At)
	})
}

func TestCheckOutSlots(t *testing.T) {
	policy := stayrange.DefaultSlotPolicy()

	t.Run("15:00 check-in keeps the 9h slot that wraps to midnight", func(t *testing.T) {
		slots := policy.CheckOutSlots(at(10, 15, 0))

		require.Len(t, slots, 3)
		assert.Equal(t, []time.Time{at(10, 18, 0), at(10, 21, 0), at(11, 0, 0)}, slotTimes(slots))
		assert.Equal(t, "6:00 PM (3h)", slots[0].Label)
		assert.Equal(t, "9:00 PM (6h)", slots[1].Label)
		assert.Equal(t, "12:00 AM +1 (9h)", slots[2].Label)
		assert.False(t, slots[1].NextDay)
		assert.True(t, slots[2].NextDay)
		assert.Equal(t, 9*time.Hour, slots[2].Duration)
	})

	t.Run("cutoff compares the resulting clock hour", func(t *testing.T) {
		slots := policy.CheckOutSlots(at(10, 16, 0))

		assert.Equal(t, []time.Time{at(10, 19, 0), at(11, 1, 0)}, slotTimes(slots))
	})

	t.Run("morning check-in offers every package", func(t *testing.T) {
		slots := policy.CheckOutSlots(at(10, 6, 0))

		assert.Equal(t, []time.Time{at(10, 9, 0), at(10, 12, 0), at(10, 15, 0)}, slotTimes(slots))
	})

	t.Run("13:00 check-in loses only the 9h package", func(t *testing.T) {
		slots := policy.CheckOutSlots(at(10, 13, 0))

		assert.Equal(t, []time.Time{at(10, 16, 0), at(10, 19, 0)}, slotTimes(slots))
	})
}

func TestSlotsByStep(t *testing.T) {
	policy := stayrange.DefaultSlotPolicy()
	now := at(10, 9, 0)

	empty := stayrange.TimeRange{}
	withDate := empty.WithDate(at(10, 0, 0))
	withStart := withDate.WithStart(at(10, 12, 0))

	assert.Empty(t, policy.Slots(stayrange.StepDate, withStart, now))
	assert.Empty(t, policy.Slots(stayrange.StepCheckIn, empty, now))
	assert.Len(t, policy.Slots(stayrange.StepCheckIn, withDate, now), 9)
	assert.Empty(t, policy.Slots(stayrange.StepCheckOut, withDate, now))
	assert.Len(t, policy.Slots(stayrange.StepCheckOut, withStart, now), 3)
}

func TestDurationLabel(t *testing.T) {
	assert.Equal(t, "3h", stayrange.DurationLabel(3*time.Hour))
	assert.Equal(t, "2h30m", stayrange.DurationLabel(150*time.Minute))
}
