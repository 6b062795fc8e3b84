//go:build unit

package stayrange_test

import (
	"testing"
	"time"

	"stay-picker/internal/domain/stayrange"
	"stay-picker/internal/pkg/clock"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openWizard(t *testing.T, initial stayrange.TimeRange, minimumHours int) (*stayrange.Wizard, *[]stayrange.TimeRange, *[]stayrange.TimeRange) {
	t.Helper()
	var commits, clears []stayrange.TimeRange
	w := stayrange.Open(initial, stayrange.Options{
		MinimumDurationHours: minimumHours,
		Listener: stayrange.Listener{
			OnCommit: func(r stayrange.TimeRange) { commits = append(commits, r) },
			OnClear:  func(r stayrange.TimeRange) { clears = append(clears, r) },
		},
	}, clock.NewMockClock(at(10, 14, 30)))
	return w, &commits, &clears
}

func completeRange(t *testing.T) stayrange.TimeRange {
	t.Helper()
	r, err := stayrange.Restore(at(10, 0, 0), at(10, 15, 0), at(10, 21, 0))
	require.NoError(t, err)
	return r
}

func TestWizardHappyPath(t *testing.T) {
	w, commits, _ := openWizard(t, stayrange.TimeRange{}, 0)
	assert.Equal(t, stayrange.StepDate, w.Step())

	out, err := w.SelectDate(at(10, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, stayrange.StepCheckIn, out.Step)
	assert.Equal(t, at(10, 15, 0), w.Slots()[0].At)

	out, err = w.SelectCheckIn(at(10, 15, 0))
	require.NoError(t, err)
	assert.Equal(t, stayrange.StepCheckOut, out.Step)
	assert.Len(t, w.Slots(), 3)

	out, err = w.SelectCheckOut(at(10, 18, 0))
	require.NoError(t, err)
	assert.True(t, out.Committed)
	assert.True(t, out.Closed)
	assert.True(t, w.Closed())

	require.Len(t, *commits, 1)
	committed := (*commits)[0]
	assert.True(t, committed.IsComplete())
	assert.True(t, stayrange.SameDay(committed.SelectedDate(), committed.StartDateTime()))
	assert.GreaterOrEqual(t, committed.Duration(), w.Validator().MinimumDuration())
	assert.Empty(t, cmp.Diff(committed, out.Range))
}

func TestWizardInvalidatesDownstream(t *testing.T) {
	t.Run("new date clears both times", func(t *testing.T) {
		w, _, _ := openWizard(t, completeRange(t), 0)

		out, err := w.SelectDate(at(12, 0, 0))
		require.NoError(t, err)
		assert.Equal(t, at(12, 0, 0), out.Range.SelectedDate())
		assert.False(t, out.Range.HasStart())
		assert.False(t, out.Range.HasEnd())
	})

	t.Run("new check-in clears check-out", func(t *testing.T) {
		w, _, _ := openWizard(t, completeRange(t), 0)

		_, err := w.GoTo(stayrange.StepCheckIn)
		require.NoError(t, err)
		out, err := w.SelectCheckIn(at(10, 16, 0))
		require.NoError(t, err)
		assert.Equal(t, at(10, 16, 0), out.Range.StartDateTime())
		assert.False(t, out.Range.HasEnd())
	})
}

func TestWizardNavigation(t *testing.T) {
	t.Run("backward navigation keeps downstream data", func(t *testing.T) {
		w, _, _ := openWizard(t, stayrange.TimeRange{}, 0)
		_, err := w.SelectDate(at(10, 0, 0))
		require.NoError(t, err)
		_, err = w.SelectCheckIn(at(10, 15, 0))
		require.NoError(t, err)

		out, err := w.GoTo(stayrange.StepDate)
		require.NoError(t, err)
		assert.Equal(t, stayrange.StepDate, out.Step)
		assert.Equal(t, at(10, 15, 0), out.Range.StartDateTime())

		out, err = w.GoTo(stayrange.StepCheckOut)
		require.NoError(t, err)
		assert.Equal(t, stayrange.StepCheckOut, out.Step)
	})

	t.Run("steps without prerequisites are unavailable", func(t *testing.T) {
		w, _, _ := openWizard(t, stayrange.TimeRange{}, 0)

		assert.False(t, w.CanGoTo(stayrange.StepCheckIn))
		_, err := w.GoTo(stayrange.StepCheckOut)
		require.ErrorIs(t, err, stayrange.ErrStepUnavailable)
		assert.Equal(t, stayrange.StepDate, w.Step())
	})

	t.Run("unknown step is rejected", func(t *testing.T) {
		w, _, _ := openWizard(t, stayrange.TimeRange{}, 0)

		_, err := w.GoTo(stayrange.Step("payment"))
		require.ErrorIs(t, err, stayrange.ErrInvalidStep)
	})

	t.Run("selections outside their step are rejected", func(t *testing.T) {
		w, _, _ := openWizard(t, stayrange.TimeRange{}, 0)

		_, err := w.SelectCheckIn(at(10, 15, 0))
		require.ErrorIs(t, err, stayrange.ErrStepUnavailable)
		_, err = w.SelectCheckOut(at(10, 18, 0))
		require.ErrorIs(t, err, stayrange.ErrStepUnavailable)
	})
}

func TestWizardRejectsUnavailableSelections(t *testing.T) {
	w, _, _ := openWizard(t, stayrange.TimeRange{}, 0)

	_, err := w.SelectDate(at(9, 0, 0))
	require.ErrorIs(t, err, stayrange.ErrDateUnavailable)
	assert.Equal(t, stayrange.StepDate, w.Step())

	_, err = w.SelectDate(at(10, 0, 0))
	require.NoError(t, err)

	_, err = w.SelectCheckIn(at(10, 14, 0))
	require.ErrorIs(t, err, stayrange.ErrSlotUnavailable)
	assert.Equal(t, stayrange.StepCheckIn, w.Step())

	_, err = w.SelectCheckIn(at(10, 15, 0))
	require.NoError(t, err)

	_, err = w.SelectCheckOut(at(10, 19, 0))
	require.ErrorIs(t, err, stayrange.ErrSlotUnavailable)
	assert.Equal(t, stayrange.StepCheckOut, w.Step())
}

func TestWizardMinimumDuration(t *testing.T) {
	w, commits, _ := openWizard(t, stayrange.TimeRange{}, 6)
	_, err := w.SelectDate(at(10, 0, 0))
	require.NoError(t, err)
	_, err = w.SelectCheckIn(at(10, 15, 0))
	require.NoError(t, err)

	out, err := w.SelectCheckOut(at(10, 18, 0))
	require.ErrorIs(t, err, stayrange.ErrMinimumDurationNotMet)
	assert.False(t, out.Committed)
	assert.Equal(t, stayrange.StepCheckOut, w.Step())
	assert.False(t, w.Draft().HasEnd())
	assert.False(t, w.Closed())
	assert.Empty(t, *commits)

	out, err = w.SelectCheckOut(at(10, 21, 0))
	require.NoError(t, err)
	assert.True(t, out.Committed)
	assert.Len(t, *commits, 1)
}

func TestWizardClear(t *testing.T) {
	steps := []stayrange.Step{stayrange.StepDate, stayrange.StepCheckIn, stayrange.StepCheckOut}
	for _, step := range steps {
		t.Run("from "+step.String(), func(t *testing.T) {
			w, _, clears := openWizard(t, completeRange(t), 0)
			_, err := w.GoTo(step)
			require.NoError(t, err)

			out, err := w.Clear()
			require.NoError(t, err)
			assert.True(t, out.Cleared)
			assert.True(t, out.Range.IsEmpty())
			assert.Equal(t, stayrange.StepDate, w.Step())
			require.Len(t, *clears, 1)
			assert.True(t, (*clears)[0].IsEmpty())
		})
	}

	t.Run("close after clear reports the empty range", func(t *testing.T) {
		w, _, _ := openWizard(t, completeRange(t), 0)
		_, err := w.Clear()
		require.NoError(t, err)

		out, err := w.Close()
		require.NoError(t, err)
		assert.True(t, out.Range.IsEmpty())
	})
}

func TestWizardClose(t *testing.T) {
	t.Run("close without taps leaves the caller's range unchanged", func(t *testing.T) {
		original := completeRange(t)
		w, commits, _ := openWizard(t, original, 0)

		out, err := w.Close()
		require.NoError(t, err)
		assert.True(t, out.Closed)
		assert.False(t, out.Committed)
		assert.Empty(t, cmp.Diff(original, out.Range))
		assert.Empty(t, *commits)
	})

	t.Run("partial selection is discarded on close", func(t *testing.T) {
		original := completeRange(t)
		w, _, _ := openWizard(t, original, 0)
		_, err := w.SelectDate(at(12, 0, 0))
		require.NoError(t, err)

		out, err := w.Close()
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(original, out.Range))
	})

	t.Run("events after close fail", func(t *testing.T) {
		w, _, _ := openWizard(t, stayrange.TimeRange{}, 0)
		_, err := w.Close()
		require.NoError(t, err)

		_, err = w.SelectDate(at(10, 0, 0))
		require.ErrorIs(t, err, stayrange.ErrWizardClosed)
		_, err = w.Clear()
		require.ErrorIs(t, err, stayrange.ErrWizardClosed)
	})
}

func TestWizardRecommitIsIdempotent(t *testing.T) {
	pick := func(initial stayrange.TimeRange) stayrange.TimeRange {
		w, _, _ := openWizard(t, initial, 0)
		for _, ev := range []stayrange.Event{
			{Kind: stayrange.EventSelectDate, Date: at(10, 0, 0)},
			{Kind: stayrange.EventSelectCheckIn, At: at(10, 15, 0)},
			{Kind: stayrange.EventSelectCheckOut, At: at(11, 0, 0)},
		} {
			_, err := w.Apply(ev)
			require.NoError(t, err)
		}
		require.True(t, w.Closed())
		return w.Draft()
	}

	first := pick(stayrange.TimeRange{})
	second := pick(first)

	assert.Empty(t, cmp.Diff(first, second))
	assert.Equal(t, "12:00 AM +1", second.EndLabel())
}

func TestWizardApplyUnknownEvent(t *testing.T) {
	w, _, _ := openWizard(t, stayrange.TimeRange{}, 0)

	_, err := w.Apply(stayrange.Event{Kind: "teleport"})
	require.ErrorIs(t, err, stayrange.ErrInvalidEvent)
}

func TestResume(t *testing.T) {
	mc := clock.NewMockClock(at(10, 14, 30))
	draft, err := stayrange.Restore(at(10, 0, 0), at(10, 15, 0), time.Time{})
	require.NoError(t, err)

	t.Run("resumes at a reachable step", func(t *testing.T) {
		w, err := stayrange.Resume(stayrange.StepCheckOut, draft, stayrange.TimeRange{}, stayrange.Options{}, mc)
		require.NoError(t, err)
		assert.Equal(t, stayrange.StepCheckOut, w.Step())

		out, err := w.SelectCheckOut(at(10, 21, 0))
		require.NoError(t, err)
		assert.True(t, out.Committed)
	})

	t.Run("rejects a step whose prerequisite is missing", func(t *testing.T) {
		_, err := stayrange.Resume(stayrange.StepCheckOut, stayrange.TimeRange{}, stayrange.TimeRange{}, stayrange.Options{}, mc)
		require.ErrorIs(t, err, stayrange.ErrStepUnavailable)
	})

	t.Run("rejects an unknown step", func(t *testing.T) {
		_, err := stayrange.Resume(stayrange.Step("summary"), draft, stayrange.TimeRange{}, stayrange.Options{}, mc)
		require.ErrorIs(t, err, stayrange.ErrInvalidStep)
	})

	t.Run("close returns the held range, not the draft", func(t *testing.T) {
		held := completeRange(t)
		w, err := stayrange.Resume(stayrange.StepCheckIn, draft, held, stayrange.Options{}, mc)
		require.NoError(t, err)

		out, err := w.Close()
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(held, out.Range))
	})

	t.Run("no check-in slots late in the day", func(t *testing.T) {
		late := clock.NewMockClock(at(10, 19, 0))
		dateOnly := stayrange.TimeRange{}.WithDate(at(10, 0, 0))
		w, err := stayrange.Resume(stayrange.StepCheckIn, dateOnly, stayrange.TimeRange{}, stayrange.Options{}, late)
		require.NoError(t, err)

		assert.True(t, w.NoSlotsAvailable())
		assert.Empty(t, w.Slots())
	})
}

func TestWizardDateOnlyOnDateStep(t *testing.T) {
	w, _, _ := openWizard(t, stayrange.TimeRange{}, 0)
	_, err := w.SelectDate(at(10, 0, 0))
	require.NoError(t, err)
	_, err = w.SelectCheckIn(at(10, 15, 0))
	require.NoError(t, err)

	_, err = w.SelectDate(at(12, 0, 0))
	require.ErrorIs(t, err, stayrange.ErrStepUnavailable)
	assert.Equal(t, stayrange.StepCheckOut, w.Step())
	assert.Equal(t, at(10, 15, 0), w.Draft().StartDateTime())

	_, err = w.GoTo(stayrange.StepDate)
	require.NoError(t, err)
	out, err := w.SelectDate(at(12, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, stayrange.StepCheckIn, out.Step)
	assert.False(t, out.Range.HasStart())
}

func TestReplay(t *testing.T) {
	clk := clock.NewMockClock(at(10, 14, 30))
	mustRestore := func(date, start, end time.Time) stayrange.TimeRange {
		r, err := stayrange.Restore(date, start, end)
		require.NoError(t, err)
		return r
	}

	cases := []struct {
		name    string
		r       stayrange.TimeRange
		minimum int
		wantErr error
	}{
		{name: "range the wizard offers", r: completeRange(t)},
		{name: "check-out past midnight", r: mustRestore(at(11, 0, 0), at(11, 15, 0), at(12, 0, 0))},
		{name: "past date", r: mustRestore(at(9, 0, 0), at(9, 15, 0), at(9, 18, 0)), wantErr: stayrange.ErrDateUnavailable},
		{name: "check-in after the ceiling", r: mustRestore(at(11, 0, 0), at(11, 23, 0), at(12, 2, 0)), wantErr: stayrange.ErrSlotUnavailable},
		{name: "check-in hour already passed", r: mustRestore(at(10, 0, 0), at(10, 14, 0), at(10, 17, 0)), wantErr: stayrange.ErrSlotUnavailable},
		{name: "check-out not offered", r: mustRestore(at(11, 0, 0), at(11, 15, 0), at(11, 20, 0)), wantErr: stayrange.ErrSlotUnavailable},
		{name: "below the minimum", r: completeRange(t), minimum: 9, wantErr: stayrange.ErrMinimumDurationNotMet},
		{name: "incomplete", r: mustRestore(at(11, 0, 0), at(11, 15, 0), time.Time{}), wantErr: stayrange.ErrInvalidTimeRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := stayrange.Replay(tc.r, stayrange.Options{MinimumDurationHours: tc.minimum}, clk)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}
