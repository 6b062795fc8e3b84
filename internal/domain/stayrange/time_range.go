package stayrange

import "time"

// TimeRange is the caller-owned result of the picker. Zero fields mean "not chosen yet".
type TimeRange struct {
	selectedDate  time.Time
	startDateTime time.Time
	endDateTime   time.Time
}

// Restore rebuilds a range that crossed a boundary (request body, database row).
// It rejects ranges whose fields were filled out of order or point at the wrong day.
func Restore(selectedDate, startDateTime, endDateTime time.Time) (TimeRange, error) {
	r := TimeRange{}
	if selectedDate.IsZero() {
		if !startDateTime.IsZero() || !endDateTime.IsZero() {
			return TimeRange{}, ErrInvalidTimeRange
		}
		return r, nil
	}
	r.selectedDate = DateOf(selectedDate)

	if startDateTime.IsZero() {
		if !endDateTime.IsZero() {
			return TimeRange{}, ErrInvalidTimeRange
		}
		return r, nil
	}
	if !SameDay(r.selectedDate, startDateTime) || startDateTime.Minute() != 0 || startDateTime.Second() != 0 {
		return TimeRange{}, ErrInvalidTimeRange
	}
	r.startDateTime = startDateTime

	if endDateTime.IsZero() {
		return r, nil
	}
	if !endDateTime.After(startDateTime) {
		return TimeRange{}, ErrInvalidTimeRange
	}
	r.endDateTime = endDateTime
	return r, nil
}

// WithDate sets the date and drops any times picked for the previous date.
func (r TimeRange) WithDate(date time.Time) TimeRange {
	return TimeRange{selectedDate: DateOf(date)}
}

// WithStart sets check-in and drops the previous check-out.
func (r TimeRange) WithStart(start time.Time) TimeRange {
	return TimeRange{selectedDate: r.selectedDate, startDateTime: start}
}

func (r TimeRange) WithEnd(end time.Time) TimeRange {
	r.endDateTime = end
	return r
}

func (r TimeRange) SelectedDate() time.Time  { return r.selectedDate }
func (r TimeRange) StartDateTime() time.Time { return r.startDateTime }
func (r TimeRange) EndDateTime() time.Time   { return r.endDateTime }

func (r TimeRange) HasDate() bool  { return !r.selectedDate.IsZero() }
func (r TimeRange) HasStart() bool { return !r.startDateTime.IsZero() }
func (r TimeRange) HasEnd() bool   { return !r.endDateTime.IsZero() }

func (r TimeRange) IsEmpty() bool {
	return !r.HasDate() && !r.HasStart() && !r.HasEnd()
}

func (r TimeRange) IsComplete() bool {
	return r.HasDate() && r.HasStart() && r.HasEnd()
}

func (r TimeRange) Duration() time.Duration {
	if !r.HasStart() || !r.HasEnd() {
		return 0
	}
	return r.endDateTime.Sub(r.startDateTime)
}

func (r TimeRange) StartLabel() string {
	if !r.HasStart() {
		return ""
	}
	return ClockLabel(r.startDateTime)
}

func (r TimeRange) EndLabel() string {
	if !r.HasEnd() {
		return ""
	}
	label := ClockLabel(r.endDateTime)
	if !SameDay(r.startDateTime, r.endDateTime) {
		label += NextDayMarker
	}
	return label
}

// Equal compares instants, so ranges restored in different locations still match.
func (r TimeRange) Equal(other TimeRange) bool {
	return r.selectedDate.Equal(other.selectedDate) &&
		r.startDateTime.Equal(other.startDateTime) &&
		r.endDateTime.Equal(other.endDateTime)
}

// DateOf truncates t to midnight in its own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay compares calendar days in a's location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}
