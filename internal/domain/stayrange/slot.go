package stayrange

import (
	"fmt"
	"time"
)

const NextDayMarker = " +1"

type Slot struct {
	At       time.Time
	Label    string
	NextDay  bool
	Duration time.Duration
}

// SlotPolicy holds the business hours used to generate slots.
type SlotPolicy struct {
	CheckInFloorHour   int
	CheckInCeilingHour int
	CheckOutCutoffHour int
	CheckOutOffsets    []time.Duration
}

func DefaultSlotPolicy() SlotPolicy {
	return SlotPolicy{
		CheckInFloorHour:   6,
		CheckInCeilingHour: 18,
		CheckOutCutoffHour: 21,
		CheckOutOffsets:    []time.Duration{3 * time.Hour, 6 * time.Hour, 9 * time.Hour},
	}
}

// CheckInSlots lists hourly check-in times for date. On the current day the
// current hour and everything before it are skipped, which can leave the list empty.
func (p SlotPolicy) CheckInSlots(date, now time.Time) []Slot {
	day := DateOf(date)
	floor := p.CheckInFloorHour
	if SameDay(day, now) {
		floor = max(floor, now.In(day.Location()).Hour()+1)
	}
	if floor > p.CheckInCeilingHour {
		return []Slot{}
	}

	slots := make([]Slot, 0, p.CheckInCeilingHour-floor+1)
	for hour := floor; hour <= p.CheckInCeilingHour; hour++ {
		at := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
		slots = append(slots, Slot{
			At:    at,
			Label: ClockLabel(at),
		})
	}
	return slots
}

// CheckOutSlots offers the fixed package lengths after checkIn. The cutoff is
// compared against the resulting clock hour, so a check-out that wraps past
// midnight (hour 0..cutoff) is still offered.
func (p SlotPolicy) CheckOutSlots(checkIn time.Time) []Slot {
	slots := make([]Slot, 0, len(p.CheckOutOffsets))
	for _, offset := range p.CheckOutOffsets {
		at := checkIn.Add(offset)
		if at.Hour() > p.CheckOutCutoffHour {
			continue
		}
		nextDay := !SameDay(checkIn, at)
		label := ClockLabel(at)
		if nextDay {
			label += NextDayMarker
		}
		slots = append(slots, Slot{
			At:       at,
			Label:    fmt.Sprintf("%s (%s)", label, DurationLabel(offset)),
			NextDay:  nextDay,
			Duration: offset,
		})
	}
	return slots
}

// Slots returns the options for step. The date step has no slots.
func (p SlotPolicy) Slots(step Step, r TimeRange, now time.Time) []Slot {
	switch step {
	case StepCheckIn:
		if !r.HasDate() {
			return []Slot{}
		}
		return p.CheckInSlots(r.SelectedDate(), now)
	case StepCheckOut:
		if !r.HasStart() {
			return []Slot{}
		}
		return p.CheckOutSlots(r.StartDateTime())
	case StepDate:
		return []Slot{}
	default:
		return []Slot{}
	}
}

func containsSlot(slots []Slot, at time.Time) (Slot, bool) {
	for _, s := range slots {
		if s.At.Equal(at) {
			return s, true
		}
	}
	return Slot{}, false
}

func ClockLabel(t time.Time) string {
	return t.Format("3:04 PM")
}

func DurationLabel(d time.Duration) string {
	hours := int(d / time.Hour)
	if rest := d % time.Hour; rest != 0 {
		return fmt.Sprintf("%dh%02dm", hours, int(rest/time.Minute))
	}
	return fmt.Sprintf("%dh", hours)
}
