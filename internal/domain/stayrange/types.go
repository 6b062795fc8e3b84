package stayrange

import (
	"errors"
	"time"
)

var (
	ErrMinimumDurationNotMet = errors.New("minimum stay duration not met")
	ErrSlotUnavailable       = errors.New("time slot is not available")
	ErrDateUnavailable       = errors.New("date is not available")
	ErrStepUnavailable       = errors.New("wizard step is not available")
	ErrWizardClosed          = errors.New("wizard is already closed")
	ErrInvalidTimeRange      = errors.New("invalid time range")
	ErrInvalidStep           = errors.New("invalid wizard step")
	ErrInvalidEvent          = errors.New("invalid wizard event")
)

const DefaultMinimumDurationHours = 2

type Step string

const (
	StepDate     Step = "date"
	StepCheckIn  Step = "checkin"
	StepCheckOut Step = "checkout"
)

func (s Step) String() string {
	return string(s)
}

func (s Step) IsValid() bool {
	switch s {
	case StepDate, StepCheckIn, StepCheckOut:
		return true
	default:
		return false
	}
}

func ParseStep(s string) (Step, error) {
	step := Step(s)
	if !step.IsValid() {
		return "", ErrInvalidStep
	}
	return step, nil
}

type EventKind string

const (
	EventSelectDate     EventKind = "select_date"
	EventSelectCheckIn  EventKind = "select_checkin"
	EventSelectCheckOut EventKind = "select_checkout"
	EventGoTo           EventKind = "go_to"
	EventClear          EventKind = "clear"
	EventClose          EventKind = "close"
)

func (k EventKind) IsValid() bool {
	switch k {
	case EventSelectDate, EventSelectCheckIn, EventSelectCheckOut, EventGoTo, EventClear, EventClose:
		return true
	default:
		return false
	}
}

// Event is a single user interaction. Only the field matching Kind is read:
// Date for EventSelectDate, At for the slot selections, Step for EventGoTo.
type Event struct {
	Kind EventKind
	Date time.Time
	At   time.Time
	Step Step
}
