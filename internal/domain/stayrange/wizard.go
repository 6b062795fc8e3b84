package stayrange

import (
	"time"

	"stay-picker/internal/pkg/clock"
	"stay-picker/internal/pkg/errs"
)

// Listener receives the two results that leave the wizard while it is open.
// Either field may be nil.
type Listener struct {
	OnCommit func(TimeRange)
	OnClear  func(TimeRange)
}

type Options struct {
	MinimumDurationHours int
	Policy               SlotPolicy
	Listener             Listener
}

// Outcome describes what an interaction produced.
type Outcome struct {
	Step      Step
	Range     TimeRange
	Committed bool
	Cleared   bool
	Closed    bool
}

// Wizard walks date -> check-in -> check-out. It is owned by a single caller
// and is not safe for concurrent use.
type Wizard struct {
	step      Step
	draft     TimeRange
	held      TimeRange
	policy    SlotPolicy
	validator Validator
	clock     clock.Clock
	listener  Listener
	closed    bool
}

// Open starts a wizard on the date step, pre-filled with the caller's current range.
func Open(initial TimeRange, opts Options, clk clock.Clock) *Wizard {
	policy := opts.Policy
	if len(policy.CheckOutOffsets) == 0 {
		policy = DefaultSlotPolicy()
	}
	return &Wizard{
		step:      StepDate,
		draft:     initial,
		held:      initial,
		policy:    policy,
		validator: NewValidator(opts.MinimumDurationHours),
		clock:     clk,
		listener:  opts.Listener,
	}
}

// Resume rebuilds an open wizard from a draft the caller kept between
// interactions. held is the range the caller had before opening the wizard.
func Resume(step Step, draft, held TimeRange, opts Options, clk clock.Clock) (*Wizard, error) {
	if !step.IsValid() {
		return nil, ErrInvalidStep
	}
	w := Open(held, opts, clk)
	w.draft = draft
	if !w.CanGoTo(step) {
		return nil, errs.Wrapf(ErrStepUnavailable, "cannot resume at %s", step)
	}
	w.step = step
	return w, nil
}

func (w *Wizard) Step() Step           { return w.step }
func (w *Wizard) Draft() TimeRange     { return w.draft }
func (w *Wizard) Closed() bool         { return w.closed }
func (w *Wizard) Validator() Validator { return w.validator }
func (w *Wizard) Policy() SlotPolicy   { return w.policy }

// Slots lists the options for the current step, sampling the clock on every call.
func (w *Wizard) Slots() []Slot {
	return w.slotsFor(w.step)
}

// NoSlotsAvailable is true when a time step has nothing to offer, e.g. late in the day.
func (w *Wizard) NoSlotsAvailable() bool {
	return w.step != StepDate && len(w.Slots()) == 0
}

func (w *Wizard) slotsFor(step Step) []Slot {
	return w.policy.Slots(step, w.draft, w.clock.Now())
}

func (w *Wizard) outcome() Outcome {
	return Outcome{Step: w.step, Range: w.draft, Closed: w.closed}
}

func (w *Wizard) checkOpen() error {
	if w.closed {
		return ErrWizardClosed
	}
	return nil
}

// CanGoTo reports whether the step indicator for step would be enabled.
func (w *Wizard) CanGoTo(step Step) bool {
	if w.closed {
		return false
	}
	switch step {
	case StepDate:
		return true
	case StepCheckIn:
		return w.draft.HasDate()
	case StepCheckOut:
		return w.draft.HasStart()
	default:
		return false
	}
}

// Apply dispatches ev to the matching transition.
func (w *Wizard) Apply(ev Event) (Outcome, error) {
	switch ev.Kind {
	case EventSelectDate:
		return w.SelectDate(ev.Date)
	case EventSelectCheckIn:
		return w.SelectCheckIn(ev.At)
	case EventSelectCheckOut:
		return w.SelectCheckOut(ev.At)
	case EventGoTo:
		return w.GoTo(ev.Step)
	case EventClear:
		return w.Clear()
	case EventClose:
		return w.Close()
	default:
		return w.outcome(), errs.Wrapf(ErrInvalidEvent, "unknown event kind %q", ev.Kind)
	}
}

// SelectDate picks the stay date. It is only accepted on the date step; a
// guest further along navigates back with GoTo(StepDate) first.
func (w *Wizard) SelectDate(date time.Time) (Outcome, error) {
	if err := w.checkOpen(); err != nil {
		return w.outcome(), err
	}
	if w.step != StepDate {
		return w.outcome(), errs.Wrapf(ErrStepUnavailable, "date selected during %s", w.step)
	}
	if date.IsZero() {
		return w.outcome(), errs.Wrap(ErrInvalidTimeRange, "date is required")
	}
	if DateOf(date).Before(DateOf(w.clock.Now().In(date.Location()))) {
		return w.outcome(), errs.Wrapf(ErrDateUnavailable, "date %s", date.Format(dateLayout))
	}
	w.draft = w.draft.WithDate(date)
	w.step = StepCheckIn
	return w.outcome(), nil
}

func (w *Wizard) SelectCheckIn(at time.Time) (Outcome, error) {
	if err := w.checkOpen(); err != nil {
		return w.outcome(), err
	}
	if w.step != StepCheckIn {
		return w.outcome(), errs.Wrapf(ErrStepUnavailable, "check-in selected during %s", w.step)
	}
	slot, ok := containsSlot(w.slotsFor(StepCheckIn), at)
	if !ok {
		return w.outcome(), errs.Wrapf(ErrSlotUnavailable, "check-in %s", at.Format(naiveLayout))
	}
	w.draft = w.draft.WithStart(slot.At)
	w.step = StepCheckOut
	return w.outcome(), nil
}

// SelectCheckOut validates the stay length and commits. A rejected check-out
// leaves the draft and step untouched.
func (w *Wizard) SelectCheckOut(at time.Time) (Outcome, error) {
	if err := w.checkOpen(); err != nil {
		return w.outcome(), err
	}
	if w.step != StepCheckOut {
		return w.outcome(), errs.Wrapf(ErrStepUnavailable, "check-out selected during %s", w.step)
	}
	slot, ok := containsSlot(w.slotsFor(StepCheckOut), at)
	if !ok {
		return w.outcome(), errs.Wrapf(ErrSlotUnavailable, "check-out %s", at.Format(naiveLayout))
	}
	if err := w.validator.ValidateCheckOut(w.draft.StartDateTime(), slot.At); err != nil {
		return w.outcome(), err
	}

	w.draft = w.draft.WithEnd(slot.At)
	w.closed = true
	if w.listener.OnCommit != nil {
		w.listener.OnCommit(w.draft)
	}
	out := w.outcome()
	out.Committed = true
	return out, nil
}

// GoTo moves between steps without touching the draft.
func (w *Wizard) GoTo(step Step) (Outcome, error) {
	if err := w.checkOpen(); err != nil {
		return w.outcome(), err
	}
	if !step.IsValid() {
		return w.outcome(), ErrInvalidStep
	}
	if !w.CanGoTo(step) {
		return w.outcome(), errs.Wrapf(ErrStepUnavailable, "cannot go to %s", step)
	}
	w.step = step
	return w.outcome(), nil
}

// Clear empties the draft and hands the empty range to the caller right away.
func (w *Wizard) Clear() (Outcome, error) {
	if err := w.checkOpen(); err != nil {
		return w.outcome(), err
	}
	w.draft = TimeRange{}
	w.held = TimeRange{}
	w.step = StepDate
	if w.listener.OnClear != nil {
		w.listener.OnClear(w.draft)
	}
	out := w.outcome()
	out.Cleared = true
	return out, nil
}

// Close dismisses the wizard without committing. The returned range is what the
// caller already holds: the range it opened with, or the empty range after a Clear.
func (w *Wizard) Close() (Outcome, error) {
	if err := w.checkOpen(); err != nil {
		return w.outcome(), err
	}
	w.closed = true
	return Outcome{Step: w.step, Range: w.held, Closed: true}, nil
}

// Replay walks a complete range through the same steps a guest takes, so only
// a range the wizard would have committed at the clock's current time passes.
func Replay(r TimeRange, opts Options, clk clock.Clock) error {
	if !r.IsComplete() {
		return errs.Wrap(ErrInvalidTimeRange, "range is incomplete")
	}
	opts.Listener = Listener{}
	w := Open(TimeRange{}, opts, clk)
	if _, err := w.SelectDate(r.SelectedDate()); err != nil {
		return err
	}
	if _, err := w.SelectCheckIn(r.StartDateTime()); err != nil {
		return err
	}
	_, err := w.SelectCheckOut(r.EndDateTime())
	return err
}
