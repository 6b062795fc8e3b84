package request

import (
	"time"

	"stay-picker/internal/domain/stayrange"
	"stay-picker/internal/usecase/commands"
)

// TimeRangeRequest carries a range as naive local timestamps. Empty strings mean "not chosen".
type TimeRangeRequest struct {
	SelectedDate  string `json:"selectedDate"`
	StartDateTime string `json:"startDateTime"`
	EndDateTime   string `json:"endDateTime"`
}

func (r TimeRangeRequest) ToDomain(loc *time.Location) (stayrange.TimeRange, error) {
	date, err := stayrange.ParseDate(r.SelectedDate, loc)
	if err != nil {
		return stayrange.TimeRange{}, err
	}
	start, err := stayrange.ParseNaive(r.StartDateTime, loc)
	if err != nil {
		return stayrange.TimeRange{}, err
	}
	end, err := stayrange.ParseNaive(r.EndDateTime, loc)
	if err != nil {
		return stayrange.TimeRange{}, err
	}
	return stayrange.Restore(date, start, end)
}

type WizardEventRequest struct {
	Kind string `json:"kind" binding:"required,oneof=select_date select_checkin select_checkout go_to clear close"`
	Date string `json:"date"`
	At   string `json:"at"`
	Step string `json:"step" binding:"omitempty,oneof=date checkin checkout"`
}

func (r WizardEventRequest) ToDomain(loc *time.Location) (stayrange.Event, error) {
	kind := stayrange.EventKind(r.Kind)
	if !kind.IsValid() {
		return stayrange.Event{}, stayrange.ErrInvalidEvent
	}
	var step stayrange.Step
	if r.Step != "" {
		parsed, err := stayrange.ParseStep(r.Step)
		if err != nil {
			return stayrange.Event{}, err
		}
		step = parsed
	}
	date, err := stayrange.ParseDate(r.Date, loc)
	if err != nil {
		return stayrange.Event{}, err
	}
	at, err := stayrange.ParseNaive(r.At, loc)
	if err != nil {
		return stayrange.Event{}, err
	}
	return stayrange.Event{
		Kind: kind,
		Date: date,
		At:   at,
		Step: step,
	}, nil
}

type WizardEventsRequest struct {
	Step                 string             `json:"step" binding:"required,oneof=date checkin checkout"`
	Draft                TimeRangeRequest   `json:"draft"`
	Held                 TimeRangeRequest   `json:"held"`
	Closed               bool               `json:"closed"`
	MinimumDurationHours int                `json:"minimumDurationHours" binding:"omitempty,min=1,max=24"`
	Event                WizardEventRequest `json:"event" binding:"required"`
}

func (r *WizardEventsRequest) ToInput(loc *time.Location) (commands.WizardInput, error) {
	step, err := stayrange.ParseStep(r.Step)
	if err != nil {
		return commands.WizardInput{}, err
	}
	draft, err := r.Draft.ToDomain(loc)
	if err != nil {
		return commands.WizardInput{}, err
	}
	held, err := r.Held.ToDomain(loc)
	if err != nil {
		return commands.WizardInput{}, err
	}
	ev, err := r.Event.ToDomain(loc)
	if err != nil {
		return commands.WizardInput{}, err
	}
	return commands.WizardInput{
		Step:                 step,
		Draft:                draft,
		Held:                 held,
		Closed:               r.Closed,
		MinimumDurationHours: r.MinimumDurationHours,
		Event:                ev,
	}, nil
}

type SaveStayRangeRequest struct {
	SelectedDate         string `json:"selectedDate" binding:"required"`
	StartDateTime        string `json:"startDateTime" binding:"required"`
	EndDateTime          string `json:"endDateTime" binding:"required"`
	MinimumDurationHours int    `json:"minimumDurationHours" binding:"omitempty,min=1,max=24"`
}

func (r *SaveStayRangeRequest) ToDomain(loc *time.Location) (stayrange.TimeRange, error) {
	return TimeRangeRequest{
		SelectedDate:  r.SelectedDate,
		StartDateTime: r.StartDateTime,
		EndDateTime:   r.EndDateTime,
	}.ToDomain(loc)
}
