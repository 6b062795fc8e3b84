package response

import (
	"stay-picker/internal/domain/stayrange"
	"stay-picker/internal/usecase/commands"
	"stay-picker/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type SlotResponse struct {
	At              string `json:"at" copier:"-"`
	Label           string `json:"label"`
	NextDay         bool   `json:"nextDay"`
	DurationMinutes int64  `json:"durationMinutes,omitempty" copier:"-"`
}

type SlotsResponse struct {
	Step             string          `json:"step"`
	Slots            []*SlotResponse `json:"slots"`
	NoSlotsAvailable bool            `json:"noSlotsAvailable"`
}

// TimeRangeResponse takes the label and completeness fields from the
// TimeRange methods of the same name.
type TimeRangeResponse struct {
	SelectedDate  string `json:"selectedDate" copier:"-"`
	StartDateTime string `json:"startDateTime" copier:"-"`
	EndDateTime   string `json:"endDateTime" copier:"-"`
	StartLabel    string `json:"startLabel,omitempty"`
	EndLabel      string `json:"endLabel,omitempty"`
	IsComplete    bool   `json:"isComplete"`
}

type WizardStateResponse struct {
	Step             string             `json:"step"`
	Draft            *TimeRangeResponse `json:"draft"`
	Held             *TimeRangeResponse `json:"held"`
	Slots            []*SlotResponse    `json:"slots"`
	NoSlotsAvailable bool               `json:"noSlotsAvailable"`
	EnabledSteps     []string           `json:"enabledSteps"`
	Committed        bool               `json:"committed"`
	Cleared          bool               `json:"cleared"`
	Closed           bool               `json:"closed"`
	Label            string             `json:"label"`
	SearchParams     string             `json:"searchParams,omitempty"`
}

type StayRangeResponse struct {
	ID                   string             `json:"id"`
	Range                *TimeRangeResponse `json:"range"`
	Label                string             `json:"label"`
	SearchParams         string             `json:"searchParams"`
	MinimumDurationHours int                `json:"minimumDurationHours"`
	CreatedAt            int64              `json:"createdAt"`
}

type SaveStayRangeResponse struct {
	ID string `json:"id"`
}

func FromSlots(slots []stayrange.Slot) []*SlotResponse {
	res := make([]*SlotResponse, len(slots))
	for i, s := range slots {
		item := &SlotResponse{}
		_ = copier.Copy(item, &s)
		item.At = stayrange.FormatNaive(s.At)
		item.DurationMinutes = int64(s.Duration.Minutes())
		res[i] = item
	}
	return res
}

func FromSlotsView(v *queries.SlotsView) *SlotsResponse {
	return &SlotsResponse{
		Step:             v.Step.String(),
		Slots:            FromSlots(v.Slots),
		NoSlotsAvailable: v.NoSlotsAvailable,
	}
}

func FromTimeRange(r stayrange.TimeRange) *TimeRangeResponse {
	res := &TimeRangeResponse{}
	_ = copier.Copy(res, &r)
	res.SelectedDate = stayrange.FormatDate(r.SelectedDate())
	res.StartDateTime = stayrange.FormatNaive(r.StartDateTime())
	res.EndDateTime = stayrange.FormatNaive(r.EndDateTime())
	return res
}

func FromWizardResult(r *commands.WizardResult) *WizardStateResponse {
	steps := make([]string, len(r.EnabledSteps))
	for i, s := range r.EnabledSteps {
		steps[i] = s.String()
	}
	return &WizardStateResponse{
		Step:             r.Step.String(),
		Draft:            FromTimeRange(r.Range),
		Held:             FromTimeRange(r.Held),
		Slots:            FromSlots(r.Slots),
		NoSlotsAvailable: r.NoSlotsAvailable,
		EnabledSteps:     steps,
		Committed:        r.Committed,
		Cleared:          r.Cleared,
		Closed:           r.Closed,
		Label:            r.Label,
		SearchParams:     r.SearchParams.Encode(),
	}
}

func FromStayRangeView(v *queries.StayRangeView) *StayRangeResponse {
	return &StayRangeResponse{
		ID:                   v.ID.String(),
		Range:                FromTimeRange(v.Range),
		Label:                stayrange.Label(v.Range),
		SearchParams:         stayrange.SearchParams(v.Range).Encode(),
		MinimumDurationHours: v.MinimumHours,
		CreatedAt:            v.CreatedAt.Unix(),
	}
}
