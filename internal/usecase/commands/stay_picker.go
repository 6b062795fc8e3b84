package commands

import (
	"context"
	"log/slog"
	"net/url"

	"stay-picker/internal/domain/stayrange"
	"stay-picker/internal/pkg/clock"
	"stay-picker/internal/pkg/errs"
	"stay-picker/internal/usecase/shared"

	"github.com/google/uuid"
)

// DefaultHistoryLimit is how many saved ranges are kept per guest.
const DefaultHistoryLimit = 5

// WizardInput is the state a client kept between two interactions plus the
// event it wants applied.
type WizardInput struct {
	Step                 stayrange.Step
	Draft                stayrange.TimeRange
	Held                 stayrange.TimeRange
	Closed               bool
	MinimumDurationHours int
	Event                stayrange.Event
}

type WizardResult struct {
	Step             stayrange.Step
	Range            stayrange.TimeRange
	Held             stayrange.TimeRange
	Slots            []stayrange.Slot
	NoSlotsAvailable bool
	EnabledSteps     []stayrange.Step
	Committed        bool
	Cleared          bool
	Closed           bool
	Label            string
	SearchParams     url.Values
}

type SaveStayRangeResult struct {
	ID uuid.UUID
}

type StayPickerCommands interface {
	ApplyEvent(ctx context.Context, in WizardInput) (*WizardResult, error)
	SaveStayRange(ctx context.Context, userID uuid.UUID, r stayrange.TimeRange, minimumHours int) (*SaveStayRangeResult, error)
}

type stayPickerUseCaseImpl struct {
	uow          shared.UnitOfWork
	settings     shared.PickerSettings
	clock        clock.Clock
	historyLimit int
	logger       *slog.Logger
}

func NewStayPickerUseCase(uow shared.UnitOfWork, settings shared.PickerSettings, clk clock.Clock, logger *slog.Logger) StayPickerCommands {
	return &stayPickerUseCaseImpl{
		uow:          uow,
		settings:     settings,
		clock:        clk,
		historyLimit: DefaultHistoryLimit,
		logger:       logger,
	}
}

func (uc *stayPickerUseCaseImpl) ApplyEvent(ctx context.Context, in WizardInput) (*WizardResult, error) {
	if in.Closed {
		return nil, errs.Mark(stayrange.ErrWizardClosed, errs.ErrWizardClosed)
	}

	opts := uc.settings.Options(in.MinimumDurationHours)
	opts.Listener = stayrange.Listener{
		OnCommit: func(r stayrange.TimeRange) {
			uc.logger.InfoContext(ctx, "stay range committed",
				"start", stayrange.FormatNaive(r.StartDateTime()),
				"end", stayrange.FormatNaive(r.EndDateTime()))
		},
		OnClear: func(stayrange.TimeRange) {
			uc.logger.DebugContext(ctx, "stay range cleared")
		},
	}

	w, err := stayrange.Resume(in.Step, in.Draft, in.Held, opts, uc.clock)
	if err != nil {
		return nil, shared.MarkDomainErr(err)
	}

	out, err := w.Apply(in.Event)
	if err != nil {
		return nil, shared.MarkDomainErr(err)
	}

	held := in.Held
	switch {
	case out.Committed:
		held = out.Range
	case out.Cleared:
		held = stayrange.TimeRange{}
	}

	res := &WizardResult{
		Step:         out.Step,
		Range:        out.Range,
		Held:         held,
		Slots:        []stayrange.Slot{},
		EnabledSteps: []stayrange.Step{},
		Committed:    out.Committed,
		Cleared:      out.Cleared,
		Closed:       out.Closed,
		Label:        stayrange.Label(out.Range),
	}
	if !out.Closed {
		res.Slots = w.Slots()
		res.NoSlotsAvailable = w.NoSlotsAvailable()
		for _, step := range []stayrange.Step{stayrange.StepDate, stayrange.StepCheckIn, stayrange.StepCheckOut} {
			if w.CanGoTo(step) {
				res.EnabledSteps = append(res.EnabledSteps, step)
			}
		}
	}
	if out.Committed {
		res.SearchParams = stayrange.SearchParams(out.Range)
	}
	return res, nil
}

// SaveStayRange stores a committed range and trims the guest's older ranges in
// the same transaction. The range is replayed through the wizard first, so a
// past date or an unoffered slot is refused.
func (uc *stayPickerUseCaseImpl) SaveStayRange(ctx context.Context, userID uuid.UUID, r stayrange.TimeRange, minimumHours int) (*SaveStayRangeResult, error) {
	opts := uc.settings.Options(minimumHours)
	if r.IsComplete() {
		if err := stayrange.Replay(r, opts, uc.clock); err != nil {
			return nil, shared.MarkDomainErr(err)
		}
	}

	saved, err := stayrange.NewSavedRange(userID, r, stayrange.NewValidator(opts.MinimumDurationHours), uc.clock.Now())
	if err != nil {
		return nil, shared.MarkDomainErr(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.StayRanges().Create(ctx, tx.DB(), saved); derr != nil {
			return derr
		}
		pruned, derr := tx.StayRanges().PruneHistory(ctx, tx.DB(), userID, uc.historyLimit)
		if derr != nil {
			return derr
		}
		if pruned > 0 {
			uc.logger.DebugContext(ctx, "pruned stay range history", "user_id", userID.String(), "pruned", pruned)
		}
		return nil
	})
	if err != nil {
		return nil, shared.MarkDomainErr(err)
	}
	return &SaveStayRangeResult{ID: saved.ID()}, nil
}
