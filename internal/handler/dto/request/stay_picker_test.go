//go:build unit

package request_test

import (
	"testing"
	"time"

	"stay-picker/internal/domain/stayrange"
	"stay-picker/internal/handler/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWizardEventsRequestToInput(t *testing.T) {
	loc := time.FixedZone("JST", 9*60*60)

	t.Run("step and event are parsed", func(t *testing.T) {
		req := request.WizardEventsRequest{
			Step:  "checkout",
			Draft: request.TimeRangeRequest{SelectedDate: "2024-06-10", StartDateTime: "2024-06-10T15:00:00"},
			Event: request.WizardEventRequest{Kind: "go_to", Step: "checkin"},
		}

		in, err := req.ToInput(loc)

		require.NoError(t, err)
		assert.Equal(t, stayrange.StepCheckOut, in.Step)
		assert.Equal(t, stayrange.EventGoTo, in.Event.Kind)
		assert.Equal(t, stayrange.StepCheckIn, in.Event.Step)
		assert.Equal(t, time.Date(2024, time.June, 10, 15, 0, 0, 0, loc), in.Draft.StartDateTime())
	})

	cases := []struct {
		name    string
		req     request.WizardEventsRequest
		wantErr error
	}{
		{
			name:    "unknown wizard step",
			req:     request.WizardEventsRequest{Step: "payment", Event: request.WizardEventRequest{Kind: "clear"}},
			wantErr: stayrange.ErrInvalidStep,
		},
		{
			name:    "unknown go_to target",
			req:     request.WizardEventsRequest{Step: "date", Event: request.WizardEventRequest{Kind: "go_to", Step: "summary"}},
			wantErr: stayrange.ErrInvalidStep,
		},
		{
			name:    "unknown event kind",
			req:     request.WizardEventsRequest{Step: "date", Event: request.WizardEventRequest{Kind: "submit"}},
			wantErr: stayrange.ErrInvalidEvent,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.req.ToInput(loc)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
