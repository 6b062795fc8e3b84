//go:build unit || e2e

package dbtest

import (
	"context"
	"strings"
	"testing"
	"time"

	"stay-picker/internal/domain/stayrange"
	"stay-picker/internal/infra"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// InsertStayRange writes a row directly, bypassing the usecase validation.
func InsertStayRange(t *testing.T, db infra.DBTX, userID uuid.UUID, r stayrange.TimeRange, createdAt time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO stay_ranges (id, user_id, selected_date, start_at, end_at, minimum_hours, created_at)
		VALUES ($1, $2, $3::date, $4::timestamp, $5::timestamp, $6, $7)`,
		id, userID,
		stayrange.FormatDate(r.SelectedDate()),
		stayrange.FormatNaive(r.StartDateTime()),
		stayrange.FormatNaive(r.EndDateTime()),
		stayrange.DefaultMinimumDurationHours,
		createdAt,
	)
	require.NoError(t, err)
	return id
}

func CountStayRanges(t *testing.T, db infra.DBTX, userID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM stay_ranges WHERE user_id = $1", userID).Scan(&n)
	require.NoError(t, err)
	return n
}

// pickerTables lists every table the migrations create.
var pickerTables = []string{"stay_ranges"}

// ResetDB empties the picker tables between subtests.
func ResetDB(db infra.DBTX) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := db.Exec(ctx, "TRUNCATE "+strings.Join(pickerTables, ", "))
	return err
}
