package converter

import (
	"time"

	"stay-picker/internal/domain/stayrange"
	"stay-picker/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// StayRangeRow mirrors the stay_ranges table.
type StayRangeRow struct {
	ID           pgtype.UUID
	UserID       pgtype.UUID
	SelectedDate pgtype.Date
	StartAt      pgtype.Timestamp
	EndAt        pgtype.Timestamp
	MinimumHours int32
	CreatedAt    pgtype.Timestamptz
}

func StayRangeToInfra(s *stayrange.SavedRange) StayRangeRow {
	r := s.TimeRange()
	return StayRangeRow{
		ID:           pgconv.UUIDToPgtype(s.ID()),
		UserID:       pgconv.UUIDToPgtype(s.UserID()),
		SelectedDate: pgconv.DateToPgtype(r.SelectedDate()),
		StartAt:      pgconv.NaiveToPgtype(r.StartDateTime()),
		EndAt:        pgconv.NaiveToPgtype(r.EndDateTime()),
		MinimumHours: int32(s.MinimumHours()),
		CreatedAt:    pgconv.TimeToPgtype(s.CreatedAt()),
	}
}

// StayRangeFromInfra rebuilds the domain value, reading naive columns in loc.
func StayRangeFromInfra(row StayRangeRow, loc *time.Location) (*stayrange.SavedRange, error) {
	r, err := stayrange.Restore(
		pgconv.DateFromPgtype(row.SelectedDate, loc),
		pgconv.NaiveFromPgtype(row.StartAt, loc),
		pgconv.NaiveFromPgtype(row.EndAt, loc),
	)
	if err != nil {
		return nil, err
	}
	return stayrange.ReconstructSavedRange(
		uuid.UUID(row.ID.Bytes),
		uuid.UUID(row.UserID.Bytes),
		r,
		int(row.MinimumHours),
		row.CreatedAt.Time,
	), nil
}
