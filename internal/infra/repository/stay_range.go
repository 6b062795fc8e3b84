package repository

import (
	"context"
	"log/slog"
	"time"

	"stay-picker/internal/domain/stayrange"
	"stay-picker/internal/infra"
	"stay-picker/internal/infra/repository/converter"
	"stay-picker/internal/pkg/clock"
	"stay-picker/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	insertStayRangeSQL = `
INSERT INTO stay_ranges (id, user_id, selected_date, start_at, end_at, minimum_hours, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	pruneStayRangesSQL = `
DELETE FROM stay_ranges
WHERE user_id = $1
  AND id NOT IN (
    SELECT id FROM stay_ranges
    WHERE user_id = $1
    ORDER BY created_at DESC, id DESC
    LIMIT $2
  )`

	findLatestStayRangeSQL = `
SELECT id, user_id, selected_date, start_at, end_at, minimum_hours, created_at
FROM stay_ranges
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT 1`
)

// StayRangeRepository writes through the caller's transaction and reads
// through db, which is the pool in production.
type StayRangeRepository struct {
	db     infra.DBTX
	loc    *time.Location
	logger *slog.Logger
}

func NewStayRangeRepository(db infra.DBTX, clk clock.Clock, logger *slog.Logger) *StayRangeRepository {
	return &StayRangeRepository{
		db:     db,
		loc:    clk.Location(),
		logger: logger,
	}
}

func (r *StayRangeRepository) Create(ctx context.Context, tx infra.DBTX, s *stayrange.SavedRange) error {
	row := converter.StayRangeToInfra(s)
	_, err := tx.Exec(ctx, insertStayRangeSQL,
		row.ID, row.UserID, row.SelectedDate, row.StartAt, row.EndAt, row.MinimumHours, row.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to create stay range", err)
	}
	return nil
}

// PruneHistory keeps only the newest keep ranges of a user.
func (r *StayRangeRepository) PruneHistory(ctx context.Context, tx infra.DBTX, userID uuid.UUID, keep int) (int64, error) {
	tag, err := tx.Exec(ctx, pruneStayRangesSQL, pgconv.UUIDToPgtype(userID), keep)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to prune stay ranges", err)
	}
	return tag.RowsAffected(), nil
}

func (r *StayRangeRepository) FindLatestByUser(ctx context.Context, userID uuid.UUID) (*stayrange.SavedRange, error) {
	var row converter.StayRangeRow
	err := r.db.QueryRow(ctx, findLatestStayRangeSQL, pgconv.UUIDToPgtype(userID)).Scan(
		&row.ID, &row.UserID, &row.SelectedDate, &row.StartAt, &row.EndAt, &row.MinimumHours, &row.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "stay range not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find latest stay range", err)
	}

	saved, err := converter.StayRangeFromInfra(row, r.loc)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDecodeFailed, "stored stay range is inconsistent", err)
	}
	return saved, nil
}
