package shared

import (
	"context"

	"stay-picker/internal/domain/stayrange"
	"stay-picker/internal/infra"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	StayRanges() StayRangeRepository
	DB() infra.DBTX
}

type StayRangeRepository interface {
	Create(ctx context.Context, tx infra.DBTX, s *stayrange.SavedRange) error
	PruneHistory(ctx context.Context, tx infra.DBTX, userID uuid.UUID, keep int) (int64, error)
}
