package components

import (
	"stay-picker/internal/infra"
	"stay-picker/internal/infra/repository"
	"stay-picker/internal/infra/uow"
	"stay-picker/internal/usecase/queries"
	"stay-picker/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		repository.NewStayRangeRepository,
		func(r *repository.StayRangeRepository) shared.StayRangeRepository { return r },
		func(r *repository.StayRangeRepository) queries.StayRangeReadStore { return r },
		uow.NewPostgresUoW,
	),
)

func NewDBTX(pool *pgxpool.Pool) infra.DBTX {
	return pool
}
