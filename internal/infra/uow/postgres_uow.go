package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"stay-picker/internal/infra"
	"stay-picker/internal/pkg/errs"
	"stay-picker/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// retryableCodes are the SQLSTATEs a save can hit when two saves for the
// same guest race on the history prune.
var retryableCodes = map[string]struct{}{
	"40001": {}, // serialization_failure
	"40P01": {}, // deadlock_detected
}

type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: 3, BaseDelay: 50 * time.Millisecond}
}

// delay doubles per attempt and adds up to 20% jitter.
func (p RetryPolicy) delay(attempt int) time.Duration {
	d := p.BaseDelay << attempt
	if jitter := int64(d / 5); jitter > 0 {
		d += time.Duration(rand.Int64N(jitter))
	}
	return d
}

type PostgresUoW struct {
	pool       *pgxpool.Pool
	stayRanges shared.StayRangeRepository
	retry      RetryPolicy
	logger     *slog.Logger
}

func NewPostgresUoW(pool *pgxpool.Pool, stayRanges shared.StayRangeRepository, logger *slog.Logger) shared.UnitOfWork {
	return &PostgresUoW{
		pool:       pool,
		stayRanges: stayRanges,
		retry:      DefaultRetryPolicy(),
		logger:     logger,
	}
}

// Within runs fn in a serializable transaction so the insert and the history
// prune of one save see a consistent row set.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.Serializable}

	var err error
	for attempt := 0; ; attempt++ {
		err = u.runOnce(ctx, opts, fn)
		if err == nil || !isRetryable(err) {
			return err
		}
		if attempt >= u.retry.MaxRetries {
			u.logger.Error("giving up on transaction", "attempts", attempt+1, "error", err)
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		wait := u.retry.delay(attempt)
		u.logger.Warn("retrying transaction", "attempt", attempt+1, "wait_ms", wait.Milliseconds(), "error", err)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (u *PostgresUoW) runOnce(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			u.logger.Warn("rollback failed", "error", rbErr)
		}
	}()

	if err := fn(ctx, &pgTx{dbtx: pgxTx, stayRanges: u.stayRanges}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	_, ok := retryableCodes[pgErr.Code]
	return ok
}

type pgTx struct {
	dbtx       infra.DBTX
	stayRanges shared.StayRangeRepository
}

func (t *pgTx) DB() infra.DBTX                         { return t.dbtx }
func (t *pgTx) StayRanges() shared.StayRangeRepository { return t.stayRanges }
