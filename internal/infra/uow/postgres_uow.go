package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"booking-calendar-sync/internal/infra/db"
	"booking-calendar-sync/internal/infra/repository"
	"booking-calendar-sync/internal/pkg/errs"
	"booking-calendar-sync/internal/usecase/shared"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	txMaxRetries = 3
	txBaseWait   = 100 * time.Millisecond
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
}

// Reads runs each statement on its own pooled connection.
func (u *PostgresUoW) Reads() shared.Tx {
	return &pgTx{dbtx: u.pool}
}

// runInTxWithOptions retries the whole closure on serialization failures and
// deadlocks; every attempt gets a fresh transaction.
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	attempt := 0
	op := func() error {
		attempt++
		err := u.attempt(ctx, options, fn)
		if err != nil && !isRetryableError(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		slog.WarnContext(ctx, "retrying transaction due to retryable error",
			"attempt", attempt,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())
	}

	err := backoff.RetryNotify(op, backoff.WithContext(backoff.WithMaxRetries(u.newBackOff(), txMaxRetries), ctx), notify)
	if err != nil && isRetryableError(err) {
		slog.ErrorContext(ctx, "transaction failed after max retries", "attempts", attempt, "error", err.Error())
		return errs.Mark(err, errMaxRetriesExceeded)
	}
	return err
}

// attempt runs fn in one transaction. Rollback after a successful commit is a no-op.
func (u *PostgresUoW) attempt(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.WarnContext(ctx, "rollback failed", "error", rollbackErr.Error())
		}
	}()

	if err := fn(ctx, &pgTx{dbtx: pgxTx}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func (u *PostgresUoW) newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = txBaseWait
	b.RandomizationFactor = 0.2
	b.Multiplier = 2
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, &pgTx{dbtx: pgxTx}); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	bookings     shared.BookingRepository
	services     shared.ServiceRepository
	availability shared.AvailabilityRepository
	watermarks   shared.WatermarkRepository
	settings     shared.SettingsRepository
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookings == nil {
		t.bookings = repository.NewBookingRepository(t.dbtx)
	}
	return t.bookings
}

func (t *pgTx) Services() shared.ServiceRepository {
	if t.services == nil {
		t.services = repository.NewServiceRepository(t.dbtx)
	}
	return t.services
}

func (t *pgTx) Availability() shared.AvailabilityRepository {
	if t.availability == nil {
		t.availability = repository.NewAvailabilityRepository(t.dbtx)
	}
	return t.availability
}

func (t *pgTx) Watermarks() shared.WatermarkRepository {
	if t.watermarks == nil {
		t.watermarks = repository.NewWatermarkRepository(t.dbtx)
	}
	return t.watermarks
}

func (t *pgTx) Settings() shared.SettingsRepository {
	if t.settings == nil {
		t.settings = repository.NewSettingsRepository(t.dbtx)
	}
	return t.settings
}
