package shared

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"wallet-console/internal/infra/db"
	"wallet-console/internal/pkg/errs"
)

var (
	ErrTransactionBegin   = errs.New("failed to begin transaction")
	ErrTransactionCommit  = errs.New("failed to commit transaction")
	ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

const defaultMaxRetries = 3

type pgxUnitOfWork struct {
	pool        *pgxpool.Pool
	profiles    ProfileRepository
	enterprises EnterpriseRepository
}

func NewUnitOfWork(pool *pgxpool.Pool, profiles ProfileRepository, enterprises EnterpriseRepository) UnitOfWork {
	return &pgxUnitOfWork{
		pool:        pool,
		profiles:    profiles,
		enterprises: enterprises,
	}
}

type pgxTx struct {
	uow  *pgxUnitOfWork
	dbtx db.DBTX
}

func (t *pgxTx) Profiles() ProfileRepository       { return t.uow.profiles }
func (t *pgxTx) Enterprises() EnterpriseRepository { return t.uow.enterprises }
func (t *pgxTx) DB() db.DBTX                       { return t.dbtx }

func (u *pgxUnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	for attempt := 0; attempt <= defaultMaxRetries; attempt++ {
		err := u.runOnce(ctx, fn)
		if err == nil {
			return nil
		}

		if !isRetryableError(err) {
			return err
		}

		if attempt == defaultMaxRetries {
			slog.Error("transaction failed after max retries", "attempts", attempt+1, "error", err)
			return errs.Mark(err, ErrMaxRetriesExceeded)
		}

		// Exponential-ish backoff before retrying
		waitTime := time.Duration(attempt+1) * 100 * time.Millisecond
		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1, "wait_time", waitTime, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return ErrMaxRetriesExceeded
}

func (u *pgxUnitOfWork) runOnce(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	tx, err := u.pool.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrTransactionBegin)
	}

	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			// Only log rollback errors for uncommitted transactions
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback transaction", "error", rollbackErr)
			}
		}
	}()

	if err := fn(ctx, &pgxTx{uow: u, dbtx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrTransactionCommit)
	}

	return nil
}

func (u *pgxUnitOfWork) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	// PostgreSQL error codes for retryable conditions:
	// 40001: serialization_failure
	// 40P01: deadlock_detected
	switch pgErr.Code {
	case "40001", "40P01":
		return true
	default:
		return false
	}
}
