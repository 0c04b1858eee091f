package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"cuponx-backend/internal/domain/account"
	"cuponx-backend/internal/infra/readstore"
	"cuponx-backend/internal/infra/repository"
	sqlc "cuponx-backend/internal/infra/sqlc/generated"
	"cuponx-backend/internal/pkg/errs"
	"cuponx-backend/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// retryPolicy covers serialization failures and deadlocks. Two purchases of
// the same offer queue on its row lock and normally never reach it.
type retryPolicy struct {
	maxRetries int
	base       time.Duration
}

var defaultRetry = retryPolicy{maxRetries: 3, base: 100 * time.Millisecond}

// backoff doubles per attempt and adds up to 20% jitter.
func (p retryPolicy) backoff(attempt int) time.Duration {
	wait := p.base << attempt
	return wait + rand.N(wait/5+1)
}

func retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case "40001", "40P01": // serialization_failure, deadlock_detected
		return true
	default:
		return false
	}
}

type PostgresUoW struct {
	pool  *pgxpool.Pool
	q     *sqlc.Queries
	retry retryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool:  pool,
		q:     q,
		retry: defaultRetry,
	}
}

// Within runs fn in a READ COMMITTED transaction. fn may run more than once,
// so it must not keep state across attempts.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; ; attempt++ {
		err := u.attempt(ctx, fn)
		if err == nil || !retryable(err) {
			return err
		}
		if attempt == u.retry.maxRetries {
			slog.Error("transaction failed after max retries", "attempts", attempt+1, "error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		wait := u.retry.backoff(attempt)
		slog.Warn("retrying transaction", "attempt", attempt+1, "wait_ms", wait.Milliseconds(), "error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// attempt owns one pgx transaction; the rollback after a commit is a no-op.
func (u *PostgresUoW) attempt(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if rbErr := pgxTx.Rollback(context.WithoutCancel(ctx)); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "error", rbErr.Error())
		}
	}()

	if err := fn(ctx, &pgTx{dbtx: pgxTx, uow: u}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	accountRepo shared.AccountRepository
	offerRepo   shared.OfferRepository
	couponRepo  shared.CouponRepository
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Accounts() shared.AccountRepository {
	if t.accountRepo == nil {
		t.accountRepo = repository.NewAccountRepository(t.uow.q, t.dbtx)
	}
	return t.accountRepo
}

func (t *pgTx) Offers() shared.OfferRepository {
	if t.offerRepo == nil {
		t.offerRepo = repository.NewOfferRepository(t.uow.q, t.dbtx)
	}
	return t.offerRepo
}

func (t *pgTx) Coupons() shared.CouponRepository {
	if t.couponRepo == nil {
		t.couponRepo = repository.NewCouponRepository(t.uow.q, t.dbtx)
	}
	return t.couponRepo
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	accountStore *readstore.AccountReadStore
	couponStore  *readstore.CouponReadStore
}

func (r *commandReads) accounts() *readstore.AccountReadStore {
	if r.accountStore == nil {
		r.accountStore = readstore.NewAccountReadStore(r.uow.q, r.dbtx)
	}
	return r.accountStore
}

func (r *commandReads) AccountsByEmail(ctx context.Context, email string) ([]*account.Account, error) {
	snaps, err := r.accounts().FindAllByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	accounts := make([]*account.Account, len(snaps))
	for i := range snaps {
		accounts[i] = account.Reconstruct(snaps[i])
	}
	return accounts, nil
}

func (r *commandReads) AccountByID(ctx context.Context, role account.Role, id int64) (*account.Account, error) {
	snap, err := r.accounts().FindByID(ctx, role, id)
	if err != nil {
		return nil, err
	}
	return account.Reconstruct(*snap), nil
}

func (r *commandReads) ConsumerByVerificationToken(ctx context.Context, token string) (*account.Account, error) {
	snap, err := r.accounts().FindConsumerByVerificationToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return account.Reconstruct(*snap), nil
}

func (r *commandReads) ConsumerTaken(ctx context.Context, email, nationalID string) (shared.ConsumerTaken, error) {
	emailTaken, nidTaken, err := r.accounts().ConsumerTaken(ctx, email, nationalID)
	if err != nil {
		return shared.ConsumerTaken{}, err
	}
	return shared.ConsumerTaken{Email: emailTaken, NationalID: nidTaken}, nil
}

func (r *commandReads) CouponByCode(ctx context.Context, code string) (*shared.CouponRecord, error) {
	if r.couponStore == nil {
		r.couponStore = readstore.NewCouponReadStore(r.uow.q, r.dbtx)
	}
	return r.couponStore.FindByCode(ctx, code)
}
