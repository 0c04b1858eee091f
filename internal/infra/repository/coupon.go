package repository

import (
	"context"

	"cuponx-backend/internal/domain/coupon"
	"cuponx-backend/internal/infra"
	"cuponx-backend/internal/infra/repository/converter"
	sqlc "cuponx-backend/internal/infra/sqlc/generated"
	"cuponx-backend/internal/pkg/pgconv"
	"cuponx-backend/internal/usecase/shared"
)

type CouponWriteQueries interface {
	InsertCoupon(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertCouponParams) (int64, error)
	LockCouponByCode(ctx context.Context, db sqlc.DBTX, codigo string) (sqlc.LockCouponByCodeRow, error)
	RedeemCoupon(ctx context.Context, db sqlc.DBTX, arg sqlc.RedeemCouponParams) (int64, error)
	ExpireCoupon(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
	DeleteCoupon(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type CouponRepository struct {
	queries CouponWriteQueries
	db      sqlc.DBTX
}

func NewCouponRepository(queries CouponWriteQueries, db sqlc.DBTX) *CouponRepository {
	return &CouponRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CouponRepository) Insert(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) (int64, bool, error) {
	id, err := r.queries.InsertCoupon(ctx, tx, converter.CouponToInsertParams(c))
	if err != nil {
		// ON CONFLICT DO NOTHING returns no row
		if pgconv.IsNoRows(err) {
			return 0, false, nil
		}
		return 0, false, infra.WrapRepoErr("failed to insert coupon", err)
	}
	return id, true, nil
}

func (r *CouponRepository) LockByCode(ctx context.Context, tx sqlc.DBTX, code string) (*shared.CouponRecord, error) {
	row, err := r.queries.LockCouponByCode(ctx, tx, code)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock coupon", err)
	}
	rec, err := converter.CouponRowToRecord(sqlc.GetCouponByCodeRow(row))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert coupon row", err, infra.KindDBFailure)
	}
	return rec, nil
}

// MarkRedeemed only succeeds while the row is still available.
func (r *CouponRepository) MarkRedeemed(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error {
	params := sqlc.RedeemCouponParams{
		ID:          c.ID(),
		FechaCanje:  pgconv.TimePtrToPgtype(c.RedeemedAt()),
		CanjeadoPor: pgconv.Int8PtrToPgtype(c.RedeemedBy()),
	}
	n, err := r.queries.RedeemCoupon(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to redeem coupon", err)
	}
	if n != 1 {
		return infra.WrapRepoErr("coupon no longer available", nil, infra.KindConflict)
	}
	return nil
}

func (r *CouponRepository) MarkExpired(ctx context.Context, tx sqlc.DBTX, couponID int64) error {
	n, err := r.queries.ExpireCoupon(ctx, tx, couponID)
	if err != nil {
		return infra.WrapRepoErr("failed to expire coupon", err)
	}
	if n != 1 {
		return infra.WrapRepoErr("coupon no longer available", nil, infra.KindConflict)
	}
	return nil
}

func (r *CouponRepository) Delete(ctx context.Context, tx sqlc.DBTX, couponID int64) error {
	n, err := r.queries.DeleteCoupon(ctx, tx, couponID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete coupon", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}
