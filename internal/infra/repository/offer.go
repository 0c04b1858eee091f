package repository

import (
	"context"

	"cuponx-backend/internal/domain/offer"
	"cuponx-backend/internal/infra"
	"cuponx-backend/internal/infra/repository/converter"
	sqlc "cuponx-backend/internal/infra/sqlc/generated"
)

type OfferWriteQueries interface {
	LockOfferForIssuance(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.LockOfferForIssuanceRow, error)
	CountCouponsByOffer(ctx context.Context, db sqlc.DBTX, ofertaID int64) (int64, error)
}

type OfferRepository struct {
	queries OfferWriteQueries
	db      sqlc.DBTX
}

func NewOfferRepository(queries OfferWriteQueries, db sqlc.DBTX) *OfferRepository {
	return &OfferRepository{
		queries: queries,
		db:      db,
	}
}

// LockForIssuance must run inside a transaction; the lock is held until it ends.
func (r *OfferRepository) LockForIssuance(ctx context.Context, tx sqlc.DBTX, offerID int64) (*offer.Offer, error) {
	row, err := r.queries.LockOfferForIssuance(ctx, tx, offerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock offer", err)
	}
	o, err := converter.LockedOfferToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert offer row", err, infra.KindDBFailure)
	}
	return o, nil
}

func (r *OfferRepository) CountIssued(ctx context.Context, tx sqlc.DBTX, offerID int64) (int, error) {
	n, err := r.queries.CountCouponsByOffer(ctx, tx, offerID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count issued coupons", err)
	}
	return int(n), nil
}
