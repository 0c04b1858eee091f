package readstore

import (
	"context"

	"cuponx-backend/internal/infra"
	"cuponx-backend/internal/infra/repository/converter"
	sqlc "cuponx-backend/internal/infra/sqlc/generated"
	"cuponx-backend/internal/pkg/pgconv"
	"cuponx-backend/internal/usecase/queries"
	"cuponx-backend/internal/usecase/shared"
)

type CouponReadQueries interface {
	GetCouponByCode(ctx context.Context, db sqlc.DBTX, codigo string) (sqlc.GetCouponByCodeRow, error)
	ListCouponsByConsumer(ctx context.Context, db sqlc.DBTX, clienteID int64) ([]sqlc.ListCouponsByConsumerRow, error)
}

type CouponReadStore struct {
	queries CouponReadQueries
	db      sqlc.DBTX
}

func NewCouponReadStore(queries CouponReadQueries, db sqlc.DBTX) *CouponReadStore {
	return &CouponReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByCode reads without locking.
func (r *CouponReadStore) FindByCode(ctx context.Context, code string) (*shared.CouponRecord, error) {
	row, err := r.queries.GetCouponByCode(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}
	rec, err := converter.CouponRowToRecord(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert coupon row", err, infra.KindDBFailure)
	}
	return rec, nil
}

func (r *CouponReadStore) ListByConsumer(ctx context.Context, consumerID int64) ([]*queries.ConsumerCouponView, error) {
	rows, err := r.queries.ListCouponsByConsumer(ctx, r.db, consumerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list consumer coupons", err)
	}
	views := make([]*queries.ConsumerCouponView, 0, len(rows))
	for _, row := range rows {
		paid, err := pgconv.MoneyFromNumeric(row.PrecioPagado)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert coupon row", err, infra.KindDBFailure)
		}
		views = append(views, &queries.ConsumerCouponView{
			ID:                 row.ID,
			Code:               row.Codigo,
			State:              row.Estado,
			PricePaid:          paid,
			PurchasedAt:        pgconv.TimeFromPgtype(row.FechaCompra),
			RedeemedAt:         pgconv.TimePtrFromPgtype(row.FechaCanje),
			OfferTitle:         row.OfertaTitulo,
			OfferDescription:   row.OfertaDescripcion,
			RedemptionDeadline: pgconv.DatePtrFromPgtype(row.FechaLimiteUso),
			MerchantName:       row.EmpresaNombre,
		})
	}
	return views, nil
}
