package converter

import (
	"cuponx-backend/internal/domain/coupon"
	sqlc "cuponx-backend/internal/infra/sqlc/generated"
	"cuponx-backend/internal/pkg/errs"
	"cuponx-backend/internal/pkg/pgconv"
	"cuponx-backend/internal/usecase/shared"
)

func CouponToInsertParams(c *coupon.Coupon) sqlc.InsertCouponParams {
	return sqlc.InsertCouponParams{
		Codigo:       c.Code().String(),
		ClienteID:    c.ConsumerID(),
		OfertaID:     c.OfferID(),
		PrecioPagado: pgconv.MoneyToNumeric(c.PricePaid()),
		FechaCompra:  pgconv.TimeToPgtype(c.PurchasedAt()),
	}
}

// CouponRowToRecord also serves LockCouponByCodeRow, which has the same shape.
func CouponRowToRecord(row sqlc.GetCouponByCodeRow) (*shared.CouponRecord, error) {
	paid, err := pgconv.MoneyFromNumeric(row.PrecioPagado)
	if err != nil {
		return nil, errs.Wrap(err, "precio_pagado")
	}
	state, err := coupon.NewState(row.Estado)
	if err != nil {
		return nil, err
	}

	c := coupon.Reconstruct(coupon.Snapshot{
		ID:                 row.ID,
		Code:               row.Codigo,
		ConsumerID:         row.ClienteID,
		OfferID:            row.OfertaID,
		MerchantID:         row.EmpresaID,
		PricePaid:          paid,
		PurchasedAt:        pgconv.TimeFromPgtype(row.FechaCompra),
		State:              state,
		RedeemedAt:         pgconv.TimePtrFromPgtype(row.FechaCanje),
		RedeemedBy:         pgconv.Int8PtrFromPgtype(row.CanjeadoPor),
		OwnerNationalID:    row.ClienteDui,
		RedemptionDeadline: pgconv.DatePtrFromPgtype(row.FechaLimiteUso),
	})

	return &shared.CouponRecord{
		Coupon:       c,
		OfferTitle:   row.OfertaTitulo,
		ConsumerName: fullName(row.ClienteNombres, row.ClienteApellidos),
	}, nil
}
