//go:build unit || e2e

package builder

import (
	"time"

	"cuponx-backend/internal/domain/coupon"
	"cuponx-backend/internal/domain/offer"
	sqlc "cuponx-backend/internal/infra/sqlc/generated"
	"cuponx-backend/internal/pkg/pgconv"
)

type CouponBuilder struct {
	ID                 int64
	Code               string
	ConsumerID         int64
	OfferID            int64
	MerchantID         int64
	PricePaid          offer.Money
	PurchasedAt        time.Time
	State              coupon.State
	RedeemedAt         *time.Time
	RedeemedBy         *int64
	OwnerNationalID    string
	RedemptionDeadline *time.Time
}

func NewCouponBuilder() *CouponBuilder {
	deadline := Today().AddDate(0, 1, 0)
	return &CouponBuilder{
		ID:                 10,
		Code:               "RES0011234567",
		ConsumerID:         5,
		OfferID:            1,
		MerchantID:         1,
		PricePaid:          1000,
		PurchasedAt:        time.Now().Add(-time.Hour),
		State:              coupon.StateAvailable,
		OwnerNationalID:    "01234567-8",
		RedemptionDeadline: &deadline,
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) BuildSnapshot() coupon.Snapshot {
	return coupon.Snapshot{
		ID:                 b.ID,
		Code:               b.Code,
		ConsumerID:         b.ConsumerID,
		OfferID:            b.OfferID,
		MerchantID:         b.MerchantID,
		PricePaid:          b.PricePaid,
		PurchasedAt:        b.PurchasedAt,
		State:              b.State,
		RedeemedAt:         b.RedeemedAt,
		RedeemedBy:         b.RedeemedBy,
		OwnerNationalID:    b.OwnerNationalID,
		RedemptionDeadline: b.RedemptionDeadline,
	}
}

func (b *CouponBuilder) BuildDomain() *coupon.Coupon {
	return coupon.Reconstruct(b.BuildSnapshot())
}

// BuildRow returns the joined coupon row as the readstore and repository read it.
func (b *CouponBuilder) BuildRow() sqlc.GetCouponByCodeRow {
	return sqlc.GetCouponByCodeRow{
		ID:               b.ID,
		Codigo:           b.Code,
		ClienteID:        b.ConsumerID,
		OfertaID:         b.OfferID,
		PrecioPagado:     pgconv.MoneyToNumeric(b.PricePaid),
		FechaCompra:      pgconv.TimeToPgtype(b.PurchasedAt),
		Estado:           b.State.String(),
		FechaCanje:       pgconv.TimePtrToPgtype(b.RedeemedAt),
		CanjeadoPor:      pgconv.Int8PtrToPgtype(b.RedeemedBy),
		EmpresaID:        b.MerchantID,
		OfertaTitulo:     "2x1 en pizzas",
		FechaLimiteUso:   pgconv.DatePtrToPgtype(b.RedemptionDeadline),
		ClienteDui:       b.OwnerNationalID,
		ClienteNombres:   "Ana",
		ClienteApellidos: "Martínez",
	}
}
