package converter

import (
	"cuponx-backend/internal/domain/offer"
	sqlc "cuponx-backend/internal/infra/sqlc/generated"
	"cuponx-backend/internal/pkg/errs"
	"cuponx-backend/internal/pkg/pgconv"
)

func LockedOfferToDomain(row sqlc.LockOfferForIssuanceRow) (*offer.Offer, error) {
	regular, err := pgconv.MoneyFromNumeric(row.PrecioRegular)
	if err != nil {
		return nil, errs.Wrap(err, "precio_regular")
	}
	price, err := pgconv.MoneyFromNumeric(row.PrecioOferta)
	if err != nil {
		return nil, errs.Wrap(err, "precio_oferta")
	}
	status, err := offer.NewStatus(row.Estado)
	if err != nil {
		return nil, err
	}

	return offer.Reconstruct(offer.Params{
		ID:                 row.ID,
		MerchantID:         row.EmpresaID,
		MerchantCode:       row.EmpresaCodigo,
		MerchantName:       row.EmpresaNombre,
		Title:              row.Titulo,
		Description:        row.Descripcion,
		RegularPrice:       regular,
		OfferPrice:         price,
		StartDate:          pgconv.DateFromPgtype(row.FechaInicioOferta),
		EndDate:            pgconv.DateFromPgtype(row.FechaFinOferta),
		RedemptionDeadline: pgconv.DatePtrFromPgtype(row.FechaLimiteUso),
		Capacity:           pgconv.IntPtrFromInt4(row.CantidadLimite),
		Status:             status,
	}), nil
}
