package readstore

import (
	"context"
	"time"

	"cuponx-backend/internal/domain/offer"
	"cuponx-backend/internal/infra"
	sqlc "cuponx-backend/internal/infra/sqlc/generated"
	"cuponx-backend/internal/pkg/pgconv"
	"cuponx-backend/internal/usecase/queries"
)

type OfferReadQueries interface {
	ListLiveOffers(ctx context.Context, db sqlc.DBTX, arg sqlc.ListLiveOffersParams) ([]sqlc.ListLiveOffersRow, error)
	ListTopOffers(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTopOffersParams) ([]sqlc.ListTopOffersRow, error)
	ListApprovedOffers(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListApprovedOffersRow, error)
	ListLiveOffersByMerchant(ctx context.Context, db sqlc.DBTX, arg sqlc.ListLiveOffersByMerchantParams) ([]sqlc.ListLiveOffersByMerchantRow, error)
}

type OfferReadStore struct {
	queries OfferReadQueries
	db      sqlc.DBTX
}

func NewOfferReadStore(queries OfferReadQueries, db sqlc.DBTX) *OfferReadStore {
	return &OfferReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OfferReadStore) ListLive(ctx context.Context, filter queries.OfferFilter, today time.Time) ([]*queries.OfferView, error) {
	params := sqlc.ListLiveOffersParams{
		Today:   pgconv.DateToPgtype(today),
		RubroID: pgconv.Int8PtrToPgtype(filter.CategoryID),
	}
	if filter.Search != "" {
		params.Search = pgconv.StringToPgtype(filter.Search)
	}
	rows, err := r.queries.ListLiveOffers(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list live offers", err)
	}
	return mapOfferRows(rows, func(row sqlc.ListLiveOffersRow) sqlc.ListLiveOffersRow { return row })
}

func (r *OfferReadStore) ListTop(ctx context.Context, today time.Time, limit int) ([]*queries.OfferView, error) {
	rows, err := r.queries.ListTopOffers(ctx, r.db, sqlc.ListTopOffersParams{
		Today:    pgconv.DateToPgtype(today),
		RowLimit: int32(limit), // #nosec G115 -- bounded by queries.MaxTopLimit
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list top offers", err)
	}
	return mapOfferRows(rows, func(row sqlc.ListTopOffersRow) sqlc.ListLiveOffersRow { return sqlc.ListLiveOffersRow(row) })
}

func (r *OfferReadStore) ListApproved(ctx context.Context) ([]*queries.OfferView, error) {
	rows, err := r.queries.ListApprovedOffers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list approved offers", err)
	}
	return mapOfferRows(rows, func(row sqlc.ListApprovedOffersRow) sqlc.ListLiveOffersRow { return sqlc.ListLiveOffersRow(row) })
}

func (r *OfferReadStore) ListLiveByMerchant(ctx context.Context, merchantID int64, today time.Time) ([]*queries.OfferView, error) {
	rows, err := r.queries.ListLiveOffersByMerchant(ctx, r.db, sqlc.ListLiveOffersByMerchantParams{
		EmpresaID: merchantID,
		Today:     pgconv.DateToPgtype(today),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list merchant offers", err)
	}
	return mapOfferRows(rows, func(row sqlc.ListLiveOffersByMerchantRow) sqlc.ListLiveOffersRow {
		return sqlc.ListLiveOffersRow(row)
	})
}

// The four listing queries share one column set.
func mapOfferRows[T any](rows []T, norm func(T) sqlc.ListLiveOffersRow) ([]*queries.OfferView, error) {
	views := make([]*queries.OfferView, 0, len(rows))
	for _, row := range rows {
		v, err := toOfferView(norm(row))
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert offer row", err, infra.KindDBFailure)
		}
		views = append(views, v)
	}
	return views, nil
}

func toOfferView(row sqlc.ListLiveOffersRow) (*queries.OfferView, error) {
	regular, err := pgconv.MoneyFromNumeric(row.PrecioRegular)
	if err != nil {
		return nil, err
	}
	price, err := pgconv.MoneyFromNumeric(row.PrecioOferta)
	if err != nil {
		return nil, err
	}

	v := &queries.OfferView{
		ID:                 row.OfertaID,
		Title:              row.Titulo,
		Description:        row.Descripcion,
		RegularPrice:       regular,
		OfferPrice:         price,
		DiscountPct:        offer.DiscountPct(regular, price),
		StartDate:          pgconv.DateFromPgtype(row.FechaInicioOferta),
		EndDate:            pgconv.DateFromPgtype(row.FechaFinOferta),
		RedemptionDeadline: pgconv.DatePtrFromPgtype(row.FechaLimiteUso),
		Capacity:           pgconv.IntPtrFromInt4(row.CantidadLimite),
		Sold:               row.Vendidos,
		ImageURL:           pgconv.StringPtrFromPgtype(row.ImagenUrl),
		MerchantID:         row.EmpresaID,
		MerchantName:       row.EmpresaNombre,
		CategoryName:       pgconv.StringPtrFromPgtype(row.RubroNombre),
	}
	if v.Capacity != nil {
		remaining := max(*v.Capacity-int(row.Vendidos), 0)
		v.Remaining = &remaining
	}
	return v, nil
}
