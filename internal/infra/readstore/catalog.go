package readstore

import (
	"context"

	"cuponx-backend/internal/infra"
	sqlc "cuponx-backend/internal/infra/sqlc/generated"
	"cuponx-backend/internal/pkg/pgconv"
	"cuponx-backend/internal/usecase/queries"
)

type CatalogReadQueries interface {
	ListActiveRubros(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListActiveRubrosRow, error)
	ListMerchants(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListMerchantsRow, error)
	ListTopMerchants(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ListTopMerchantsRow, error)
	GetMerchantByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetMerchantByIDRow, error)
}

type CatalogReadStore struct {
	queries CatalogReadQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogReadQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogReadStore) ListCategories(ctx context.Context) ([]*queries.CategoryView, error) {
	rows, err := r.queries.ListActiveRubros(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list categories", err)
	}
	views := make([]*queries.CategoryView, len(rows))
	for i, row := range rows {
		views[i] = &queries.CategoryView{
			ID:          row.ID,
			Name:        row.Nombre,
			Description: pgconv.StringPtrFromPgtype(row.Descripcion),
		}
	}
	return views, nil
}

func (r *CatalogReadStore) ListMerchants(ctx context.Context) ([]*queries.MerchantView, error) {
	rows, err := r.queries.ListMerchants(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list merchants", err)
	}
	views := make([]*queries.MerchantView, len(rows))
	for i, row := range rows {
		views[i] = toMerchantView(row)
	}
	return views, nil
}

func (r *CatalogReadStore) ListTopMerchants(ctx context.Context, limit int) ([]*queries.MerchantView, error) {
	rows, err := r.queries.ListTopMerchants(ctx, r.db, int32(limit)) // #nosec G115 -- bounded by queries.MaxTopLimit
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list top merchants", err)
	}
	views := make([]*queries.MerchantView, len(rows))
	for i, row := range rows {
		v := toMerchantView(sqlc.ListMerchantsRow{
			ID:          row.ID,
			Nombre:      row.Nombre,
			Codigo:      row.Codigo,
			ColorHex:    row.ColorHex,
			Descripcion: row.Descripcion,
			RewardPct:   row.RewardPct,
			RubroNombre: row.RubroNombre,
		})
		sold := row.Vendidos
		v.Sold = &sold
		views[i] = v
	}
	return views, nil
}

func (r *CatalogReadStore) FindMerchantByID(ctx context.Context, id int64) (*queries.MerchantDetailView, error) {
	row, err := r.queries.GetMerchantByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("merchant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find merchant", err)
	}
	base := toMerchantView(sqlc.ListMerchantsRow{
		ID:          row.ID,
		Nombre:      row.Nombre,
		Codigo:      row.Codigo,
		ColorHex:    row.ColorHex,
		Descripcion: row.Descripcion,
		RewardPct:   row.RewardPct,
		RubroNombre: row.RubroNombre,
	})
	return &queries.MerchantDetailView{
		MerchantView: *base,
		Address:      row.Direccion,
		Phone:        row.Telefono,
		Email:        row.Correo,
	}, nil
}

func toMerchantView(row sqlc.ListMerchantsRow) *queries.MerchantView {
	return &queries.MerchantView{
		ID:           row.ID,
		Name:         row.Nombre,
		Code:         row.Codigo,
		ColorHex:     pgconv.StringPtrFromPgtype(row.ColorHex),
		Description:  pgconv.StringPtrFromPgtype(row.Descripcion),
		RewardPct:    pgconv.IntPtrFromInt4(row.RewardPct),
		CategoryName: pgconv.StringPtrFromPgtype(row.RubroNombre),
	}
}
