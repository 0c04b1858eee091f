package queries

import (
	"context"

	"cuponx-backend/internal/infra"
	"cuponx-backend/internal/pkg/errs"
)

var ErrMerchantNotFound = errs.Class(errs.ErrNotFound, "Empresa no encontrada")

type CatalogReadStore interface {
	ListCategories(ctx context.Context) ([]*CategoryView, error)
	ListMerchants(ctx context.Context) ([]*MerchantView, error)
	ListTopMerchants(ctx context.Context, limit int) ([]*MerchantView, error)
	FindMerchantByID(ctx context.Context, id int64) (*MerchantDetailView, error)
}

type CatalogQueries interface {
	ListCategories(ctx context.Context) ([]*CategoryView, error)
	ListMerchants(ctx context.Context) ([]*MerchantView, error)
	ListTopMerchants(ctx context.Context, limit *int) ([]*MerchantView, error)
	GetMerchant(ctx context.Context, id int64) (*MerchantDetailView, error)
}

type catalogQueriesImpl struct {
	readStore CatalogReadStore
}

func NewCatalogQueries(readStore CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{readStore: readStore}
}

func (q *catalogQueriesImpl) ListCategories(ctx context.Context) ([]*CategoryView, error) {
	return q.readStore.ListCategories(ctx)
}

func (q *catalogQueriesImpl) ListMerchants(ctx context.Context) ([]*MerchantView, error) {
	return q.readStore.ListMerchants(ctx)
}

func (q *catalogQueriesImpl) ListTopMerchants(ctx context.Context, limit *int) ([]*MerchantView, error) {
	n, err := ResolveLimit(limit)
	if err != nil {
		return nil, err
	}
	return q.readStore.ListTopMerchants(ctx, n)
}

func (q *catalogQueriesImpl) GetMerchant(ctx context.Context, id int64) (*MerchantDetailView, error) {
	m, err := q.readStore.FindMerchantByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, err
	}
	return m, nil
}
