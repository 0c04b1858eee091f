package queries

import (
	"context"
	"strings"
	"time"

	"cuponx-backend/internal/pkg/clock"
	"cuponx-backend/internal/pkg/errs"
	"cuponx-backend/internal/pkg/ptr"
)

const (
	DefaultTopLimit = 6
	MaxTopLimit     = 50
)

var ErrInvalidLimit = errs.Class(errs.ErrInvalidInput, "El límite debe ser un número positivo")

type OfferReadStore interface {
	ListLive(ctx context.Context, filter OfferFilter, today time.Time) ([]*OfferView, error)
	ListTop(ctx context.Context, today time.Time, limit int) ([]*OfferView, error)
	ListApproved(ctx context.Context) ([]*OfferView, error)
	ListLiveByMerchant(ctx context.Context, merchantID int64, today time.Time) ([]*OfferView, error)
}

type OfferQueries interface {
	ListLive(ctx context.Context, filter OfferFilter) ([]*OfferView, error)
	ListTop(ctx context.Context, limit *int) ([]*OfferView, error)
	ListApproved(ctx context.Context) ([]*OfferView, error)
	ListLiveByMerchant(ctx context.Context, merchantID int64) ([]*OfferView, error)
}

type offerQueriesImpl struct {
	readStore OfferReadStore
	clock     clock.Clock
}

func NewOfferQueries(readStore OfferReadStore, clk clock.Clock) OfferQueries {
	return &offerQueriesImpl{
		readStore: readStore,
		clock:     clk,
	}
}

// ListLive returns offers that can be bought today, excluding those whose cap is exhausted.
func (q *offerQueriesImpl) ListLive(ctx context.Context, filter OfferFilter) ([]*OfferView, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	return q.readStore.ListLive(ctx, filter, q.clock.Today())
}

func (q *offerQueriesImpl) ListTop(ctx context.Context, limit *int) ([]*OfferView, error) {
	n, err := ResolveLimit(limit)
	if err != nil {
		return nil, err
	}
	return q.readStore.ListTop(ctx, q.clock.Today(), n)
}

func (q *offerQueriesImpl) ListApproved(ctx context.Context) ([]*OfferView, error) {
	return q.readStore.ListApproved(ctx)
}

func (q *offerQueriesImpl) ListLiveByMerchant(ctx context.Context, merchantID int64) ([]*OfferView, error) {
	return q.readStore.ListLiveByMerchant(ctx, merchantID, q.clock.Today())
}

// ResolveLimit applies the default and caps at MaxTopLimit.
func ResolveLimit(limit *int) (int, error) {
	n := ptr.Coalesce(limit, DefaultTopLimit)
	if n < 1 {
		return 0, ErrInvalidLimit
	}
	return min(n, MaxTopLimit), nil
}
