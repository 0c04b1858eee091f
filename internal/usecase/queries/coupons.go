package queries

import (
	"context"

	"cuponx-backend/internal/domain/account"
	"cuponx-backend/internal/usecase/shared"
)

type CouponReadStore interface {
	ListByConsumer(ctx context.Context, consumerID int64) ([]*ConsumerCouponView, error)
}

type CouponQueries interface {
	ListByConsumer(ctx context.Context, actor *shared.Identity, consumerID int64) ([]*ConsumerCouponView, error)
}

type couponQueriesImpl struct {
	readStore CouponReadStore
}

func NewCouponQueries(readStore CouponReadStore) CouponQueries {
	return &couponQueriesImpl{readStore: readStore}
}

// ListByConsumer lets consumers read their own coupons and operators read anyone's.
func (q *couponQueriesImpl) ListByConsumer(ctx context.Context, actor *shared.Identity, consumerID int64) ([]*ConsumerCouponView, error) {
	if err := shared.RequireSelfOrRole(actor, consumerID, account.RoleOperator); err != nil {
		return nil, err
	}
	return q.readStore.ListByConsumer(ctx, consumerID)
}
