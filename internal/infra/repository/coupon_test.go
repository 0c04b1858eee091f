//go:build unit

package repository_test

import (
	"context"
	"testing"

	"cuponx-backend/internal/domain/coupon"
	"cuponx-backend/internal/infra"
	"cuponx-backend/internal/infra/repository"
	sqlc "cuponx-backend/internal/infra/sqlc/generated"
	"cuponx-backend/tests/common/builder"
	repositorymock "cuponx-backend/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCouponRepository_Insert(t *testing.T) {
	ctx := context.Background()
	c := builder.NewCouponBuilder().BuildDomain()

	tests := []struct {
		name         string
		returnID     int64
		returnErr    error
		wantID       int64
		wantInserted bool
		wantKind     infra.RepositoryErrorKind
	}{
		{name: "inserted", returnID: 42, wantID: 42, wantInserted: true},
		{name: "code collision", returnErr: pgx.ErrNoRows},
		{name: "database failure", returnErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := repositorymock.NewMockCouponWriteQueries(ctrl)
			q.EXPECT().InsertCoupon(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.InsertCouponParams) (int64, error) {
					assert.Equal(t, "RES0011234567", arg.Codigo)
					assert.Equal(t, int64(5), arg.ClienteID)
					return tt.returnID, tt.returnErr
				})

			id, inserted, err := repository.NewCouponRepository(q, nil).Insert(ctx, nil, c)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantInserted, inserted)
		})
	}
}

func TestCouponRepository_LockByCode(t *testing.T) {
	ctx := context.Background()

	t.Run("maps the locked row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockCouponWriteQueries(ctrl)
		row := builder.NewCouponBuilder().BuildRow()
		q.EXPECT().LockCouponByCode(gomock.Any(), gomock.Any(), "RES0011234567").Return(sqlc.LockCouponByCodeRow(row), nil)

		rec, err := repository.NewCouponRepository(q, nil).LockByCode(ctx, nil, "RES0011234567")

		require.NoError(t, err)
		assert.Equal(t, int64(10), rec.Coupon.ID())
		assert.Equal(t, coupon.StateAvailable, rec.Coupon.State())
		assert.Equal(t, "2x1 en pizzas", rec.OfferTitle)
		assert.Equal(t, "Ana Martínez", rec.ConsumerName)
	})

	t.Run("unknown code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockCouponWriteQueries(ctrl)
		q.EXPECT().LockCouponByCode(gomock.Any(), gomock.Any(), "NOPE0000000").Return(sqlc.LockCouponByCodeRow{}, pgx.ErrNoRows)

		_, err := repository.NewCouponRepository(q, nil).LockByCode(ctx, nil, "NOPE0000000")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("unknown state in row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockCouponWriteQueries(ctrl)
		row := builder.NewCouponBuilder().BuildRow()
		row.Estado = "perdido"
		q.EXPECT().LockCouponByCode(gomock.Any(), gomock.Any(), gomock.Any()).Return(sqlc.LockCouponByCodeRow(row), nil)

		_, err := repository.NewCouponRepository(q, nil).LockByCode(ctx, nil, row.Codigo)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestCouponRepository_ConditionalWrites(t *testing.T) {
	ctx := context.Background()
	c := builder.NewCouponBuilder().BuildDomain()

	t.Run("redeem needs exactly one affected row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockCouponWriteQueries(ctrl)
		q.EXPECT().RedeemCoupon(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		q.EXPECT().RedeemCoupon(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
		repo := repository.NewCouponRepository(q, nil)

		require.NoError(t, repo.MarkRedeemed(ctx, nil, c))
		err := repo.MarkRedeemed(ctx, nil, c)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})

	t.Run("expire on a row that moved on", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockCouponWriteQueries(ctrl)
		q.EXPECT().ExpireCoupon(gomock.Any(), gomock.Any(), int64(10)).Return(int64(0), nil)

		err := repository.NewCouponRepository(q, nil).MarkExpired(ctx, nil, 10)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})

	t.Run("delete of a missing coupon", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockCouponWriteQueries(ctrl)
		q.EXPECT().DeleteCoupon(gomock.Any(), gomock.Any(), int64(99)).Return(int64(0), nil)

		err := repository.NewCouponRepository(q, nil).Delete(ctx, nil, 99)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
