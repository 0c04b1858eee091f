//go:build unit

package repository_test

import (
	"context"
	"testing"

	"cuponx-backend/internal/domain/account"
	"cuponx-backend/internal/infra"
	"cuponx-backend/internal/infra/repository"
	sqlc "cuponx-backend/internal/infra/sqlc/generated"
	"cuponx-backend/tests/common/builder"
	repositorymock "cuponx-backend/tests/mock/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAccountRepository_UpdatePassword(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		role   account.Role
		expect func(q *repositorymock.MockAccountWriteQueries)
	}{
		{
			name: "operator",
			role: account.RoleOperator,
			expect: func(q *repositorymock.MockAccountWriteQueries) {
				q.EXPECT().UpdateOperatorPassword(gomock.Any(), gomock.Any(), sqlc.UpdateOperatorPasswordParams{ID: 3, PasswordHash: "hash"}).Return(int64(1), nil)
			},
		},
		{
			name: "merchant admin",
			role: account.RoleMerchantAdmin,
			expect: func(q *repositorymock.MockAccountWriteQueries) {
				q.EXPECT().UpdateMerchantPassword(gomock.Any(), gomock.Any(), sqlc.UpdateMerchantPasswordParams{ID: 3, PasswordHash: "hash"}).Return(int64(1), nil)
			},
		},
		{
			name: "employee",
			role: account.RoleEmployee,
			expect: func(q *repositorymock.MockAccountWriteQueries) {
				q.EXPECT().UpdateEmployeePassword(gomock.Any(), gomock.Any(), sqlc.UpdateEmployeePasswordParams{ID: 3, PasswordHash: "hash"}).Return(int64(1), nil)
			},
		},
		{
			name: "consumer",
			role: account.RoleConsumer,
			expect: func(q *repositorymock.MockAccountWriteQueries) {
				q.EXPECT().UpdateConsumerPassword(gomock.Any(), gomock.Any(), sqlc.UpdateConsumerPasswordParams{ID: 3, PasswordHash: "hash"}).Return(int64(1), nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run("writes the "+tt.name+" table", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := repositorymock.NewMockAccountWriteQueries(ctrl)
			tt.expect(q)

			err := repository.NewAccountRepository(q, nil).UpdatePassword(ctx, nil, tt.role, 3, "hash")
			assert.NoError(t, err)
		})
	}

	t.Run("no affected row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockAccountWriteQueries(ctrl)
		q.EXPECT().UpdateConsumerPassword(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

		err := repository.NewAccountRepository(q, nil).UpdatePassword(ctx, nil, account.RoleConsumer, 3, "hash")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("unknown role touches no table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockAccountWriteQueries(ctrl)

		err := repository.NewAccountRepository(q, nil).UpdatePassword(ctx, nil, account.Role("INVITADO"), 3, "hash")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestAccountRepository_CreateConsumer(t *testing.T) {
	ctx := context.Background()
	reg := newRegistration(t)

	t.Run("returns the new id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockAccountWriteQueries(ctrl)
		q.EXPECT().CreateConsumer(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateConsumerParams) (int64, error) {
				assert.Equal(t, "nuevo@example.com", arg.Correo)
				assert.True(t, arg.TokenVerificacion.Valid)
				return 7, nil
			})

		id, err := repository.NewAccountRepository(q, nil).CreateConsumer(ctx, nil, reg)

		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
	})

	t.Run("unique violation is a duplicate key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockAccountWriteQueries(ctrl)
		q.EXPECT().CreateConsumer(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), &pgconn.PgError{Code: "23505"})

		_, err := repository.NewAccountRepository(q, nil).CreateConsumer(ctx, nil, reg)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

func TestAccountRepository_MarkVerified(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := repositorymock.NewMockAccountWriteQueries(ctrl)
	q.EXPECT().MarkConsumerVerified(gomock.Any(), gomock.Any(), int64(5)).Return(int64(1), nil)
	q.EXPECT().MarkConsumerVerified(gomock.Any(), gomock.Any(), int64(5)).Return(int64(0), nil)
	repo := repository.NewAccountRepository(q, nil)

	first, err := repo.MarkVerified(context.Background(), nil, 5)
	require.NoError(t, err)
	again, err := repo.MarkVerified(context.Background(), nil, 5)
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, again)
}

func newRegistration(t *testing.T) *account.ConsumerRegistration {
	t.Helper()
	reg, err := account.NewConsumerRegistration(builder.NewRegistrationInputBuilder().Build(), "hash", "verify-token")
	require.NoError(t, err)
	return reg
}
