//go:build unit

package queries_test

import (
	"context"
	"testing"

	"cuponx-backend/internal/domain/account"
	"cuponx-backend/internal/infra"
	"cuponx-backend/internal/pkg/errs"
	"cuponx-backend/internal/pkg/ptr"
	"cuponx-backend/internal/usecase/queries"
	"cuponx-backend/internal/usecase/shared"
	"cuponx-backend/tests/common/builder"
	queriesmock "cuponx-backend/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAccountQueries_Me(t *testing.T) {
	ctx := context.Background()

	t.Run("consumer sees its verification flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockAccountReadStore(ctrl)
		b := builder.NewAccountBuilder()
		snap := b.BuildSnapshot()
		store.EXPECT().FindByID(gomock.Any(), account.RoleConsumer, int64(5)).Return(&snap, nil)

		view, err := queries.NewAccountQueries(store).Me(ctx, b.BuildIdentity())

		require.NoError(t, err)
		expected := &queries.AccountView{
			ID:          5,
			Role:        "CLIENTE",
			Email:       "cliente@example.com",
			DisplayName: "Ana Martínez",
			Verified:    ptr.To(true),
		}
		if diff := cmp.Diff(expected, view); diff != "" {
			t.Errorf("AccountView mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("merchant admin is scoped to its own merchant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockAccountReadStore(ctrl)
		b := builder.NewAccountBuilder().AsMerchantAdmin().With(func(b *builder.AccountBuilder) { b.ID = 3 })
		snap := b.BuildSnapshot()
		store.EXPECT().FindByID(gomock.Any(), account.RoleMerchantAdmin, int64(3)).Return(&snap, nil)

		view, err := queries.NewAccountQueries(store).Me(ctx, b.BuildIdentity())

		require.NoError(t, err)
		require.NotNil(t, view.MerchantID)
		assert.Equal(t, int64(3), *view.MerchantID)
		assert.Nil(t, view.Verified)
	})

	t.Run("deactivated account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockAccountReadStore(ctrl)
		b := builder.NewAccountBuilder().With(func(b *builder.AccountBuilder) { b.IsActive = false })
		snap := b.BuildSnapshot()
		store.EXPECT().FindByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(&snap, nil)

		_, err := queries.NewAccountQueries(store).Me(ctx, b.BuildIdentity())
		assert.True(t, errs.Is(err, queries.ErrAccountInactive))
	})

	t.Run("deleted account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockAccountReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("account not found", nil, infra.KindNotFound))

		_, err := queries.NewAccountQueries(store).Me(ctx, builder.NewAccountBuilder().BuildIdentity())
		assert.True(t, errs.Is(err, queries.ErrAccountNotFound))
	})

	t.Run("anonymous", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockAccountReadStore(ctrl)

		_, err := queries.NewAccountQueries(store).Me(ctx, nil)
		assert.True(t, errs.Is(err, shared.ErrUnauthenticated))
	})
}
