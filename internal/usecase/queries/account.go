package queries

import (
	"context"

	"cuponx-backend/internal/domain/account"
	"cuponx-backend/internal/infra"
	"cuponx-backend/internal/pkg/errs"
	"cuponx-backend/internal/usecase/shared"
)

var (
	ErrAccountNotFound = errs.Class(errs.ErrNotFound, "Usuario no encontrado")
	ErrAccountInactive = errs.Class(errs.ErrUnauthenticated, "La cuenta está inactiva")
)

type AccountReadStore interface {
	FindByID(ctx context.Context, role account.Role, id int64) (*account.Snapshot, error)
}

type AccountQueries interface {
	Me(ctx context.Context, actor *shared.Identity) (*AccountView, error)
}

type accountQueriesImpl struct {
	readStore AccountReadStore
}

func NewAccountQueries(readStore AccountReadStore) AccountQueries {
	return &accountQueriesImpl{readStore: readStore}
}

func (q *accountQueriesImpl) Me(ctx context.Context, actor *shared.Identity) (*AccountView, error) {
	if actor == nil {
		return nil, shared.ErrUnauthenticated
	}
	snap, err := q.readStore.FindByID(ctx, actor.Role, actor.AccountID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	a := account.Reconstruct(*snap)
	if !a.IsActive() {
		return nil, ErrAccountInactive
	}

	view := &AccountView{
		ID:          a.ID(),
		Role:        a.Role().String(),
		Email:       a.Email(),
		MerchantID:  a.MerchantID(),
		DisplayName: a.DisplayName(),
	}
	if a.Role() == account.RoleConsumer {
		verified := a.IsVerified()
		view.Verified = &verified
	}
	return view, nil
}
