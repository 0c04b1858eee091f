package repository

import (
	"context"

	"cuponx-backend/internal/domain/account"
	"cuponx-backend/internal/infra"
	"cuponx-backend/internal/infra/repository/converter"
	sqlc "cuponx-backend/internal/infra/sqlc/generated"
)

type AccountWriteQueries interface {
	CreateConsumer(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateConsumerParams) (int64, error)
	MarkConsumerVerified(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
	UpdateOperatorPassword(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOperatorPasswordParams) (int64, error)
	UpdateMerchantPassword(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateMerchantPasswordParams) (int64, error)
	UpdateEmployeePassword(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateEmployeePasswordParams) (int64, error)
	UpdateConsumerPassword(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateConsumerPasswordParams) (int64, error)
}

type AccountRepository struct {
	queries AccountWriteQueries
	db      sqlc.DBTX
}

func NewAccountRepository(queries AccountWriteQueries, db sqlc.DBTX) *AccountRepository {
	return &AccountRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AccountRepository) CreateConsumer(ctx context.Context, tx sqlc.DBTX, reg *account.ConsumerRegistration) (int64, error) {
	id, err := r.queries.CreateConsumer(ctx, tx, converter.RegistrationToCreateParams(reg))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create consumer", err)
	}
	return id, nil
}

func (r *AccountRepository) MarkVerified(ctx context.Context, tx sqlc.DBTX, consumerID int64) (bool, error) {
	n, err := r.queries.MarkConsumerVerified(ctx, tx, consumerID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark consumer verified", err)
	}
	return n == 1, nil
}

// UpdatePassword writes to the table that stores the given variant.
func (r *AccountRepository) UpdatePassword(ctx context.Context, tx sqlc.DBTX, role account.Role, id int64, passwordHash string) error {
	var (
		n   int64
		err error
	)
	switch role {
	case account.RoleOperator:
		n, err = r.queries.UpdateOperatorPassword(ctx, tx, sqlc.UpdateOperatorPasswordParams{ID: id, PasswordHash: passwordHash})
	case account.RoleMerchantAdmin:
		n, err = r.queries.UpdateMerchantPassword(ctx, tx, sqlc.UpdateMerchantPasswordParams{ID: id, PasswordHash: passwordHash})
	case account.RoleEmployee:
		n, err = r.queries.UpdateEmployeePassword(ctx, tx, sqlc.UpdateEmployeePasswordParams{ID: id, PasswordHash: passwordHash})
	case account.RoleConsumer:
		n, err = r.queries.UpdateConsumerPassword(ctx, tx, sqlc.UpdateConsumerPasswordParams{ID: id, PasswordHash: passwordHash})
	default:
		return infra.WrapRepoErr("unknown account role "+role.String(), nil, infra.KindNotFound)
	}
	if err != nil {
		return infra.WrapRepoErr("failed to update password", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("account not found", nil, infra.KindNotFound)
	}
	return nil
}
