package readstore

import (
	"context"

	"cuponx-backend/internal/domain/account"
	"cuponx-backend/internal/infra"
	"cuponx-backend/internal/infra/repository/converter"
	sqlc "cuponx-backend/internal/infra/sqlc/generated"
	"cuponx-backend/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type AccountReadQueries interface {
	FindOperatorByEmail(ctx context.Context, db sqlc.DBTX, correo string) (sqlc.AdministradoresCuponx, error)
	FindOperatorByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.AdministradoresCuponx, error)
	FindMerchantAccountByEmail(ctx context.Context, db sqlc.DBTX, correo string) (sqlc.Empresas, error)
	FindMerchantAccountByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Empresas, error)
	FindEmployeeByEmail(ctx context.Context, db sqlc.DBTX, correo string) (sqlc.AdministradoresEmpresas, error)
	FindEmployeeByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.AdministradoresEmpresas, error)
	FindConsumerByEmail(ctx context.Context, db sqlc.DBTX, correo string) (sqlc.Clientes, error)
	FindConsumerByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Clientes, error)
	FindConsumerByVerificationToken(ctx context.Context, db sqlc.DBTX, tokenVerificacion pgtype.Text) (sqlc.Clientes, error)
	CheckConsumerTaken(ctx context.Context, db sqlc.DBTX, arg sqlc.CheckConsumerTakenParams) (sqlc.CheckConsumerTakenRow, error)
}

// variantTable maps each account variant to the table that stores it.
type variantTable struct {
	role    account.Role
	byEmail func(ctx context.Context, q AccountReadQueries, db sqlc.DBTX, email string) (account.Snapshot, error)
	byID    func(ctx context.Context, q AccountReadQueries, db sqlc.DBTX, id int64) (account.Snapshot, error)
}

var variantTables = []variantTable{
	{
		role: account.RoleOperator,
		byEmail: func(ctx context.Context, q AccountReadQueries, db sqlc.DBTX, email string) (account.Snapshot, error) {
			row, err := q.FindOperatorByEmail(ctx, db, email)
			return converter.OperatorToSnapshot(row), err
		},
		byID: func(ctx context.Context, q AccountReadQueries, db sqlc.DBTX, id int64) (account.Snapshot, error) {
			row, err := q.FindOperatorByID(ctx, db, id)
			return converter.OperatorToSnapshot(row), err
		},
	},
	{
		role: account.RoleMerchantAdmin,
		byEmail: func(ctx context.Context, q AccountReadQueries, db sqlc.DBTX, email string) (account.Snapshot, error) {
			row, err := q.FindMerchantAccountByEmail(ctx, db, email)
			return converter.MerchantAccountToSnapshot(row), err
		},
		byID: func(ctx context.Context, q AccountReadQueries, db sqlc.DBTX, id int64) (account.Snapshot, error) {
			row, err := q.FindMerchantAccountByID(ctx, db, id)
			return converter.MerchantAccountToSnapshot(row), err
		},
	},
	{
		role: account.RoleEmployee,
		byEmail: func(ctx context.Context, q AccountReadQueries, db sqlc.DBTX, email string) (account.Snapshot, error) {
			row, err := q.FindEmployeeByEmail(ctx, db, email)
			return converter.EmployeeToSnapshot(row), err
		},
		byID: func(ctx context.Context, q AccountReadQueries, db sqlc.DBTX, id int64) (account.Snapshot, error) {
			row, err := q.FindEmployeeByID(ctx, db, id)
			return converter.EmployeeToSnapshot(row), err
		},
	},
	{
		role: account.RoleConsumer,
		byEmail: func(ctx context.Context, q AccountReadQueries, db sqlc.DBTX, email string) (account.Snapshot, error) {
			row, err := q.FindConsumerByEmail(ctx, db, email)
			return converter.ConsumerToSnapshot(row), err
		},
		byID: func(ctx context.Context, q AccountReadQueries, db sqlc.DBTX, id int64) (account.Snapshot, error) {
			row, err := q.FindConsumerByID(ctx, db, id)
			return converter.ConsumerToSnapshot(row), err
		},
	},
}

type AccountReadStore struct {
	queries AccountReadQueries
	db      sqlc.DBTX
}

func NewAccountReadStore(queries AccountReadQueries, db sqlc.DBTX) *AccountReadStore {
	return &AccountReadStore{
		queries: queries,
		db:      db,
	}
}

// FindAllByEmail returns one snapshot per variant holding the normalized email,
// in operator, merchant-admin, employee, consumer order.
func (r *AccountReadStore) FindAllByEmail(ctx context.Context, email string) ([]account.Snapshot, error) {
	email = account.NormalizeEmail(email)
	var found []account.Snapshot
	for _, v := range variantTables {
		snap, err := v.byEmail(ctx, r.queries, r.db, email)
		if err != nil {
			if pgconv.IsNoRows(err) {
				continue
			}
			return nil, infra.WrapRepoErr("failed to find "+v.role.String()+" by email", err)
		}
		found = append(found, snap)
	}
	return found, nil
}

func (r *AccountReadStore) FindByID(ctx context.Context, role account.Role, id int64) (*account.Snapshot, error) {
	for _, v := range variantTables {
		if v.role != role {
			continue
		}
		snap, err := v.byID(ctx, r.queries, r.db, id)
		if err != nil {
			if pgconv.IsNoRows(err) {
				return nil, infra.WrapRepoErr("account not found", err, infra.KindNotFound)
			}
			return nil, infra.WrapRepoErr("failed to find account by ID", err)
		}
		return &snap, nil
	}
	return nil, infra.WrapRepoErr("unknown account role "+role.String(), nil, infra.KindNotFound)
}

func (r *AccountReadStore) FindConsumerByVerificationToken(ctx context.Context, token string) (*account.Snapshot, error) {
	row, err := r.queries.FindConsumerByVerificationToken(ctx, r.db, pgconv.StringToPgtype(token))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("verification token not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find consumer by token", err)
	}
	snap := converter.ConsumerToSnapshot(row)
	return &snap, nil
}

func (r *AccountReadStore) ConsumerTaken(ctx context.Context, email, nationalID string) (emailTaken, nationalIDTaken bool, err error) {
	row, err := r.queries.CheckConsumerTaken(ctx, r.db, sqlc.CheckConsumerTakenParams{
		Correo: account.NormalizeEmail(email),
		Dui:    nationalID,
	})
	if err != nil {
		return false, false, infra.WrapRepoErr("failed to check consumer uniqueness", err)
	}
	return row.CorreoTaken, row.DuiTaken, nil
}
